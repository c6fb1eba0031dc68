package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"app-recommender/internal/catalog"
	"app-recommender/internal/model"
	"app-recommender/internal/repository"
	"app-recommender/internal/source"
)

// ScanService ingests installed-package and usage signals into the store.
// Each scan is one transactional batch: if the source fails or the batch
// cannot be applied, previously persisted state is left untouched.
type ScanService struct {
	apps     *repository.AppRepository
	packages source.PackageSource
	usage    source.UsageSource
	catalog  catalog.Catalog
	log      *zap.Logger
}

func NewScanService(
	apps *repository.AppRepository,
	packages source.PackageSource,
	usage source.UsageSource,
	cat catalog.Catalog,
	log *zap.Logger,
) *ScanService {
	return &ScanService{apps: apps, packages: packages, usage: usage, catalog: cat, log: log}
}

// ScanInstalled records newly observed packages with their classified
// category. Already known apps are left untouched, so rescans are idempotent.
func (s *ScanService) ScanInstalled(ctx context.Context) error {
	pkgs, err := s.packages.InstalledPackages(ctx)
	if err != nil {
		return fmt.Errorf("list installed packages: %w", err)
	}

	apps := make([]model.InstalledApp, 0, len(pkgs))
	for name := range pkgs {
		apps = append(apps, model.InstalledApp{
			AppName:  name,
			Category: s.catalog.Classify(name),
		})
	}
	// Map iteration order is random; keep inserts deterministic.
	sort.Slice(apps, func(i, j int) bool { return apps[i].AppName < apps[j].AppName })

	inserted, err := s.apps.EnsureInstalled(ctx, apps)
	if err != nil {
		return fmt.Errorf("record installed apps: %w", err)
	}
	s.log.Info("scanned installed applications",
		zap.Int("packages", len(pkgs)),
		zap.Int("new", inserted))
	return nil
}

// ScanUsage bumps usage counters for recently used applications. Signals for
// apps not present in the store are ignored.
func (s *ScanService) ScanUsage(ctx context.Context) error {
	names, err := s.usage.RecentlyUsed(ctx)
	if err != nil {
		return fmt.Errorf("collect usage signals: %w", err)
	}

	updated, err := s.apps.RecordUsage(ctx, names, time.Now())
	if err != nil {
		return fmt.Errorf("record usage: %w", err)
	}
	s.log.Info("updated usage statistics",
		zap.Int("signals", len(names)),
		zap.Int("updated", updated))
	return nil
}
