package main

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"app-recommender/internal/catalog"
	"app-recommender/internal/config"
	"app-recommender/internal/hardware"
	"app-recommender/internal/logging"
	"app-recommender/internal/repository"
	"app-recommender/internal/service"
	"app-recommender/internal/source"
)

// app bundles the wired services for one invocation.
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	db        *gorm.DB
	scan      *service.ScanService
	recommend *service.RecommendService
	prefs     *repository.PreferenceRepository
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, err
	}

	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	apps := repository.NewAppRepository(db)
	recs := repository.NewRecommendationRepository(db)
	prefs := repository.NewPreferenceRepository(db)

	cat := catalog.Default()
	usageSource := &source.ActivitySource{
		Window:           cfg.Usage.Window,
		RecentlyUsedPath: cfg.Usage.Recent,
		Keywords:         cat.AllKeywords(),
		Logger:           logger,
	}

	return &app{
		cfg:       cfg,
		log:       logger,
		db:        db,
		scan:      service.NewScanService(apps, source.NixEnvSource{}, usageSource, cat, logger),
		recommend: service.NewRecommendService(apps, recs, cat, hardware.LspciProbe{}, logger),
		prefs:     prefs,
	}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
	_ = a.log.Sync()
}

// refresh runs the full batch once, logging per-step failures without
// stopping the pass.
func (a *app) refresh(ctx context.Context) {
	if err := a.scan.ScanInstalled(ctx); err != nil {
		a.log.Error("scanning installed applications failed", zap.Error(err))
	}
	if err := a.scan.ScanUsage(ctx); err != nil {
		a.log.Error("scanning application usage failed", zap.Error(err))
	}
	if _, err := a.recommend.Generate(ctx); err != nil {
		a.log.Error("generating recommendations failed", zap.Error(err))
	}
}
