package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"app-recommender/internal/catalog"
	"app-recommender/internal/hardware"
	"app-recommender/internal/model"
	"app-recommender/internal/repository"
)

// DefaultScore is the recommendation score for rules without an explicit
// weight. Per-rule weights exist in the catalog for future differentiation.
const DefaultScore = 0.8

// CategoryScore is one entry of the ranked category preference list.
type CategoryScore struct {
	Category string
	Score    int
}

// RecommendService derives category preferences from usage, expands the rule
// table into candidate recommendations and persists the result.
type RecommendService struct {
	apps    *repository.AppRepository
	recs    *repository.RecommendationRepository
	catalog catalog.Catalog
	probe   hardware.Probe
	log     *zap.Logger
}

func NewRecommendService(
	apps *repository.AppRepository,
	recs *repository.RecommendationRepository,
	cat catalog.Catalog,
	probe hardware.Probe,
	log *zap.Logger,
) *RecommendService {
	return &RecommendService{apps: apps, recs: recs, catalog: cat, probe: probe, log: log}
}

// RankCategories sums usage counts per category over all installed apps.
// Ordered by aggregate score descending; equal scores order by category name
// ascending. Apps without a category are skipped.
func (s *RecommendService) RankCategories(ctx context.Context) ([]CategoryScore, error) {
	apps, err := s.apps.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list installed apps: %w", err)
	}
	return rankFrom(apps), nil
}

func rankFrom(apps []model.InstalledApp) []CategoryScore {
	totals := make(map[string]int)
	for _, app := range apps {
		if app.Category == "" {
			continue
		}
		totals[app.Category] += app.UsageCount
	}

	ranked := make([]CategoryScore, 0, len(totals))
	for category, score := range totals {
		ranked = append(ranked, CategoryScore{Category: category, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Category < ranked[j].Category
	})
	return ranked
}

// Expand walks the rule table in ranked-category order and produces the
// candidate set. Installed apps are skipped; hardware rules are gated by the
// probe. When an app appears under several rules, the last accepted hit
// replaces the earlier one and takes its position at the end of the set.
func (s *RecommendService) Expand(ranked []CategoryScore, installed map[string]struct{}) []model.Recommendation {
	now := time.Now()
	order := make([]string, 0)
	byName := make(map[string]model.Recommendation)

	for _, pref := range ranked {
		rules, ok := s.catalog.RulesFor(pref.Category)
		if !ok {
			continue
		}
		for _, rule := range rules {
			if pref.Category == catalog.HardwareCategory && !s.applicable(rule.Subcategory) {
				continue
			}
			score := rule.Weight
			if score == 0 {
				score = DefaultScore
			}
			for _, app := range rule.Apps {
				if _, found := installed[app]; found {
					continue
				}
				if _, dup := byName[app]; dup {
					for i, name := range order {
						if name == app {
							order = append(order[:i], order[i+1:]...)
							break
						}
					}
				}
				byName[app] = model.Recommendation{
					AppName:  app,
					Category: pref.Category,
					Reason: fmt.Sprintf(
						"Recommended for %s/%s based on your usage patterns",
						pref.Category, rule.Subcategory),
					Score:         score,
					RecommendedAt: now,
				}
				order = append(order, app)
			}
		}
	}

	out := make([]model.Recommendation, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}

// applicable gates hardware-specific subcategories on the probe. Probe
// failures surface as false inside the probe itself, so a missing tool means
// the rule is skipped, not an error. Unknown subcategories pass through
// unfiltered; the warning keeps that gap visible when the table grows.
func (s *RecommendService) applicable(subcategory string) bool {
	switch subcategory {
	case catalog.HardwareAMDGPU:
		return s.probe.HasAMDGPU()
	case catalog.HardwareNvidiaGPU:
		return s.probe.HasNVIDIAGPU()
	case catalog.HardwareIntelGPU:
		return s.probe.HasIntelGPU()
	case catalog.HardwareLaptop:
		return s.probe.IsLaptop()
	default:
		s.log.Warn("hardware rule has no probe, not filtering",
			zap.String("subcategory", subcategory))
		return true
	}
}

// Generate runs one full pass: rank categories, expand rules and replace the
// stored recommendation set. Returns the candidates in generation order.
func (s *RecommendService) Generate(ctx context.Context) ([]model.Recommendation, error) {
	apps, err := s.apps.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list installed apps: %w", err)
	}

	installed := make(map[string]struct{}, len(apps))
	for _, app := range apps {
		installed[app.AppName] = struct{}{}
	}

	candidates := s.Expand(rankFrom(apps), installed)
	if err := s.recs.ReplaceAll(ctx, candidates); err != nil {
		return nil, fmt.Errorf("store recommendations: %w", err)
	}

	s.log.Info("generated recommendations", zap.Int("count", len(candidates)))
	return candidates, nil
}

// Top returns the n best stored recommendations, score descending.
func (s *RecommendService) Top(ctx context.Context, n int) ([]model.Recommendation, error) {
	return s.recs.Top(ctx, n)
}
