package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"app-recommender/internal/catalog"
	"app-recommender/internal/model"
	"app-recommender/internal/repository"
)

func newRecommendService(t *testing.T, db *gorm.DB, cat catalog.Catalog, probe fakeProbe) *RecommendService {
	t.Helper()
	return NewRecommendService(
		repository.NewAppRepository(db),
		repository.NewRecommendationRepository(db),
		cat,
		probe,
		zap.NewNop(),
	)
}

func seedApp(t *testing.T, db *gorm.DB, name, category string, usage int) {
	t.Helper()
	require.NoError(t, db.Create(&model.InstalledApp{
		AppName:    name,
		Category:   category,
		UsageCount: usage,
	}).Error)
}

func TestRankCategoriesTieBreak(t *testing.T) {
	db := newTestDB(t)
	seedApp(t, db, "app-b", "beta", 5)
	seedApp(t, db, "app-a", "alpha", 5)
	seedApp(t, db, "app-c", "gamma", 1)
	seedApp(t, db, "app-d", "", 99) // no category, ignored

	svc := newRecommendService(t, db, catalog.Default(), fakeProbe{})
	ranked, err := svc.RankCategories(context.Background())
	require.NoError(t, err)

	require.Len(t, ranked, 3)
	assert.Equal(t, CategoryScore{Category: "alpha", Score: 5}, ranked[0])
	assert.Equal(t, CategoryScore{Category: "beta", Score: 5}, ranked[1])
	assert.Equal(t, CategoryScore{Category: "gamma", Score: 1}, ranked[2])
}

func TestExpandExcludesInstalled(t *testing.T) {
	cat := catalog.Catalog{Rules: []catalog.CategoryRules{
		{Category: "development", Rules: []catalog.Rule{
			{Subcategory: "python", Apps: []string{"vscode", "pycharm", "jupyter"}},
		}},
	}}
	svc := newRecommendService(t, newTestDB(t), cat, fakeProbe{})

	got := svc.Expand(
		[]CategoryScore{{Category: "development", Score: 10}},
		map[string]struct{}{"vscode": {}},
	)

	require.Len(t, got, 2)
	assert.Equal(t, "pycharm", got[0].AppName)
	assert.Equal(t, "jupyter", got[1].AppName)
	for _, rec := range got {
		assert.Equal(t, "development", rec.Category)
		assert.Equal(t, "Recommended for development/python based on your usage patterns", rec.Reason)
		assert.Equal(t, DefaultScore, rec.Score)
	}
}

func TestExpandHardwareFilter(t *testing.T) {
	svc := newRecommendService(t, newTestDB(t), catalog.Default(),
		fakeProbe{amd: false, nvidia: true, intel: false, laptop: true})

	got := svc.Expand(
		[]CategoryScore{{Category: catalog.HardwareCategory, Score: 1}},
		map[string]struct{}{},
	)

	var apps []string
	for _, rec := range got {
		apps = append(apps, rec.AppName)
	}
	assert.NotContains(t, apps, "corectrl")
	assert.NotContains(t, apps, "radeontop")
	assert.NotContains(t, apps, "intel-gpu-tools")
	assert.Contains(t, apps, "nvtop")
	assert.Contains(t, apps, "tlp")
}

func TestExpandUnknownHardwareSubcategoryUnfiltered(t *testing.T) {
	cat := catalog.Catalog{Rules: []catalog.CategoryRules{
		{Category: catalog.HardwareCategory, Rules: []catalog.Rule{
			{Subcategory: "quantum_accelerator", Apps: []string{"qtop"}},
		}},
	}}
	svc := newRecommendService(t, newTestDB(t), cat, fakeProbe{})

	got := svc.Expand(
		[]CategoryScore{{Category: catalog.HardwareCategory, Score: 1}},
		map[string]struct{}{},
	)
	require.Len(t, got, 1)
	assert.Equal(t, "qtop", got[0].AppName)
}

func TestExpandLastWriteWins(t *testing.T) {
	cat := catalog.Catalog{Rules: []catalog.CategoryRules{
		{Category: "development", Rules: []catalog.Rule{
			{Subcategory: "gamedev", Apps: []string{"blender", "godot"}},
		}},
		{Category: "multimedia", Rules: []catalog.Rule{
			{Subcategory: "video_editing", Apps: []string{"kdenlive", "blender"}},
		}},
	}}
	svc := newRecommendService(t, newTestDB(t), cat, fakeProbe{})

	got := svc.Expand(
		[]CategoryScore{
			{Category: "development", Score: 5},
			{Category: "multimedia", Score: 2},
		},
		map[string]struct{}{},
	)

	require.Len(t, got, 3)
	// The multimedia hit replaced the development one and moved to the end.
	assert.Equal(t, "godot", got[0].AppName)
	assert.Equal(t, "kdenlive", got[1].AppName)
	assert.Equal(t, "blender", got[2].AppName)
	assert.Equal(t, "multimedia", got[2].Category)
	assert.Equal(t, "Recommended for multimedia/video_editing based on your usage patterns", got[2].Reason)
}

func TestExpandPerRuleWeight(t *testing.T) {
	cat := catalog.Catalog{Rules: []catalog.CategoryRules{
		{Category: "development", Rules: []catalog.Rule{
			{Subcategory: "python", Apps: []string{"jupyter"}, Weight: 0.95},
			{Subcategory: "web", Apps: []string{"postman"}},
		}},
	}}
	svc := newRecommendService(t, newTestDB(t), cat, fakeProbe{})

	got := svc.Expand([]CategoryScore{{Category: "development", Score: 1}}, map[string]struct{}{})
	require.Len(t, got, 2)
	assert.Equal(t, 0.95, got[0].Score)
	assert.Equal(t, DefaultScore, got[1].Score)
}

func TestGenerateEndToEnd(t *testing.T) {
	db := newTestDB(t)
	seedApp(t, db, "vim", "development", 10)
	seedApp(t, db, "steam", "gaming", 2)

	cat := catalog.Catalog{Rules: []catalog.CategoryRules{
		{Category: "development", Rules: []catalog.Rule{
			{Subcategory: "python", Apps: []string{"vscode", "pycharm", "jupyter"}},
			{Subcategory: "web", Apps: []string{"vscode", "webstorm", "postman"}},
		}},
		{Category: "gaming", Rules: []catalog.Rule{
			{Subcategory: "steam", Apps: []string{"gamemode", "mangohud"}},
		}},
	}}
	svc := newRecommendService(t, db, cat, fakeProbe{})
	ctx := context.Background()

	_, err := svc.Generate(ctx)
	require.NoError(t, err)

	top, err := svc.Top(ctx, 20)
	require.NoError(t, err)
	require.Len(t, top, 7) // vscode deduplicated across python and web

	// Equal scores keep generation order, so development-derived entries
	// precede gaming-derived ones.
	firstGaming := -1
	lastDevelopment := -1
	for i, rec := range top {
		if rec.Category == "gaming" && firstGaming == -1 {
			firstGaming = i
		}
		if rec.Category == "development" {
			lastDevelopment = i
		}
	}
	require.NotEqual(t, -1, firstGaming)
	require.NotEqual(t, -1, lastDevelopment)
	assert.Less(t, lastDevelopment, firstGaming)

	assert.Equal(t, "pycharm", top[0].AppName)
	assert.Equal(t, "Recommended for development/python based on your usage patterns", top[0].Reason)
	assert.Equal(t, "Recommended for gaming/steam based on your usage patterns", top[firstGaming].Reason)

	for _, rec := range top {
		assert.NotEqual(t, "vim", rec.AppName)
		assert.NotEqual(t, "steam", rec.AppName)
		assert.Equal(t, DefaultScore, rec.Score)
	}
}

func TestGenerateReplacesPriorSet(t *testing.T) {
	db := newTestDB(t)
	seedApp(t, db, "vim", "development", 10)

	cat := catalog.Catalog{Rules: []catalog.CategoryRules{
		{Category: "development", Rules: []catalog.Rule{
			{Subcategory: "python", Apps: []string{"pycharm"}},
		}},
	}}
	svc := newRecommendService(t, db, cat, fakeProbe{})
	ctx := context.Background()

	_, err := svc.Generate(ctx)
	require.NoError(t, err)
	_, err = svc.Generate(ctx)
	require.NoError(t, err)

	top, err := svc.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "pycharm", top[0].AppName)
}

func TestFormatRecommendations(t *testing.T) {
	out := FormatRecommendations([]model.Recommendation{
		{AppName: "pycharm", Category: "development", Reason: "Recommended for development/python based on your usage patterns", Score: 0.8},
	})
	assert.True(t, strings.HasPrefix(out, "\nTop Application Recommendations:\n"))
	assert.Contains(t, out, "1. pycharm (development)")
	assert.Contains(t, out, "   Reason: Recommended for development/python based on your usage patterns")
	assert.Contains(t, out, "   Score: 0.80")

	empty := FormatRecommendations(nil)
	assert.Contains(t, empty, "No recommendations yet")
}
