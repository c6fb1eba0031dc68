package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"app-recommender/internal/model"
)

// PreferenceRepository stores manual category score overrides.
type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Set upserts the score for a category.
func (r *PreferenceRepository) Set(ctx context.Context, category string, score int) error {
	var pref model.UserPreference
	db := r.db.WithContext(ctx)
	err := db.Where("category = ?", category).First(&pref).Error
	switch {
	case err == nil:
		if err := db.Model(&pref).Update("score", score).Error; err != nil {
			return fmt.Errorf("update preference: %w", err)
		}
		return nil
	case err == gorm.ErrRecordNotFound:
		pref = model.UserPreference{Category: category, Score: score}
		if err := db.Create(&pref).Error; err != nil {
			return fmt.Errorf("create preference: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("find preference: %w", err)
	}
}

func (r *PreferenceRepository) List(ctx context.Context) ([]model.UserPreference, error) {
	var prefs []model.UserPreference
	if err := r.db.WithContext(ctx).Order("score DESC, category ASC").Find(&prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}
