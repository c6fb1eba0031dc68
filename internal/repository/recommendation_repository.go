package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"app-recommender/internal/model"
)

// RecommendationRepository persists generated recommendations.
type RecommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// ReplaceAll swaps the stored recommendation set for the given one. Clear and
// insert happen in a single transaction, so a concurrent reader sees either
// the old set or the new set, never a mix.
func (r *RecommendationRepository) ReplaceAll(ctx context.Context, recs []model.Recommendation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.Recommendation{}).Error; err != nil {
			return fmt.Errorf("clear recommendations: %w", err)
		}
		for i := range recs {
			if err := tx.Create(&recs[i]).Error; err != nil {
				return fmt.Errorf("insert recommendation %q: %w", recs[i].AppName, err)
			}
		}
		return nil
	})
}

// Top returns up to n recommendations ordered by score descending. Equal
// scores keep generation order (ascending id).
func (r *RecommendationRepository) Top(ctx context.Context, n int) ([]model.Recommendation, error) {
	if n <= 0 {
		return []model.Recommendation{}, nil
	}
	var recs []model.Recommendation
	if err := r.db.WithContext(ctx).
		Order("score DESC, id ASC").
		Limit(n).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *RecommendationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Recommendation{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
