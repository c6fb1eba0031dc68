package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"app-recommender/internal/model"
)

// AppRepository handles installed-application records.
type AppRepository struct {
	db *gorm.DB
}

func NewAppRepository(db *gorm.DB) *AppRepository {
	return &AppRepository{db: db}
}

// EnsureInstalled inserts rows for apps not seen before and leaves existing
// rows untouched, so a repeated scan is a no-op. The whole batch runs in one
// transaction; on error nothing from the batch is kept. Returns the number
// of newly inserted rows.
func (r *AppRepository) EnsureInstalled(ctx context.Context, apps []model.InstalledApp) (int, error) {
	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range apps {
			var existing model.InstalledApp
			err := tx.Where("app_name = ?", apps[i].AppName).First(&existing).Error
			switch {
			case err == nil:
				continue
			case err == gorm.ErrRecordNotFound:
				if err := tx.Create(&apps[i]).Error; err != nil {
					return fmt.Errorf("create installed app: %w", err)
				}
				inserted++
			default:
				return fmt.Errorf("find installed app: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// RecordUsage stamps last_used and increments usage_count for each named app
// that exists. Names without a matching row are silently ignored; usage
// signals never create apps. Returns the number of rows touched.
func (r *AppRepository) RecordUsage(ctx context.Context, names []string, usedAt time.Time) (int, error) {
	updated := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			res := tx.Model(&model.InstalledApp{}).
				Where("app_name = ?", name).
				Updates(map[string]interface{}{
					"last_used":   usedAt,
					"usage_count": gorm.Expr("usage_count + ?", 1),
				})
			if res.Error != nil {
				return fmt.Errorf("update usage for %q: %w", name, res.Error)
			}
			updated += int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (r *AppRepository) ListAll(ctx context.Context) ([]model.InstalledApp, error) {
	var apps []model.InstalledApp
	if err := r.db.WithContext(ctx).Order("app_name ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppRepository) FindByName(ctx context.Context, name string) (*model.InstalledApp, error) {
	var app model.InstalledApp
	if err := r.db.WithContext(ctx).Where("app_name = ?", name).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}
