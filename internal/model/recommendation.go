package model

import "time"

// Recommendation is a single suggested application. At most one row per app
// name; every generation pass replaces the whole set.
type Recommendation struct {
	ID            uint   `gorm:"primaryKey"`
	AppName       string `gorm:"uniqueIndex"`
	Category      string
	Reason        string
	Score         float64
	RecommendedAt time.Time
}
