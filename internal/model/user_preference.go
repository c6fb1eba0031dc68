package model

// UserPreference is a manually assigned category score. The automatic
// ranking path does not read it; it exists for explicit user overrides.
type UserPreference struct {
	ID       uint   `gorm:"primaryKey"`
	Category string `gorm:"uniqueIndex"`
	Score    int    `gorm:"default:0"`
}
