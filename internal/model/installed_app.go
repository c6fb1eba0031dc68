package model

import "time"

// InstalledApp is one package observed on the system. Rows are created on
// first scan and never deleted; usage scans bump LastUsed and UsageCount.
type InstalledApp struct {
	ID          uint   `gorm:"primaryKey"`
	AppName     string `gorm:"uniqueIndex"`
	Category    string
	InstallDate time.Time `gorm:"autoCreateTime"`
	LastUsed    *time.Time
	UsageCount  int `gorm:"default:0"`
}
