package entity

import "gorm.io/gorm"

// UpdateTracker records the last (date, meal period) a keyed job fully
// completed, so menu ingestion can be skipped when it already ran.
type UpdateTracker struct {
	gorm.Model
	Key       string   `gorm:"uniqueIndex;not null" json:"key"`
	LastRunAt MenuDate `gorm:"embedded;embeddedPrefix:last_run_at_" json:"last_run_at"`
}
