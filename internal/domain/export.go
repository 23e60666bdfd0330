package domain

import "time"

// YearExport is the JSON document produced by export and consumed by import.
// Import is lossless: the day-history is re-run through the rollup upsert.
type YearExport struct {
	Year           int            `json:"year"`
	ExportedAt     time.Time      `json:"export_date"`
	YearlyProgress YearlyProgress `json:"yearly_progress"`
	Achievements   []Achievement  `json:"achievements"`
	Goals          LearningGoals  `json:"goals"`
}
