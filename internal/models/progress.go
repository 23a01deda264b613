package models

import "time"

type Progress struct {
	ID                int       `json:"id"`
	LanguageID        int       `json:"language_id"`
	OverallPercentage float64   `json:"overall_percentage"`
	LastUpdated       time.Time `json:"last_updated"`
}
