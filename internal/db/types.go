package db

import "time"

// ProfileRecord is the listing view of a persisted profile
type ProfileRecord struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	CurrentCompany string    `json:"current_company"`
	Completeness   float64   `json:"completeness"`
	OverallScore   *float64  `json:"overall_score,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	LastUpdated    time.Time `json:"last_updated"`
}

// SyncStats counts what a pool sync wrote
type SyncStats struct {
	Profiles       int `json:"profiles"`
	ScoringResults int `json:"scoring_results"`
}
