package entities

import "time"

// Seed run outcomes
const (
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
)

// CategoryCount is the tally of one seeded category
type CategoryCount struct {
	Category string `json:"category"`
	Table    string `json:"table"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
}

// SeedRunEvent announces the end of a seeding run to other platform services
type SeedRunEvent struct {
	RunID          string          `json:"run_id"`
	Command        string          `json:"command"`
	Schema         string          `json:"schema"`
	Status         string          `json:"status"`
	Error          string          `json:"error,omitempty"`
	Categories     []CategoryCount `json:"categories"`
	ColumnsAdded   []string        `json:"columns_added,omitempty"`
	DDLSkipped     int             `json:"ddl_skipped"`
	UIDsAssigned   int             `json:"uids_assigned"`
	UIDsBackfilled int             `json:"uids_backfilled"`
	StartedAt      time.Time       `json:"started_at"`
	FinishedAt     time.Time       `json:"finished_at"`
}
