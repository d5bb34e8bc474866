package Models

import "time"

// Reset run statuses. A crashed run stays at "running" and the next trigger
// that day retries the scan; "success" is terminal for its date.
const (
	ResetRunRunning = "running"
	ResetRunSuccess = "success"
)

// ResetRunLog is the per-day ledger row gating the recurring-task reset job.
// One row per civil day, keyed by the YYYY-MM-DD date key; rows are never
// deleted.
type ResetRunLog struct {
	DateKey          string     `json:"date_key" gorm:"primaryKey;size:10"`
	Status           string     `json:"status"`
	StartedAt        time.Time  `json:"started_at"`
	FinishedAt       *time.Time `json:"finished_at,omitempty"`
	LastAttemptAt    time.Time  `json:"last_attempt_at"`
	LastAttemptLabel string     `json:"last_attempt_label"`
	ProcessedCount   int        `json:"processed_count"`
}
