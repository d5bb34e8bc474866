package Models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recurrence kinds. Irregular tasks are only ever reset by user flows,
// never by the daily job.
const (
	RecurrenceDaily     = "Daily"
	RecurrenceWeekly    = "Weekly"
	RecurrenceIrregular = "Irregular"
)

type Task struct {
	gorm.Model
	Title      string `json:"title"`
	Recurrence string `json:"recurrence"`
	// Weekdays holds the scheduled weekday tokens for Weekly tasks as a JSON
	// array. Legacy rows may store numeric strings ("0".."6"), short names
	// ("Sun") or be missing entirely.
	Weekdays    datatypes.JSON `json:"weekdays,omitempty"`
	Done        bool           `json:"done"`
	Skipped     bool           `json:"skipped"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	CompletedBy string         `json:"completed_by,omitempty"`
	SkippedAt   *time.Time     `json:"skipped_at,omitempty"`
	ResetAt     *time.Time     `json:"reset_at,omitempty"`
	ResetLabel  string         `json:"reset_label,omitempty"`
}
