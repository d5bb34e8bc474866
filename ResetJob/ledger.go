package ResetJob

import (
	"errors"
	"fmt"
	"time"

	"Hearth/Models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger is the per-day idempotency record for the reset job. A date key
// moves from no row to "running" to "success" and never backwards; a crashed
// run leaves the row at "running", so the next trigger that day rescans.
// Individual resets are idempotent, which makes the retry safe.
type Ledger struct {
	DB *gorm.DB
}

// CheckSuccess reports whether the reset work for dateKey already finished.
func (l Ledger) CheckSuccess(dateKey string) (bool, error) {
	var row Models.ResetRunLog
	err := l.DB.First(&row, "date_key = ?", dateKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read reset ledger for %s: %w", dateKey, err)
	}
	return row.Status == Models.ResetRunSuccess, nil
}

// TouchAttempt stamps attempt metadata on an existing row without changing
// its status. Used for observability on short-circuited invocations.
func (l Ledger) TouchAttempt(dateKey, label string, at time.Time) error {
	err := l.DB.Model(&Models.ResetRunLog{}).
		Where("date_key = ?", dateKey).
		Updates(map[string]interface{}{
			"last_attempt_at":    at,
			"last_attempt_label": label,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to stamp reset attempt for %s: %w", dateKey, err)
	}
	return nil
}

// BeginRun marks dateKey as running. The first invocation of a day creates
// the row and sets started_at; any other invocation, including one racing
// the create (the two fixed-time triggers firing near-simultaneously),
// falls through to a merge that stamps attempt metadata. That keeps
// concurrent BeginRun calls commutative. A row already at success is never
// demoted.
func (l Ledger) BeginRun(dateKey, label string, at time.Time) error {
	row := Models.ResetRunLog{
		DateKey:          dateKey,
		Status:           Models.ResetRunRunning,
		StartedAt:        at,
		LastAttemptAt:    at,
		LastAttemptLabel: label,
	}
	res := l.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if res.Error != nil {
		return fmt.Errorf("failed to create reset ledger row for %s: %w", dateKey, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// The row already existed, whether from an earlier invocation today or
	// from the other trigger winning the create just now. Merge attempt
	// metadata, then re-arm running unless the day already succeeded.
	err := l.DB.Model(&Models.ResetRunLog{}).
		Where("date_key = ?", dateKey).
		Updates(map[string]interface{}{
			"last_attempt_at":    at,
			"last_attempt_label": label,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to stamp reset attempt for %s: %w", dateKey, err)
	}

	err = l.DB.Model(&Models.ResetRunLog{}).
		Where("date_key = ? AND status <> ?", dateKey, Models.ResetRunSuccess).
		Update("status", Models.ResetRunRunning).Error
	if err != nil {
		return fmt.Errorf("failed to mark reset run for %s: %w", dateKey, err)
	}
	return nil
}

// CompleteRun marks dateKey as successfully finished.
func (l Ledger) CompleteRun(dateKey string, processed int, at time.Time) error {
	err := l.DB.Model(&Models.ResetRunLog{}).
		Where("date_key = ?", dateKey).
		Updates(map[string]interface{}{
			"status":          Models.ResetRunSuccess,
			"finished_at":     at,
			"processed_count": processed,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to complete reset run for %s: %w", dateKey, err)
	}
	return nil
}

// Recent returns ledger rows, newest day first.
func (l Ledger) Recent(limit int) ([]Models.ResetRunLog, error) {
	if limit <= 0 {
		limit = 30
	}
	var rows []Models.ResetRunLog
	err := l.DB.Order("date_key desc").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reset runs: %w", err)
	}
	return rows, nil
}

// Get returns the ledger row for one date key, or gorm.ErrRecordNotFound.
func (l Ledger) Get(dateKey string) (Models.ResetRunLog, error) {
	var row Models.ResetRunLog
	err := l.DB.First(&row, "date_key = ?", dateKey).Error
	return row, err
}
