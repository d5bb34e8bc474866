package ResetJob

import (
	"testing"
	"time"

	"Hearth/Models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var stalenessCal = NewCalendar(time.UTC)

const stalenessToday = "2025-09-05"

func ts(day int, hour int) *time.Time {
	t := time.Date(2025, 9, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func TestNeedsResetCompletion(t *testing.T) {
	t.Run("completed yesterday is stale", func(t *testing.T) {
		task := Models.Task{Recurrence: Models.RecurrenceDaily, Done: true, CompletedAt: ts(4, 18)}
		assert.True(t, NeedsReset(task, stalenessToday, stalenessCal))
	})

	t.Run("completed today is preserved", func(t *testing.T) {
		task := Models.Task{Recurrence: Models.RecurrenceDaily, Done: true, CompletedAt: ts(5, 7)}
		assert.False(t, NeedsReset(task, stalenessToday, stalenessCal))
	})

	t.Run("stray completed_at without done flag is still cleared", func(t *testing.T) {
		task := Models.Task{Recurrence: Models.RecurrenceDaily, Done: false, CompletedAt: ts(4, 18)}
		assert.True(t, NeedsReset(task, stalenessToday, stalenessCal))
	})

	t.Run("pending task untouched", func(t *testing.T) {
		task := Models.Task{Recurrence: Models.RecurrenceDaily}
		assert.False(t, NeedsReset(task, stalenessToday, stalenessCal))
	})
}

func TestNeedsResetSkipFallbackChain(t *testing.T) {
	t.Run("skipped_at today", func(t *testing.T) {
		task := Models.Task{Skipped: true, SkippedAt: ts(5, 6)}
		assert.False(t, NeedsReset(task, stalenessToday, stalenessCal))
	})

	t.Run("skipped_at yesterday", func(t *testing.T) {
		task := Models.Task{Skipped: true, SkippedAt: ts(4, 6)}
		assert.True(t, NeedsReset(task, stalenessToday, stalenessCal))
	})

	t.Run("no skipped_at falls back to updated_at today", func(t *testing.T) {
		task := Models.Task{Skipped: true, Model: gorm.Model{UpdatedAt: *ts(5, 9)}}
		assert.False(t, NeedsReset(task, stalenessToday, stalenessCal))
	})

	t.Run("no skipped_at falls back to updated_at yesterday", func(t *testing.T) {
		task := Models.Task{Skipped: true, Model: gorm.Model{UpdatedAt: *ts(4, 9)}}
		assert.True(t, NeedsReset(task, stalenessToday, stalenessCal))
	})

	t.Run("skipped_at wins over updated_at", func(t *testing.T) {
		// skipped_at is yesterday, updated_at today: the order of fallbacks
		// means the skip counts as yesterday's.
		task := Models.Task{Skipped: true, SkippedAt: ts(4, 6), Model: gorm.Model{UpdatedAt: *ts(5, 9)}}
		assert.True(t, NeedsReset(task, stalenessToday, stalenessCal))
	})

	t.Run("no timestamps at all assumes skipped today", func(t *testing.T) {
		task := Models.Task{Skipped: true}
		assert.False(t, NeedsReset(task, stalenessToday, stalenessCal))
	})
}

func TestNeedsResetBothFlags(t *testing.T) {
	// Malformed row with done and skipped both set: stale on either side
	// means reset.
	task := Models.Task{
		Done:        true,
		CompletedAt: ts(5, 7),
		Skipped:     true,
		SkippedAt:   ts(4, 6),
	}
	assert.True(t, NeedsReset(task, stalenessToday, stalenessCal))

	task.SkippedAt = ts(5, 6)
	assert.False(t, NeedsReset(task, stalenessToday, stalenessCal))
}
