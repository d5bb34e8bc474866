package ResetJob

import (
	"fmt"
	"time"

	"Hearth/Models"

	"gorm.io/gorm"
)

// DefaultBatchSize matches the underlying store's multi-row write ceiling.
const DefaultBatchSize = 500

// BatchMutator clears completion state on task rows in bounded batches.
type BatchMutator struct {
	DB        *gorm.DB
	BatchSize int
}

// Apply resets every task in ids: done and skipped are cleared along with
// their timestamps, and an audit stamp records which trigger performed the
// reset. Writes go out batch by batch; the first failing batch aborts the
// remaining ones so the caller fails loudly instead of under-reporting.
// Clearing an already-clear row is a no-op in effect, so retries are safe.
func (b BatchMutator) Apply(ids []uint, label string, at time.Time) (int, error) {
	size := b.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}

	processed := 0
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunk := ids[start:end]

		err := b.DB.Model(&Models.Task{}).
			Where("id IN ?", chunk).
			Updates(map[string]interface{}{
				"done":         false,
				"skipped":      false,
				"completed_at": nil,
				"completed_by": "",
				"skipped_at":   nil,
				"reset_at":     at,
				"reset_label":  label,
			}).Error
		if err != nil {
			return processed, fmt.Errorf("failed to reset batch %d-%d: %w", start, end, err)
		}
		processed += len(chunk)
	}
	return processed, nil
}
