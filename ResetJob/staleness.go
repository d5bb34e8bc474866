package ResetJob

import "Hearth/Models"

// NeedsReset reports whether a task's completion or skip no longer belongs
// to the current civil day and must be cleared.
//
// A completion is stale when completed_at is set but falls on an earlier
// day. A skip is stale when the skip day is not today; the skip day is read
// from skipped_at when present, falling back to updated_at for legacy rows
// that never recorded skipped_at, and finally assumed to be today when both
// are missing so a same-instant skip is never cleared on a hunch. The
// fallback order is load-bearing for legacy rows and must not be reordered.
func NeedsReset(task Models.Task, todayKey string, cal *Calendar) bool {
	isDoneToday := task.Done && task.CompletedAt != nil && cal.DateKey(*task.CompletedAt) == todayKey

	isSkippedToday := false
	if task.Skipped {
		switch {
		case task.SkippedAt != nil:
			isSkippedToday = cal.DateKey(*task.SkippedAt) == todayKey
		case !task.UpdatedAt.IsZero():
			isSkippedToday = cal.DateKey(task.UpdatedAt) == todayKey
		default:
			isSkippedToday = true
		}
	}

	return (task.CompletedAt != nil && !isDoneToday) || (task.Skipped && !isSkippedToday)
}
