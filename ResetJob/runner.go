package ResetJob

import (
	"fmt"
	"log"

	"Hearth/Models"

	"gorm.io/gorm"
)

// Summary is the outcome of one reset invocation. Skipped is true when the
// run short-circuited because the day had already been handled.
type Summary struct {
	DateKey   string `json:"date_key"`
	Processed int    `json:"processed"`
	Skipped   bool   `json:"skipped"`
}

// Runner wires the calendar, ledger and batch mutator into the daily reset
// job. It is stateless between invocations; the ledger row is the only
// durable state. Concurrent invocations (the primary and backup triggers)
// are tolerated: the success check is advisory and individual resets are
// idempotent, so the worst case is duplicate scanning, not corruption.
type Runner struct {
	DB        *gorm.DB
	Clock     Clock
	Cal       *Calendar
	BatchSize int
}

func NewRunner(db *gorm.DB, clock Clock, cal *Calendar, batchSize int) *Runner {
	if clock == nil {
		clock = SystemClock{}
	}
	if cal == nil {
		cal = NewCalendar(nil)
	}
	return &Runner{DB: db, Clock: clock, Cal: cal, BatchSize: batchSize}
}

// Run executes the reset scan for the current civil day. label identifies
// the trigger ("primary@05:30", "manual", ...) and is recorded on the ledger
// and on every reset task for observability. Store errors propagate to the
// caller; malformed task rows never abort the run (the evaluators resolve
// them via their fallback policies).
func (r *Runner) Run(label string) (Summary, error) {
	now := r.Clock.Now()
	today := r.Cal.DateKey(now)
	ledger := Ledger{DB: r.DB}

	done, err := ledger.CheckSuccess(today)
	if err != nil {
		return Summary{DateKey: today}, err
	}
	if done {
		if err := ledger.TouchAttempt(today, label, now); err != nil {
			return Summary{DateKey: today}, err
		}
		log.Printf("Reset for %s already succeeded, skipping (trigger %s)", today, label)
		return Summary{DateKey: today, Skipped: true}, nil
	}

	if err := ledger.BeginRun(today, label, now); err != nil {
		return Summary{DateKey: today}, err
	}

	candidates, err := r.fetchCandidates()
	if err != nil {
		return Summary{DateKey: today}, err
	}

	todayWeekday := r.Cal.Weekday(now)
	dueCount := 0
	var resetIDs []uint
	for _, task := range candidates {
		// Only Daily and Weekly tasks are subject to the automatic reset.
		if task.Recurrence != Models.RecurrenceDaily && task.Recurrence != Models.RecurrenceWeekly {
			continue
		}
		// Due-today is tracked for observability only: reset is driven by
		// staleness, so a weekly task completed on an off-schedule day is
		// still cleared once its completion no longer belongs to today.
		if IsDueToday(task.Recurrence, task.Weekdays, todayWeekday) {
			dueCount++
		}
		if NeedsReset(task, today, r.Cal) {
			resetIDs = append(resetIDs, task.ID)
		}
	}

	mutator := BatchMutator{DB: r.DB, BatchSize: r.BatchSize}
	processed, err := mutator.Apply(resetIDs, label, now)
	if err != nil {
		return Summary{DateKey: today, Processed: processed}, err
	}

	if err := ledger.CompleteRun(today, processed, r.Clock.Now()); err != nil {
		return Summary{DateKey: today, Processed: processed}, err
	}

	log.Printf("Reset run %s (trigger %s): %d candidates, %d due today, %d reset",
		today, label, len(candidates), dueCount, processed)
	return Summary{DateKey: today, Processed: processed}, nil
}

// fetchCandidates unions the done=true and skipped=true result sets, keyed
// by id so a malformed row satisfying both predicates is handled once.
func (r *Runner) fetchCandidates() ([]Models.Task, error) {
	var doneTasks, skippedTasks []Models.Task
	if err := r.DB.Where("done = ?", true).Find(&doneTasks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch completed tasks: %w", err)
	}
	if err := r.DB.Where("skipped = ?", true).Find(&skippedTasks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch skipped tasks: %w", err)
	}

	byID := make(map[uint]Models.Task, len(doneTasks)+len(skippedTasks))
	for _, t := range doneTasks {
		byID[t.ID] = t
	}
	for _, t := range skippedTasks {
		byID[t.ID] = t
	}

	out := make([]Models.Task, 0, len(byID))
	for _, t := range byID {
		out = append(out, t)
	}
	return out, nil
}
