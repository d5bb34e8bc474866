package CronJobs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"Hearth/ResetJob"
	"Hearth/Slack"

	"github.com/robfig/cron/v3"
)

const (
	defaultPrimaryAt = "05:30"
	defaultBackupAt  = "05:45"
)

// ResetScheduler fires the daily recurring-task reset at two fixed
// wall-clock times: a primary trigger and a backup a few minutes later. The
// run itself is idempotent per civil day, so the backup (or a manual
// retrigger) firing after a successful primary is a cheap no-op.
type ResetScheduler struct {
	cronScheduler *cron.Cron
	runner        *ResetJob.Runner
	primaryAt     string
	backupAt      string
	primaryID     cron.EntryID
	backupID      cron.EntryID
}

// NewResetScheduler creates the scheduler in the job's fixed timezone.
// Trigger times come from RESET_PRIMARY_AT / RESET_BACKUP_AT ("HH:MM"),
// defaulting to 05:30 and 05:45.
func NewResetScheduler(runner *ResetJob.Runner, loc *time.Location) *ResetScheduler {
	return &ResetScheduler{
		cronScheduler: cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		runner:        runner,
		primaryAt:     envOr("RESET_PRIMARY_AT", defaultPrimaryAt),
		backupAt:      envOr("RESET_BACKUP_AT", defaultBackupAt),
	}
}

// Start registers both daily entries and starts the scheduler.
func (s *ResetScheduler) Start() error {
	primarySpec, err := cronSpecFor(s.primaryAt)
	if err != nil {
		return fmt.Errorf("bad primary trigger time %q: %w", s.primaryAt, err)
	}
	backupSpec, err := cronSpecFor(s.backupAt)
	if err != nil {
		return fmt.Errorf("bad backup trigger time %q: %w", s.backupAt, err)
	}

	primaryLabel := "primary@" + s.primaryAt
	backupLabel := "backup@" + s.backupAt

	s.primaryID, err = s.cronScheduler.AddFunc(primarySpec, func() {
		s.fire(primaryLabel)
	})
	if err != nil {
		return fmt.Errorf("error scheduling primary reset trigger: %w", err)
	}
	s.backupID, err = s.cronScheduler.AddFunc(backupSpec, func() {
		s.fire(backupLabel)
	})
	if err != nil {
		return fmt.Errorf("error scheduling backup reset trigger: %w", err)
	}

	s.cronScheduler.Start()
	nextPrimary, nextBackup := s.NextRuns()
	log.Printf("Reset scheduler started - daily at %s with backup at %s (next fires %s and %s)",
		s.primaryAt, s.backupAt,
		nextPrimary.Format(time.RFC3339), nextBackup.Format(time.RFC3339))
	return nil
}

// NextRuns reports the next scheduled firing of the primary and backup
// triggers. Both are zero until Start has been called.
func (s *ResetScheduler) NextRuns() (time.Time, time.Time) {
	return s.cronScheduler.Entry(s.primaryID).Next, s.cronScheduler.Entry(s.backupID).Next
}

// Stop terminates the scheduler. A run already in flight finishes on its own.
func (s *ResetScheduler) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		log.Println("Reset scheduler stopped")
	}
}

// RunNow executes a manual reset outside the schedule.
func (s *ResetScheduler) RunNow() (ResetJob.Summary, error) {
	log.Println("Running manual reset")
	return s.runner.Run("manual")
}

// fire runs one scheduled invocation. Errors are logged, not retried here;
// the next trigger of the day picks up whatever is left because the ledger
// row is still short of success.
func (s *ResetScheduler) fire(label string) {
	summary, err := s.runner.Run(label)
	if err != nil {
		log.Printf("Error in reset run (trigger %s): %v", label, err)
		return
	}
	if summary.Skipped {
		return
	}
	Slack.NotifyResetSummary(summary.DateKey, label, summary.Processed)
}

// cronSpecFor converts an "HH:MM" wall-clock time into a daily cron spec
// with a seconds field.
func cronSpecFor(at string) (string, error) {
	parts := strings.Split(at, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("expected HH:MM")
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("bad hour %q", parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("bad minute %q", parts[1])
	}
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
