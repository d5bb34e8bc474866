package ResetJob

import (
	"log"
	"os"
	"time"
)

const DateKeyLayout = "2006-01-02"

// Clock abstracts time.Now so runs can be replayed against fixed instants.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Calendar maps instants to civil days in one fixed timezone. Two instants
// share a date key iff they fall on the same civil day in that zone.
type Calendar struct {
	loc *time.Location
}

func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{loc: loc}
}

// CalendarFromEnv builds the calendar from RESET_TIMEZONE, falling back to
// the server's local zone when unset or unknown.
func CalendarFromEnv() *Calendar {
	name := os.Getenv("RESET_TIMEZONE")
	if name == "" {
		return NewCalendar(time.Local)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Unknown RESET_TIMEZONE %q, using local zone: %v", name, err)
		return NewCalendar(time.Local)
	}
	return NewCalendar(loc)
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

// DateKey returns the sortable YYYY-MM-DD key of the civil day containing t.
func (c *Calendar) DateKey(t time.Time) string {
	return t.In(c.loc).Format(DateKeyLayout)
}

// Weekday returns the weekday index of t's civil day, 0=Sunday..6=Saturday.
func (c *Calendar) Weekday(t time.Time) int {
	return int(t.In(c.loc).Weekday())
}
