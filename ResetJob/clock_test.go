package ResetJob

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarDateKey(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	cal := NewCalendar(jst)

	// 23:30 JST and 00:10 JST next day are different civil days even though
	// both are the same UTC day.
	evening := time.Date(2025, 9, 4, 14, 30, 0, 0, time.UTC) // 23:30 JST
	night := time.Date(2025, 9, 4, 15, 10, 0, 0, time.UTC)   // 00:10 JST Sep 5

	assert.Equal(t, "2025-09-04", cal.DateKey(evening))
	assert.Equal(t, "2025-09-05", cal.DateKey(night))

	// Instants on the same civil day map to the same key.
	assert.Equal(t, cal.DateKey(night), cal.DateKey(night.Add(8*time.Hour)))
}

func TestCalendarDateKeyAcrossDST(t *testing.T) {
	nyc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	cal := NewCalendar(nyc)

	// Spring forward 2025-03-09: 02:00 EST jumps to 03:00 EDT, so the civil
	// day is only 23 hours long but keys consistently on both sides.
	assert.Equal(t, "2025-03-08", cal.DateKey(time.Date(2025, 3, 9, 4, 59, 0, 0, time.UTC)))  // 23:59 EST Mar 8
	assert.Equal(t, "2025-03-09", cal.DateKey(time.Date(2025, 3, 9, 6, 30, 0, 0, time.UTC)))  // 01:30 EST
	assert.Equal(t, "2025-03-09", cal.DateKey(time.Date(2025, 3, 9, 7, 30, 0, 0, time.UTC)))  // 03:30 EDT
	assert.Equal(t, "2025-03-10", cal.DateKey(time.Date(2025, 3, 10, 4, 30, 0, 0, time.UTC))) // 00:30 EDT Mar 10

	// Fall back 2025-11-02: 01:30 happens twice; both instants are still the
	// same civil day, and midnight EST next day starts the new key.
	assert.Equal(t, "2025-11-02", cal.DateKey(time.Date(2025, 11, 2, 5, 30, 0, 0, time.UTC))) // 01:30 EDT
	assert.Equal(t, "2025-11-02", cal.DateKey(time.Date(2025, 11, 2, 6, 30, 0, 0, time.UTC))) // 01:30 EST
	assert.Equal(t, "2025-11-02", cal.DateKey(time.Date(2025, 11, 3, 4, 59, 0, 0, time.UTC))) // 23:59 EST Nov 2
	assert.Equal(t, "2025-11-03", cal.DateKey(time.Date(2025, 11, 3, 5, 0, 0, 0, time.UTC)))  // 00:00 EST Nov 3

	// 2025-03-09 is a Sunday on both sides of the transition.
	assert.Equal(t, 0, cal.Weekday(time.Date(2025, 3, 9, 6, 30, 0, 0, time.UTC)))
	assert.Equal(t, 0, cal.Weekday(time.Date(2025, 3, 9, 7, 30, 0, 0, time.UTC)))
}

func TestCalendarWeekday(t *testing.T) {
	cal := NewCalendar(time.UTC)

	// 2025-09-05 is a Friday, 2025-09-07 a Sunday.
	assert.Equal(t, 5, cal.Weekday(time.Date(2025, 9, 5, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, cal.Weekday(time.Date(2025, 9, 7, 12, 0, 0, 0, time.UTC)))
}

func TestCalendarDefaultsToLocal(t *testing.T) {
	cal := NewCalendar(nil)
	assert.Equal(t, time.Local, cal.Location())
}
