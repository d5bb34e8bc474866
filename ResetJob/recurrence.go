package ResetJob

import (
	"encoding/json"
	"strconv"
	"strings"

	"Hearth/Models"

	"gorm.io/datatypes"
)

var weekdayNames = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// IsDueToday reports whether a task with the given recurrence is scheduled
// for the current civil day.
//
// Daily tasks are always due. Irregular tasks are never handled by the daily
// job. Weekly tasks are due when today's weekday is in their weekday set; a
// missing or unparseable set fails open (due) so that legacy rows keep
// getting reset rather than silently dropping out of the cycle.
func IsDueToday(recurrence string, weekdays datatypes.JSON, todayWeekday int) bool {
	switch recurrence {
	case Models.RecurrenceDaily:
		return true
	case Models.RecurrenceIrregular:
		return false
	case Models.RecurrenceWeekly:
		set, ok := parseWeekdaySet(weekdays)
		if !ok || len(set) == 0 {
			return true
		}
		return set[todayWeekday]
	default:
		return false
	}
}

// parseWeekdaySet decodes a stored weekday list into numeric indices. The
// second return is false when the column is absent or not a JSON array.
// Unrecognized tokens are dropped.
func parseWeekdaySet(weekdays datatypes.JSON) (map[int]bool, bool) {
	if len(weekdays) == 0 {
		return nil, false
	}
	var raw []interface{}
	if err := json.Unmarshal(weekdays, &raw); err != nil {
		return nil, false
	}
	set := make(map[int]bool, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case float64:
			if d := int(v); d >= 0 && d <= 6 {
				set[d] = true
			}
		case string:
			if d, ok := normalizeWeekdayToken(v); ok {
				set[d] = true
			}
		}
	}
	return set, true
}

// normalizeWeekdayToken accepts numeric tokens ("0".."6") and human-readable
// weekday names, matched case-insensitively on their first three letters so
// both "Tue" and "Tuesday" resolve to 2.
func normalizeWeekdayToken(token string) (int, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return 0, false
	}
	if d, err := strconv.Atoi(token); err == nil {
		if d >= 0 && d <= 6 {
			return d, true
		}
		return 0, false
	}
	if len(token) < 3 {
		return 0, false
	}
	prefix := token[:3]
	for i, name := range weekdayNames {
		if prefix == name {
			return i, true
		}
	}
	return 0, false
}
