package maintenance

import "time"

// ShiftFromWeekend moves a date landing on a weekend to the following
// Monday: Sunday shifts one day, Saturday two. Weekdays pass through
// unchanged. The second return value reports whether a shift happened.
func ShiftFromWeekend(d time.Time) (time.Time, bool) {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2), true
	case time.Sunday:
		return d.AddDate(0, 0, 1), true
	}
	return d, false
}

// dateOnly truncates a timestamp to its calendar date at midnight UTC
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// sameDay reports whether two timestamps fall on the same calendar date
func sameDay(a, b time.Time) bool {
	return dateOnly(a).Equal(dateOnly(b))
}
