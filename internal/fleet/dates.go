package fleet

import (
	"strings"
	"time"
)

// Feed records carry calendar dates as strings in a handful of shapes.
// ISO-8601 dates are the contract; full timestamps show up in older records.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate parses an ISO-8601 calendar date from a feed record.
// It returns nil for empty or malformed values instead of failing: a bad
// date in one record must not abort a whole snapshot. The result is
// normalized to midnight UTC.
func ParseDate(value *string) *time.Time {
	if value == nil {
		return nil
	}

	s := strings.TrimSpace(*value)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}

	return nil
}
