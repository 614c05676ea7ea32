package sqlite

import (
	"time"
)

// FormatTimeForDB formats a time.Time value as RFC3339 string for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database.
// Empty values, which pre-date timestamp columns, parse as the zero time.
func ParseTimeFromDB(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}

// BoolToDB converts a completion flag to the INTEGER stored by sqlite.
func BoolToDB(b bool) int {
	if b {
		return 1
	}
	return 0
}
