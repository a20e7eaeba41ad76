package models

import "time"

// DateLayout is the ISO 8601 calendar date used for every date field.
const DateLayout = "2006-01-02"

// Date formats t as YYYY-MM-DD in t's location.
func Date(t time.Time) string { return t.Format(DateLayout) }

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// SameMonth reports whether the YYYY-MM-DD date falls in t's month.
func SameMonth(date string, t time.Time) bool {
	return len(date) >= 7 && date[:7] == t.Format("2006-01")
}
