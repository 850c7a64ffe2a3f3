package domain

import "time"

// LocalTimeLayout is the naive local date-time format used on the wire.
// Timestamps never carry an offset; the collaborator stores and round-trips
// them verbatim.
const LocalTimeLayout = "2006-01-02T15:04:05"

// FormatLocalTime renders t as a naive local timestamp string.
func FormatLocalTime(t time.Time) string {
	return t.Format(LocalTimeLayout)
}

// ParseLocalTime parses a naive local timestamp string.
func ParseLocalTime(s string) (time.Time, error) {
	return time.Parse(LocalTimeLayout, s)
}

// DayStart returns the first instant of t's calendar day.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd returns the last instant of t's calendar day, inclusive.
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
