package timeutil

import (
	"time"
)

// Boundaries are computed from the server's local calendar. They are derived
// per call, never cached at package level, so a process running past midnight
// always sees the current day.

// StartOfDay returns 00:00:00.000 of the given time's local calendar day.
func StartOfDay(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
}

// EndOfDay returns 23:59:59.999 of the given time's local calendar day.
// Queries compare with $lt against this value, which keeps the whole final
// millisecond-granularity day in range.
func EndOfDay(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 23, 59, 59, 999000000, time.Local)
}

// StartOfMonth returns 00:00:00.000 of the first day of the given time's month.
func StartOfMonth(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), 1, 0, 0, 0, 0, time.Local)
}

// EndOfMonth returns 23:59:59.999 of the last day of the given time's month.
func EndOfMonth(t time.Time) time.Time {
	l := t.Local()
	firstOfNext := time.Date(l.Year(), l.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	return EndOfDay(firstOfNext.AddDate(0, 0, -1))
}

// Common layouts.
const (
	DateLayout  = "2006-01-02"
	LabelLayout = "02 Jan"
)
