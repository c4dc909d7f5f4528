// Package timeutil provides calendar-day helpers shared by the streak and
// stats packages.
package timeutil

import "time"

// DayKeyLayout is the format used for calendar-day keys
const DayKeyLayout = "2006-01-02"

// DayKey reduces a timestamp to its calendar date in the timezone of loc.
// Multiple timestamps on the same local day produce the same key.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayKeyLayout)
}

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayKey(a, loc) == DayKey(b, loc)
}

// SameMonth reports whether a and b fall in the same calendar month in loc
func SameMonth(a, b time.Time, loc *time.Location) bool {
	al, bl := a.In(loc), b.In(loc)
	return al.Year() == bl.Year() && al.Month() == bl.Month()
}
