package models

import "time"

// Weekday identifies one of the five scheduled days. Weekend meetings are
// not part of the schedule domain.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

// Weekdays is the fixed Monday..Friday sequence used for rendering and for
// cyclic day navigation. Order matters.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// ValidWeekday reports whether d is one of the five scheduled days.
func ValidWeekday(d Weekday) bool {
	for _, w := range Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// TimeWeekday maps a schedule weekday onto the time package's enumeration,
// used when registering recurring notification jobs.
func (d Weekday) TimeWeekday() time.Weekday {
	switch d {
	case Monday:
		return time.Monday
	case Tuesday:
		return time.Tuesday
	case Wednesday:
		return time.Wednesday
	case Thursday:
		return time.Thursday
	case Friday:
		return time.Friday
	}
	return time.Sunday
}
