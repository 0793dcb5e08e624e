package models

import "strings"

// Coordinates is a geographic point resolved through the place-details
// lookup. Absence is valid: a course without coordinates simply produces no
// travel reminder.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CourseRecord is the user-edited description of one recurring course
// meeting. Times are stored as the canonical 12-hour display string; the
// fractional-hour value is derived through timecodec when needed.
type CourseRecord struct {
	ID         string       `json:"id,omitempty"`
	Code       string       `json:"code"`
	Days       []Weekday    `json:"days"`
	StartTime  string       `json:"startTime"`
	EndTime    string       `json:"endTime"`
	Location   string       `json:"location"`
	RoomNumber *string      `json:"roomNumber,omitempty"`
	Coords     *Coordinates `json:"locationCoords,omitempty"`
}

// HasDay reports whether the record meets on the given weekday.
func (r CourseRecord) HasDay(day Weekday) bool {
	for _, d := range r.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so that copy-on-write list operations never
// alias the day slice or optional fields of the original.
func (r CourseRecord) Clone() CourseRecord {
	out := r
	out.Days = append([]Weekday(nil), r.Days...)
	if r.RoomNumber != nil {
		room := *r.RoomNumber
		out.RoomNumber = &room
	}
	if r.Coords != nil {
		coords := *r.Coords
		out.Coords = &coords
	}
	return out
}

// TrimmedCode returns the course code with surrounding whitespace removed.
func (r CourseRecord) TrimmedCode() string {
	return strings.TrimSpace(r.Code)
}
