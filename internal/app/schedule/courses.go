// Package schedule holds the engine that turns user-edited course records
// into a rendered weekly schedule: list editing, week construction, and the
// fixed-window timeline layout.
package schedule

import (
	"strings"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/timecodec"
)

// Field names a single editable text field of a course record.
type Field string

const (
	FieldCode       Field = "code"
	FieldStartTime  Field = "startTime"
	FieldEndTime    Field = "endTime"
	FieldLocation   Field = "location"
	FieldRoomNumber Field = "roomNumber"
)

// CourseList is the ordered collection of course records for one editing
// session. All mutating operations are copy-on-write: they return a new
// list and never touch the receiver, so concurrent completions can never
// observe a half-applied edit.
type CourseList []models.CourseRecord

// Clone deep-copies the list.
func (l CourseList) Clone() CourseList {
	out := make(CourseList, len(l))
	for i, r := range l {
		out[i] = r.Clone()
	}
	return out
}

// Update replaces one text field of the record at index i.
func (l CourseList) Update(i int, field Field, value string) (CourseList, error) {
	if i < 0 || i >= len(l) {
		return nil, apperrors.NewValidationError("course index out of range")
	}
	out := l.Clone()
	switch field {
	case FieldCode:
		out[i].Code = value
	case FieldStartTime:
		out[i].StartTime = value
	case FieldEndTime:
		out[i].EndTime = value
	case FieldLocation:
		out[i].Location = value
	case FieldRoomNumber:
		if value == "" {
			out[i].RoomNumber = nil
		} else {
			v := value
			out[i].RoomNumber = &v
		}
	default:
		return nil, apperrors.NewValidationError("unknown course field: " + string(field))
	}
	return out, nil
}

// ToggleDay adds day to the record's day set if absent, removes it if
// present. Insertion order of the remaining days is preserved.
func (l CourseList) ToggleDay(i int, day models.Weekday) (CourseList, error) {
	if i < 0 || i >= len(l) {
		return nil, apperrors.NewValidationError("course index out of range")
	}
	if !models.ValidWeekday(day) {
		return nil, apperrors.NewValidationError("unknown weekday: " + string(day))
	}
	out := l.Clone()
	days := out[i].Days
	for j, d := range days {
		if d == day {
			out[i].Days = append(days[:j:j], days[j+1:]...)
			return out, nil
		}
	}
	out[i].Days = append(days, day)
	return out, nil
}

// Add appends a record to the end of the list.
func (l CourseList) Add(r models.CourseRecord) CourseList {
	out := l.Clone()
	return append(out, r.Clone())
}

// Remove deletes the record at index i. Other records keep their positions
// relative to each other.
func (l CourseList) Remove(i int) (CourseList, error) {
	if i < 0 || i >= len(l) {
		return nil, apperrors.NewValidationError("course index out of range")
	}
	out := l.Clone()
	return append(out[:i], out[i+1:]...), nil
}

// Edit replaces the course code at index i.
func (l CourseList) Edit(i int, newCode string) (CourseList, error) {
	return l.Update(i, FieldCode, newCode)
}

// SetCoords attaches resolved coordinates to the record at index i.
func (l CourseList) SetCoords(i int, coords models.Coordinates) (CourseList, error) {
	if i < 0 || i >= len(l) {
		return nil, apperrors.NewValidationError("course index out of range")
	}
	out := l.Clone()
	out[i].Coords = &coords
	return out, nil
}

// IsComplete reports whether a record has everything generation needs: at
// least one day, a location, and a parseable start time strictly before the
// end time. A time that does not parse counts as unset.
func IsComplete(r models.CourseRecord) bool {
	if len(r.Days) == 0 || strings.TrimSpace(r.Location) == "" {
		return false
	}
	if strings.TrimSpace(r.StartTime) == "" || strings.TrimSpace(r.EndTime) == "" {
		return false
	}
	start, err := timecodec.Parse(r.StartTime)
	if err != nil {
		return false
	}
	end, err := timecodec.Parse(r.EndTime)
	if err != nil {
		return false
	}
	return start < end
}

// AllComplete gates schedule generation: every record must be complete and
// the list must not be empty.
func AllComplete(records []models.CourseRecord) bool {
	if len(records) == 0 {
		return false
	}
	for _, r := range records {
		if !IsComplete(r) {
			return false
		}
	}
	return true
}
