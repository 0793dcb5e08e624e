package models

// BlockType discriminates the kinds of entries that can appear in a
// rendered week.
type BlockType string

const (
	BlockClass  BlockType = "class"
	BlockTravel BlockType = "travel"
)

// ScheduleBlock is a single rendered entry on one day of the week view.
// Class blocks carry the composite info string and the identifier of the
// course they were generated from; travel blocks carry a leave-by hint and
// no course linkage.
type ScheduleBlock struct {
	Day       Weekday   `json:"day"`
	Info      string    `json:"info"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Type      BlockType `json:"type"`
	Color     string    `json:"color,omitempty"`
	CourseID  string    `json:"courseId,omitempty"`
}

// WeekSchedule holds the blocks for each weekday. Every key in Weekdays is
// present even when its slice is empty.
type WeekSchedule map[Weekday][]ScheduleBlock

// NewWeekSchedule returns a week with an empty block list for every day.
func NewWeekSchedule() WeekSchedule {
	w := make(WeekSchedule, len(Weekdays))
	for _, d := range Weekdays {
		w[d] = []ScheduleBlock{}
	}
	return w
}

// Classes returns only the class blocks for the given day, preserving order.
func (w WeekSchedule) Classes(day Weekday) []ScheduleBlock {
	var out []ScheduleBlock
	for _, b := range w[day] {
		if b.Type == BlockClass {
			out = append(out, b)
		}
	}
	return out
}

// TotalBlocks counts blocks across all days.
func (w WeekSchedule) TotalBlocks() int {
	n := 0
	for _, d := range Weekdays {
		n += len(w[d])
	}
	return n
}

// UserSchedule is the persisted document for one user: the generated week
// plus the travel settings that were active when it was saved.
type UserSchedule struct {
	UserID     string       `json:"userId"`
	Schedule   WeekSchedule `json:"schedule"`
	DormCoords *Coordinates `json:"dormCoords,omitempty"`
}
