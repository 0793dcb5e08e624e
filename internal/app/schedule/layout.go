package schedule

import (
	"strings"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/timecodec"
)

// The rendered timeline covers a fixed 7 AM to 7 PM window.
const (
	windowStartHour = 7.0
	windowEndHour   = 19.0
)

// Timeline computes absolute vertical placement for schedule blocks on a
// fixed-scale day view.
type Timeline struct {
	// HourHeight is the pixel height of one clock hour.
	HourHeight float64
}

// BlockFrame is the vertical placement of one block relative to the top of
// the 7 AM origin.
type BlockFrame struct {
	Top    float64
	Height float64
}

// Frame computes a block's raw placement from its parsed start and end
// times. A time that fails to parse returns ErrParseFailure; callers treat
// the block as having no set time and skip it.
func (t Timeline) Frame(b models.ScheduleBlock) (BlockFrame, error) {
	start, err := timecodec.Parse(b.StartTime)
	if err != nil {
		return BlockFrame{}, err
	}
	end, err := timecodec.Parse(b.EndTime)
	if err != nil {
		return BlockFrame{}, err
	}
	return BlockFrame{
		Top:    (start - windowStartHour) * t.HourHeight,
		Height: (end - start) * t.HourHeight,
	}, nil
}

// Visible reports whether any part of the frame falls inside the rendered
// window. Blocks entirely before 7 AM or after 7 PM are clipped, which is
// expected behavior rather than an error.
func (t Timeline) Visible(f BlockFrame) bool {
	windowHeight := (windowEndHour - windowStartHour) * t.HourHeight
	return f.Top+f.Height > 0 && f.Top < windowHeight
}

// Clip clamps a frame to the rendered window.
func (t Timeline) Clip(f BlockFrame) BlockFrame {
	windowHeight := (windowEndHour - windowStartHour) * t.HourHeight
	top := f.Top
	bottom := f.Top + f.Height
	if top < 0 {
		top = 0
	}
	if bottom > windowHeight {
		bottom = windowHeight
	}
	if bottom < top {
		bottom = top
	}
	return BlockFrame{Top: top, Height: bottom - top}
}

// codeFromInfo extracts the course code token from a block's info string:
// the last whitespace-delimited token before the literal " at " separator.
func codeFromInfo(info string) string {
	idx := strings.Index(info, " at ")
	if idx < 0 {
		return ""
	}
	fields := strings.Fields(info[:idx])
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// FindSourceRecord matches a class block back to the record that produced
// it, for edit flows. A block carrying a course identifier matches by that
// identifier directly; otherwise the code token from the info string must
// equal the record's code and both parsed times must match exactly. No
// match returns ErrLookupMiss, which callers recover from by treating the
// edit as adding a new course.
func FindSourceRecord(block models.ScheduleBlock, records []models.CourseRecord) (models.CourseRecord, error) {
	if block.Type != models.BlockClass {
		return models.CourseRecord{}, apperrors.NewCustomError(apperrors.ErrLookupMiss, "not a class block")
	}

	if block.CourseID != "" {
		for _, r := range records {
			if r.ID == block.CourseID {
				return r, nil
			}
		}
	}

	code := codeFromInfo(block.Info)
	blockStart, err := timecodec.Parse(block.StartTime)
	if err != nil {
		return models.CourseRecord{}, apperrors.NewCustomError(apperrors.ErrLookupMiss, "block start time unreadable")
	}
	blockEnd, err := timecodec.Parse(block.EndTime)
	if err != nil {
		return models.CourseRecord{}, apperrors.NewCustomError(apperrors.ErrLookupMiss, "block end time unreadable")
	}

	for _, r := range records {
		if code == "" || r.TrimmedCode() != code {
			continue
		}
		start, err := timecodec.Parse(r.StartTime)
		if err != nil {
			continue
		}
		end, err := timecodec.Parse(r.EndTime)
		if err != nil {
			continue
		}
		if start == blockStart && end == blockEnd {
			return r, nil
		}
	}
	return models.CourseRecord{}, apperrors.NewCustomError(apperrors.ErrLookupMiss, "no course matches block")
}

// AdvanceDay moves the day cursor by delta steps over the Monday..Friday
// cycle, wrapping at both ends.
func AdvanceDay(current models.Weekday, delta int) models.Weekday {
	idx := 0
	for i, d := range models.Weekdays {
		if d == current {
			idx = i
			break
		}
	}
	n := len(models.Weekdays)
	idx = ((idx+delta)%n + n) % n
	return models.Weekdays[idx]
}
