package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/timecodec"
)

// infoSeparator joins the start and end time inside a block's info string.
// An en-dash, matching what university schedule text uses.
const infoSeparator = "–"

// classPalette colors class blocks per course, cycling when there are more
// courses than colors.
var classPalette = []string{
	"#CEB888", // Purdue gold
	"#8FBC8F",
	"#87CEEB",
	"#F4A460",
	"#DDA0DD",
	"#B0C4DE",
}

// travelColor is the fixed override for leave-by reminder blocks.
const travelColor = "#FFD54F"

// BlockInfo renders the display string for one class occurrence:
// "9:00 AM–9:50 AM CS180 at WALC 101". The code token sits directly before
// " at " so reverse lookup can recover it.
func BlockInfo(r models.CourseRecord) string {
	return fmt.Sprintf("%s%s%s %s at %s", r.StartTime, infoSeparator, r.EndTime, r.TrimmedCode(), strings.TrimSpace(r.Location))
}

// BuildWeek projects complete course records onto weekday buckets. Within a
// day blocks are ordered by parsed start time; ties keep input order. Every
// weekday key is present in the result even when empty.
func BuildWeek(records []models.CourseRecord) models.WeekSchedule {
	week := models.NewWeekSchedule()
	for i, r := range records {
		color := classPalette[i%len(classPalette)]
		for _, day := range r.Days {
			if !models.ValidWeekday(day) {
				continue
			}
			week[day] = append(week[day], models.ScheduleBlock{
				Day:       day,
				Info:      BlockInfo(r),
				StartTime: r.StartTime,
				EndTime:   r.EndTime,
				Type:      models.BlockClass,
				Color:     color,
				CourseID:  r.ID,
			})
		}
	}
	for _, day := range models.Weekdays {
		sortBlocks(week[day])
	}
	return week
}

// sortBlocks orders a day's blocks by parsed start time, stably. Blocks
// whose start time fails to parse sort after everything else rather than
// contaminating the ordering with a bogus value.
func sortBlocks(blocks []models.ScheduleBlock) {
	sort.SliceStable(blocks, func(i, j int) bool {
		si, erri := timecodec.Parse(blocks[i].StartTime)
		sj, errj := timecodec.Parse(blocks[j].StartTime)
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return si < sj
	})
}

// TravelOverlay is one precomputed leave-by reminder to layer into a week.
type TravelOverlay struct {
	Day        models.Weekday
	CourseCode string
	LeaveBy    string
	ClassStart string
}

// OverlayTravel inserts a travel block before each referenced class,
// returning a new week. Each day is re-sorted so reminders sit directly
// above the class they belong to.
func OverlayTravel(week models.WeekSchedule, overlays []TravelOverlay) models.WeekSchedule {
	out := models.NewWeekSchedule()
	for _, day := range models.Weekdays {
		out[day] = append(out[day], week[day]...)
	}
	for _, o := range overlays {
		if !models.ValidWeekday(o.Day) {
			continue
		}
		out[o.Day] = append(out[o.Day], models.ScheduleBlock{
			Day:       o.Day,
			Info:      fmt.Sprintf("Leave for %s", o.CourseCode),
			StartTime: o.LeaveBy,
			EndTime:   o.ClassStart,
			Type:      models.BlockTravel,
			Color:     travelColor,
		})
	}
	for _, day := range models.Weekdays {
		sortBlocks(out[day])
	}
	return out
}

// Conflict is a pair of class blocks on the same day whose time ranges
// overlap. The builder leaves overlapping blocks independently positioned;
// conflicts are reported so callers can warn.
type Conflict struct {
	Day    models.Weekday
	First  string
	Second string
}

// DetectConflicts reports every overlapping pair of class blocks in the
// week. Travel blocks are ignored; they intentionally abut class starts.
func DetectConflicts(week models.WeekSchedule) []Conflict {
	var conflicts []Conflict
	for _, day := range models.Weekdays {
		classes := week.Classes(day)
		for i := 0; i < len(classes); i++ {
			si, err := timecodec.Parse(classes[i].StartTime)
			if err != nil {
				continue
			}
			ei, err := timecodec.Parse(classes[i].EndTime)
			if err != nil {
				continue
			}
			for j := i + 1; j < len(classes); j++ {
				sj, err := timecodec.Parse(classes[j].StartTime)
				if err != nil {
					continue
				}
				ej, err := timecodec.Parse(classes[j].EndTime)
				if err != nil {
					continue
				}
				if si < ej && sj < ei {
					conflicts = append(conflicts, Conflict{
						Day:    day,
						First:  classes[i].Info,
						Second: classes[j].Info,
					})
				}
			}
		}
	}
	return conflicts
}
