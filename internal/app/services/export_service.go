package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/timecodec"
)

// ExportService renders a user's generated week as a downloadable file.
type ExportService interface {
	// ExportICS returns the week as an iCalendar document with one weekly
	// recurring event per class block.
	ExportICS(ctx context.Context, userID string) ([]byte, string, error)
	// ExportXLSX returns the week as a spreadsheet, one row per block.
	ExportXLSX(ctx context.Context, userID string) (*bytes.Buffer, string, error)
}

type exportServiceImpl struct {
	schedules ScheduleService
	now       func() time.Time
}

// NewExportService creates a new export service instance
func NewExportService(schedules ScheduleService) ExportService {
	return &exportServiceImpl{schedules: schedules, now: time.Now}
}

func (s *exportServiceImpl) loadWeek(ctx context.Context, userID string) (models.WeekSchedule, error) {
	result, err := s.schedules.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, apperrors.NewResourceNotFoundError("no schedule has been generated yet")
	}
	return result.Week, nil
}

// nextOccurrence finds the first date on or after from that falls on day.
func nextOccurrence(from time.Time, day models.Weekday) time.Time {
	d := from
	for d.Weekday() != day.TimeWeekday() {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// atClock anchors a fractional hour onto a date.
func atClock(date time.Time, frac float64) time.Time {
	hour := int(frac)
	minute := int((frac-float64(hour))*60 + 0.5)
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

func (s *exportServiceImpl) ExportICS(ctx context.Context, userID string) ([]byte, string, error) {
	week, err := s.loadWeek(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//PurdueGo//Schedule//EN")

	now := s.now()
	for _, day := range models.Weekdays {
		for _, block := range week[day] {
			if block.Type != models.BlockClass {
				continue
			}
			start, err := timecodec.Parse(block.StartTime)
			if err != nil {
				continue
			}
			end, err := timecodec.Parse(block.EndTime)
			if err != nil {
				continue
			}

			date := nextOccurrence(now, day)
			ev := cal.AddEvent(uuid.New().String() + "@purduego")
			ev.SetCreatedTime(now)
			ev.SetDtStampTime(now)
			ev.SetStartAt(atClock(date, start))
			ev.SetEndAt(atClock(date, end))
			ev.SetSummary(block.Info)
			ev.AddRrule("FREQ=WEEKLY")
		}
	}

	return []byte(cal.Serialize()), "schedule.ics", nil
}

func (s *exportServiceImpl) ExportXLSX(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	week, err := s.loadWeek(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	const sheet = "Schedule"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Day", "Start", "End", "Type", "Info"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#CEB888"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	f.SetCellStyle(sheet, "A1", fmt.Sprintf("%s1", mustColumnName(len(headers))), headerStyle)

	row := 2
	for _, day := range models.Weekdays {
		for _, block := range week[day] {
			values := []interface{}{string(day), block.StartTime, block.EndTime, string(block.Type), block.Info}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
	}
	f.SetColWidth(sheet, "A", "D", 14)
	f.SetColWidth(sheet, "E", "E", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return buf, "schedule.xlsx", nil
}

func mustColumnName(n int) string {
	name, _ := excelize.ColumnNumberToName(n)
	return name
}
