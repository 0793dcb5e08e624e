package schedule

import (
	"errors"
	"math"
	"testing"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
)

func TestFramePlacement(t *testing.T) {
	const h = 60.0
	tl := Timeline{HourHeight: h}

	frame, err := tl.Frame(models.ScheduleBlock{
		StartTime: "9:00 AM",
		EndTime:   "9:50 AM",
		Type:      models.BlockClass,
	})
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if frame.Top != 2*h {
		t.Errorf("top = %v, want %v", frame.Top, 2*h)
	}
	wantHeight := (50.0 / 60.0) * h
	if math.Abs(frame.Height-wantHeight) > 1e-9 {
		t.Errorf("height = %v, want %v", frame.Height, wantHeight)
	}
}

func TestFrameParseFailure(t *testing.T) {
	tl := Timeline{HourHeight: 60}
	_, err := tl.Frame(models.ScheduleBlock{StartTime: "morning", EndTime: "9:50 AM"})
	if !errors.Is(err, apperrors.ErrParseFailure) {
		t.Errorf("err = %v, want ErrParseFailure", err)
	}
}

func TestClipping(t *testing.T) {
	const h = 60.0
	tl := Timeline{HourHeight: h}

	early, err := tl.Frame(models.ScheduleBlock{StartTime: "6:00 AM", EndTime: "6:45 AM"})
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if tl.Visible(early) {
		t.Error("block fully before 7 AM should be clipped out")
	}

	straddling, err := tl.Frame(models.ScheduleBlock{StartTime: "6:30 AM", EndTime: "7:30 AM"})
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if !tl.Visible(straddling) {
		t.Error("block straddling 7 AM should be partly visible")
	}
	clipped := tl.Clip(straddling)
	if clipped.Top != 0 {
		t.Errorf("clipped top = %v, want 0", clipped.Top)
	}
	if math.Abs(clipped.Height-0.5*h) > 1e-9 {
		t.Errorf("clipped height = %v, want %v", clipped.Height, 0.5*h)
	}
}

func TestFindSourceRecord(t *testing.T) {
	records := []models.CourseRecord{
		{Code: "CS180", StartTime: "9:00 AM", EndTime: "9:50 AM", Location: "WALC 101"},
		{Code: "MA261", StartTime: "11:30 AM", EndTime: "12:20 PM", Location: "MATH 175"},
	}

	block := models.ScheduleBlock{
		Info:      "9:00 AM–9:50 AM CS180 at WALC 101",
		StartTime: "9:00 AM",
		EndTime:   "9:50 AM",
		Type:      models.BlockClass,
	}
	got, err := FindSourceRecord(block, records)
	if err != nil {
		t.Fatalf("FindSourceRecord: %v", err)
	}
	if got.Code != "CS180" {
		t.Errorf("matched %q, want CS180", got.Code)
	}
}

func TestFindSourceRecordByID(t *testing.T) {
	records := []models.CourseRecord{
		{ID: "abc", Code: "CS180", StartTime: "9:00 AM", EndTime: "9:50 AM"},
	}
	// The identifier wins even when the display text disagrees.
	block := models.ScheduleBlock{
		CourseID:  "abc",
		Info:      "renamed block",
		StartTime: "1:00 PM",
		EndTime:   "2:00 PM",
		Type:      models.BlockClass,
	}
	got, err := FindSourceRecord(block, records)
	if err != nil {
		t.Fatalf("FindSourceRecord: %v", err)
	}
	if got.ID != "abc" {
		t.Errorf("matched %q, want abc", got.ID)
	}
}

func TestFindSourceRecordMiss(t *testing.T) {
	records := []models.CourseRecord{
		{Code: "CS180", StartTime: "9:00 AM", EndTime: "9:50 AM"},
	}
	// Same code, deliberately shifted start time.
	block := models.ScheduleBlock{
		Info:      "10:00 AM–10:50 AM CS180 at WALC 101",
		StartTime: "10:00 AM",
		EndTime:   "10:50 AM",
		Type:      models.BlockClass,
	}
	_, err := FindSourceRecord(block, records)
	if !errors.Is(err, apperrors.ErrLookupMiss) {
		t.Errorf("err = %v, want ErrLookupMiss", err)
	}
}

func TestAdvanceDay(t *testing.T) {
	tests := []struct {
		from  models.Weekday
		delta int
		want  models.Weekday
	}{
		{models.Friday, 1, models.Monday},
		{models.Monday, -1, models.Friday},
		{models.Monday, 1, models.Tuesday},
		{models.Wednesday, -1, models.Tuesday},
		{models.Tuesday, 5, models.Tuesday},
		{models.Thursday, -7, models.Tuesday},
	}
	for _, tt := range tests {
		if got := AdvanceDay(tt.from, tt.delta); got != tt.want {
			t.Errorf("AdvanceDay(%s, %d) = %s, want %s", tt.from, tt.delta, got, tt.want)
		}
	}
}
