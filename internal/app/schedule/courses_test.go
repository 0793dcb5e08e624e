package schedule

import (
	"testing"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
)

func sampleRecord() models.CourseRecord {
	return models.CourseRecord{
		ID:        "c1",
		Code:      "CS180",
		Days:      []models.Weekday{models.Monday, models.Wednesday},
		StartTime: "9:00 AM",
		EndTime:   "9:50 AM",
		Location:  "WALC 101",
	}
}

func TestUpdateIsCopyOnWrite(t *testing.T) {
	orig := CourseList{sampleRecord()}
	updated, err := orig.Update(0, FieldLocation, "LWSN B151")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated[0].Location != "LWSN B151" {
		t.Errorf("updated location = %q", updated[0].Location)
	}
	if orig[0].Location != "WALC 101" {
		t.Errorf("original mutated: %q", orig[0].Location)
	}
}

func TestUpdateUnknownField(t *testing.T) {
	l := CourseList{sampleRecord()}
	if _, err := l.Update(0, Field("professor"), "x"); err == nil {
		t.Error("expected error for unknown field")
	}
	if _, err := l.Update(3, FieldCode, "x"); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

func TestToggleDay(t *testing.T) {
	l := CourseList{sampleRecord()}

	added, err := l.ToggleDay(0, models.Friday)
	if err != nil {
		t.Fatalf("ToggleDay add: %v", err)
	}
	if !added[0].HasDay(models.Friday) {
		t.Error("Friday not added")
	}

	removed, err := added.ToggleDay(0, models.Monday)
	if err != nil {
		t.Fatalf("ToggleDay remove: %v", err)
	}
	if removed[0].HasDay(models.Monday) {
		t.Error("Monday not removed")
	}
	if !removed[0].HasDay(models.Wednesday) || !removed[0].HasDay(models.Friday) {
		t.Error("unrelated days lost on toggle")
	}
	if !l[0].HasDay(models.Monday) {
		t.Error("original list mutated by toggle")
	}
}

func TestAddRemovePreserveOrder(t *testing.T) {
	a := sampleRecord()
	b := sampleRecord()
	b.ID, b.Code = "c2", "MA261"
	c := sampleRecord()
	c.ID, c.Code = "c3", "PHYS172"

	l := CourseList{}.Add(a).Add(b).Add(c)
	if len(l) != 3 || l[1].Code != "MA261" {
		t.Fatalf("unexpected list after adds: %+v", l)
	}

	l, err := l.Remove(1)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(l) != 2 || l[0].Code != "CS180" || l[1].Code != "PHYS172" {
		t.Errorf("order broken after remove: %+v", l)
	}
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CourseRecord)
		want   bool
	}{
		{"complete", func(r *models.CourseRecord) {}, true},
		{"no days", func(r *models.CourseRecord) { r.Days = nil }, false},
		{"no start", func(r *models.CourseRecord) { r.StartTime = "" }, false},
		{"no end", func(r *models.CourseRecord) { r.EndTime = "" }, false},
		{"no location", func(r *models.CourseRecord) { r.Location = "  " }, false},
		{"start after end", func(r *models.CourseRecord) { r.StartTime = "10:00 AM" }, false},
		{"start equals end", func(r *models.CourseRecord) { r.EndTime = "9:00 AM" }, false},
		{"unparseable start", func(r *models.CourseRecord) { r.StartTime = "nine" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleRecord()
			tt.mutate(&r)
			if got := IsComplete(r); got != tt.want {
				t.Errorf("IsComplete = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllComplete(t *testing.T) {
	if AllComplete(nil) {
		t.Error("empty list must not be complete")
	}
	good := sampleRecord()
	bad := sampleRecord()
	bad.Location = ""
	if AllComplete([]models.CourseRecord{good, bad}) {
		t.Error("list with incomplete record must not pass")
	}
	if !AllComplete([]models.CourseRecord{good}) {
		t.Error("complete record rejected")
	}
}
