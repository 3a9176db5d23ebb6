package profile

import (
	"testing"
	"time"
)

func TestStudiesOn(t *testing.T) {
	p := Default("x")
	p.StudyDays = []string{"monday", "wednesday"}

	if !p.StudiesOn(time.Monday) {
		t.Error("expected monday to be a study day")
	}
	if p.StudiesOn(time.Sunday) {
		t.Error("expected sunday to not be a study day")
	}
}

func TestHoursFor_Override(t *testing.T) {
	p := Default("x")
	p.DailyHours = 2
	p.HourOverrides = map[string]float64{"saturday": 4}

	if got := p.HoursFor(time.Saturday); got != 4 {
		t.Errorf("saturday hours = %f, want 4", got)
	}
	if got := p.HoursFor(time.Friday); got != 2 {
		t.Errorf("friday hours = %f, want 2", got)
	}
}

func TestSubjectHelpers(t *testing.T) {
	s := Subject{EstimatedHours: 2.5, ExamDate: "2026-10-01"}
	if got := s.TotalMinutes(); got != 150 {
		t.Errorf("TotalMinutes = %d, want 150", got)
	}

	exam, ok := s.ExamTime()
	if !ok {
		t.Fatal("expected exam time")
	}
	if exam.Format(DateLayout) != "2026-10-01" {
		t.Errorf("exam = %v, want 2026-10-01", exam)
	}

	if got := s.PriorityMultiplier(); got != 1 {
		t.Errorf("default multiplier = %f, want 1", got)
	}
	boost := 2.5
	s.Priority = &boost
	if got := s.PriorityMultiplier(); got != 2.5 {
		t.Errorf("multiplier = %f, want 2.5", got)
	}

	s.ExamDate = "not-a-date"
	if _, ok := s.ExamTime(); ok {
		t.Error("expected no exam time for malformed date")
	}
}

func TestParseWeekday(t *testing.T) {
	wd, err := ParseWeekday("Wednesday")
	if err != nil {
		t.Fatalf("ParseWeekday: %v", err)
	}
	if wd != time.Wednesday {
		t.Errorf("weekday = %v, want Wednesday", wd)
	}
	if _, err := ParseWeekday("someday"); err == nil {
		t.Error("expected error for unknown weekday")
	}
}
