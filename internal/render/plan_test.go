package render

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/studyplan/internal/profile"
	"github.com/abhisek/studyplan/internal/timetable"
)

func testPlan(t *testing.T) *timetable.Plan {
	t.Helper()
	p := profile.Sample()
	p.SpanDays = 2
	plan, err := timetable.Generate(p, timetable.Options{
		Now: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return plan
}

func TestPlan_ContainsDaysAndSubjects(t *testing.T) {
	plan := testPlan(t)
	out := Plan(plan)

	for _, day := range plan.Days {
		if !strings.Contains(out, day.Date) {
			t.Errorf("output missing day %s", day.Date)
		}
	}
	if !strings.Contains(out, "Mathematics") {
		t.Error("output missing subject name")
	}
	if !strings.Contains(out, "next:") {
		t.Error("output missing next-session line")
	}
}

func TestDay_RestUsesSentinel(t *testing.T) {
	plan := testPlan(t)

	var restDay *timetable.DaySchedule
	for i := range plan.Days {
		for _, s := range plan.Days[i].Slots {
			if s.Kind == timetable.SlotRest {
				restDay = &plan.Days[i]
				break
			}
		}
		if restDay != nil {
			break
		}
	}
	if restDay == nil {
		t.Skip("no rest slot in this plan")
	}

	out := Day(restDay)
	if !strings.Contains(out, timetable.RestSentinel) {
		t.Error("rest slot rendered without sentinel")
	}
}

func TestProgressBar_Bounds(t *testing.T) {
	if !strings.Contains(progressBar(0), "··········") {
		t.Error("empty bar should be all dots")
	}
	if !strings.Contains(progressBar(1), "██████████") {
		t.Error("full bar should be all blocks")
	}
	if !strings.Contains(progressBar(2.5), "██████████") {
		t.Error("overflow should clamp to full")
	}
}
