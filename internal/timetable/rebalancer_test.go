package timetable

import (
	"reflect"
	"testing"
	"time"
)

// scheduledStudyMinutes sums the study minutes still on the books per
// subject. Missed slots are excluded: they stay in the plan as history
// while their pending copies carry the work forward.
func scheduledStudyMinutes(p *Plan) map[string]int {
	out := map[string]int{}
	for _, d := range p.Days {
		for _, s := range d.Slots {
			if s.Kind == SlotStudy && s.Status != StatusMissed {
				out[s.SubjectID] += s.Minutes
			}
		}
	}
	return out
}

// A missed date outside the plan returns a plan deep-equal to the input.
func TestRebalance_UnknownDateIsNoop(t *testing.T) {
	plan := mustGenerate(t, tightProfile(), startOpts(2026, 9, 1))

	out := Rebalance(plan, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	if !reflect.DeepEqual(out, plan) {
		t.Error("rebalance with unknown date changed the plan")
	}
}

func TestRebalance_MarksMissedAndRelocates(t *testing.T) {
	plan := mustGenerate(t, tightProfile(), startOpts(2026, 9, 1))

	missed := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	out := Rebalance(plan, missed)

	// Original study slot flipped to missed.
	if got := out.Days[0].Slots[0].Status; got != StatusMissed {
		t.Errorf("missed day slot status = %v, want missed", got)
	}

	// The copy landed on day 1, pending, with the rest slot removed.
	day1 := out.Days[1]
	last := day1.Slots[len(day1.Slots)-1]
	if last.Kind != SlotStudy || last.Status != StatusPending {
		t.Fatalf("day 1 last slot = %v/%v, want pending study", last.Kind, last.Status)
	}
	if last.Minutes != 50 {
		t.Errorf("relocated minutes = %d, want 50", last.Minutes)
	}
	if idx := restIndex(day1.Slots); idx >= 0 {
		t.Errorf("day 1 still holds a rest slot at %d", idx)
	}

	// The relocated slot starts where day 1 previously ended.
	if last.Start != "16:50" {
		t.Errorf("relocated start = %s, want 16:50", last.Start)
	}
}

// Slots already done on the missed day stay done and are not queued.
func TestRebalance_SkipsDoneSlots(t *testing.T) {
	plan := mustGenerate(t, tightProfile(), startOpts(2026, 9, 1))
	if err := MarkSlot(plan, plan.Days[0].Slots[0].ID, StatusDone); err != nil {
		t.Fatalf("MarkSlot: %v", err)
	}

	out := Rebalance(plan, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	if got := out.Days[0].Slots[0].Status; got != StatusDone {
		t.Errorf("done slot status = %v, want done", got)
	}
	if n := len(out.Days[1].Slots); n != len(plan.Days[1].Slots) {
		t.Errorf("day 1 slot count changed: %d -> %d", len(plan.Days[1].Slots), n)
	}
}

// Conservation: per-subject study minutes are preserved when the queue
// fits inside the remaining days.
func TestRebalance_ConservesStudyMinutes(t *testing.T) {
	plan := mustGenerate(t, wideProfile(), startOpts(2026, 9, 7))

	before := scheduledStudyMinutes(plan)
	out := Rebalance(plan, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))
	after := scheduledStudyMinutes(out)

	if !reflect.DeepEqual(before, after) {
		t.Errorf("study minutes changed: %v -> %v", before, after)
	}
}

// Missing the final day leaves the queue nowhere to go: slots are
// dropped at the plan boundary but never duplicated or grown.
func TestRebalance_TailDropOnlyShrinks(t *testing.T) {
	plan := mustGenerate(t, wideProfile(), startOpts(2026, 9, 7))

	lastDate := plan.Days[len(plan.Days)-1].Date
	missed, err := time.Parse("2006-01-02", lastDate)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}

	before := scheduledStudyMinutes(plan)
	out := Rebalance(plan, missed)
	after := scheduledStudyMinutes(out)

	for id, mins := range after {
		if mins > before[id] {
			t.Errorf("subject %s grew from %d to %d minutes", id, before[id], mins)
		}
	}

	// The missed slots themselves are still marked.
	lastDay := out.Days[len(out.Days)-1]
	for _, s := range lastDay.Slots {
		if s.Kind == SlotStudy && s.Status != StatusMissed {
			t.Errorf("slot %s status = %v, want missed", s.ID, s.Status)
		}
	}
}

// Redistribution walks forward one slot per day and restores a shrunken
// rest slot in the day that drains the queue, when capacity remains.
func TestRebalance_RestoresResidualRest(t *testing.T) {
	p := wideProfile()
	p.RestBuffer = 120
	plan := mustGenerate(t, p, startOpts(2026, 9, 7))

	missedDay := plan.Days[0]
	queued := 0
	for _, s := range missedDay.Slots {
		if s.Kind == SlotStudy {
			queued++
		}
	}
	if queued == 0 {
		t.Fatal("expected study slots on the missed day")
	}

	// One queued slot lands on each following day; the draining day's
	// rest slot shrinks by the relocated slot's duration.
	drainIdx := restIndex(plan.Days[queued].Slots)
	if drainIdx < 0 {
		t.Fatalf("day %s has no rest slot before rebalance", plan.Days[queued].Date)
	}
	restBefore := plan.Days[queued].Slots[drainIdx].Minutes
	lastQueued := missedDay.Slots[len(missedDay.Slots)-1]
	for i := len(missedDay.Slots) - 1; i >= 0; i-- {
		if missedDay.Slots[i].Kind == SlotStudy {
			lastQueued = missedDay.Slots[i]
			break
		}
	}

	out := Rebalance(plan, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))

	final := out.Days[queued]
	if idx := restIndex(final.Slots); idx < 0 {
		t.Fatalf("day %s has no restored rest slot", final.Date)
	} else if got, want := final.Slots[idx].Minutes, restBefore-lastQueued.Minutes; got != want {
		t.Errorf("restored rest = %d min, want %d", got, want)
	}

	// Days before it gave up their whole buffer.
	for i := 1; i < queued; i++ {
		if idx := restIndex(out.Days[i].Slots); idx >= 0 {
			t.Errorf("day %s should have no rest slot while the queue is non-empty", out.Days[i].Date)
		}
	}
}
