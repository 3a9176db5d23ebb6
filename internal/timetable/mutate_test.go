package timetable

import (
	"testing"
)

func TestMarkSlot_TogglingIsIdempotent(t *testing.T) {
	plan := mustGenerate(t, wideProfile(), startOpts(2026, 9, 7))

	day := &plan.Days[0]
	before := day.CompletedMinutes
	slot := day.Slots[0]
	if slot.Kind != SlotStudy {
		t.Fatalf("first slot = %v, want study", slot.Kind)
	}

	if err := MarkSlot(plan, slot.ID, StatusDone); err != nil {
		t.Fatalf("MarkSlot done: %v", err)
	}
	if day.CompletedMinutes != before+slot.Minutes {
		t.Errorf("completed = %d, want %d", day.CompletedMinutes, before+slot.Minutes)
	}

	if err := MarkSlot(plan, slot.ID, StatusPending); err != nil {
		t.Fatalf("MarkSlot pending: %v", err)
	}
	if day.CompletedMinutes != before {
		t.Errorf("completed = %d after toggle back, want %d", day.CompletedMinutes, before)
	}
}

// Revision slots can be marked, but only done study slots count toward
// the day's completed minutes.
func TestMarkSlot_RevisionDoesNotCount(t *testing.T) {
	plan := mustGenerate(t, wideProfile(), startOpts(2026, 9, 7))

	day := &plan.Days[0]
	var revision *TimeSlot
	for i := range day.Slots {
		if day.Slots[i].Kind == SlotRevision {
			revision = &day.Slots[i]
			break
		}
	}
	if revision == nil {
		t.Fatal("expected a revision slot on day 0")
	}

	if err := MarkSlot(plan, revision.ID, StatusDone); err != nil {
		t.Fatalf("MarkSlot: %v", err)
	}
	if revision.Status != StatusDone {
		t.Errorf("revision status = %v, want done", revision.Status)
	}
	if day.CompletedMinutes != 0 {
		t.Errorf("completed = %d, want 0 (revision excluded)", day.CompletedMinutes)
	}
}

func TestMarkSlot_RejectsBreakAndRest(t *testing.T) {
	plan := mustGenerate(t, tightProfile(), startOpts(2026, 9, 1))

	rest := plan.Days[0].Slots[1]
	if rest.Kind != SlotRest {
		t.Fatalf("slot 1 = %v, want rest", rest.Kind)
	}
	if err := MarkSlot(plan, rest.ID, StatusDone); err == nil {
		t.Error("expected error marking a rest slot")
	}
	if err := MarkSlot(plan, "nope", StatusDone); err == nil {
		t.Error("expected error for unknown slot id")
	}
}

func TestMoveSlot_BetweenDays(t *testing.T) {
	plan := mustGenerate(t, wideProfile(), startOpts(2026, 9, 7))

	source := &plan.Days[0]
	target := &plan.Days[2]
	slot := source.Slots[0]
	if err := MarkSlot(plan, slot.ID, StatusDone); err != nil {
		t.Fatalf("MarkSlot: %v", err)
	}

	sourceCount := len(source.Slots)
	targetCount := len(target.Slots)
	if err := MoveSlot(plan, slot.ID, target.Date); err != nil {
		t.Fatalf("MoveSlot: %v", err)
	}

	if len(source.Slots) != sourceCount-1 {
		t.Errorf("source slots = %d, want %d", len(source.Slots), sourceCount-1)
	}
	if len(target.Slots) != targetCount+1 {
		t.Errorf("target slots = %d, want %d", len(target.Slots), targetCount+1)
	}

	moved := target.Slots[len(target.Slots)-1]
	if moved.ID != slot.ID {
		t.Fatalf("moved slot id = %s, want %s", moved.ID, slot.ID)
	}
	if moved.Status != StatusPending {
		t.Errorf("moved status = %v, want pending (reset on move)", moved.Status)
	}
	if source.CompletedMinutes != 0 {
		t.Errorf("source completed = %d, want 0", source.CompletedMinutes)
	}
	if target.CompletedMinutes != 0 {
		t.Errorf("target completed = %d, want 0", target.CompletedMinutes)
	}
}

func TestMoveSlot_UnknownTargets(t *testing.T) {
	plan := mustGenerate(t, tightProfile(), startOpts(2026, 9, 1))
	slot := plan.Days[0].Slots[0]

	if err := MoveSlot(plan, slot.ID, "2030-01-01"); err == nil {
		t.Error("expected error for day outside the plan")
	}
	if err := MoveSlot(plan, "nope", plan.Days[1].Date); err == nil {
		t.Error("expected error for unknown slot id")
	}
}
