package timetable

import "fmt"

// MarkSlot sets a study or revision slot's status and recomputes the
// day's completed minutes. It mutates the caller-held plan in place.
func MarkSlot(plan *Plan, slotID string, status SlotStatus) error {
	dayIdx, slotIdx, ok := plan.FindSlot(slotID)
	if !ok {
		return fmt.Errorf("slot %s not found", slotID)
	}
	day := &plan.Days[dayIdx]
	slot := &day.Slots[slotIdx]
	if slot.Kind != SlotStudy && slot.Kind != SlotRevision {
		return fmt.Errorf("slot %s is a %s slot and cannot be marked", slotID, slot.Kind)
	}
	slot.Status = status
	day.CompletedMinutes = completedMinutes(day.Slots)
	return nil
}

// MoveSlot moves a slot from one day to another: it is removed from the
// source day, reset to pending, appended to the target day, and both
// days' completed minutes are recomputed.
func MoveSlot(plan *Plan, slotID, targetDate string) error {
	dayIdx, slotIdx, ok := plan.FindSlot(slotID)
	if !ok {
		return fmt.Errorf("slot %s not found", slotID)
	}
	targetIdx := plan.DayIndex(targetDate)
	if targetIdx < 0 {
		return fmt.Errorf("day %s not in plan", targetDate)
	}
	if targetIdx == dayIdx {
		return nil
	}

	source := &plan.Days[dayIdx]
	slot := source.Slots[slotIdx]
	source.Slots = append(source.Slots[:slotIdx], source.Slots[slotIdx+1:]...)
	source.TotalMinutes -= slot.Minutes
	source.CompletedMinutes = completedMinutes(source.Slots)

	slot.Status = StatusPending
	target := &plan.Days[targetIdx]
	target.Slots = append(target.Slots, slot)
	target.TotalMinutes += slot.Minutes
	target.CompletedMinutes = completedMinutes(target.Slots)
	return nil
}
