package timetable

import (
	"time"

	"github.com/abhisek/studyplan/internal/profile"
)

// Rebalance relocates the incomplete study slots of a missed day into
// the rest capacity of subsequent days, one slot per day. The input plan
// is never mutated; the result is a deep copy. A missed date absent from
// the plan returns the plan unchanged. Slots that cannot be placed
// before the plan's day range runs out are dropped — a fixed-length plan
// cannot extend itself.
func Rebalance(plan *Plan, missed time.Time) *Plan {
	out := plan.Clone()

	idx := out.DayIndex(missed.Format(profile.DateLayout))
	if idx < 0 {
		return out
	}

	day := &out.Days[idx]
	var queue []TimeSlot
	for i := range day.Slots {
		slot := &day.Slots[i]
		if slot.Kind != SlotStudy || slot.Status == StatusDone {
			continue
		}
		slot.Status = StatusMissed
		carried := *slot
		carried.Status = StatusPending
		queue = append(queue, carried)
	}
	day.CompletedMinutes = completedMinutes(day.Slots)

	for i := idx + 1; i < len(out.Days) && len(queue) > 0; i++ {
		target := &out.Days[i]

		// Free the day's rest buffer to make room.
		restMinutes := 0
		if j := restIndex(target.Slots); j >= 0 {
			restMinutes = target.Slots[j].Minutes
			target.TotalMinutes -= restMinutes
			target.Slots = append(target.Slots[:j], target.Slots[j+1:]...)
		}

		moved := queue[0]
		queue = queue[1:]
		moved.Start = dayEnd(target.Slots, moved.Start)
		target.Slots = append(target.Slots, moved)
		target.TotalMinutes += moved.Minutes

		if len(queue) == 0 {
			if residual := restMinutes - moved.Minutes; residual > 0 {
				target.Slots = append(target.Slots, restSlot(residual))
				target.TotalMinutes += residual
				target.RestBuffer = residual
			} else {
				target.RestBuffer = 0
			}
		} else {
			target.RestBuffer = 0
		}
	}

	return out
}

// restIndex returns the index of the first rest slot, or -1.
func restIndex(slots []TimeSlot) int {
	for i := range slots {
		if slots[i].Kind == SlotRest {
			return i
		}
	}
	return -1
}

// dayEnd derives a start time for a slot appended to the day: the clock
// end of whatever currently ends the day, or fallback when the day holds
// no timed slots.
func dayEnd(slots []TimeSlot, fallback string) string {
	for i := len(slots) - 1; i >= 0; i-- {
		if slots[i].End != RestSentinel && slots[i].End != "" {
			return slots[i].End
		}
	}
	return fallback
}
