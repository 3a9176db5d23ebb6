// Package timetable implements the study-plan generation engine: a
// deterministic, single-pass allocator that turns a learner profile into
// a multi-day schedule of study, revision, break and rest time blocks.
package timetable

import (
	"time"
)

// SlotKind classifies a time block.
type SlotKind string

const (
	SlotStudy    SlotKind = "study"
	SlotRevision SlotKind = "revision"
	SlotBreak    SlotKind = "break"
	SlotRest     SlotKind = "rest"
)

// SlotStatus tracks whether a block was carried out.
type SlotStatus string

const (
	StatusPending SlotStatus = "pending"
	StatusDone    SlotStatus = "done"
	StatusMissed  SlotStatus = "missed"
)

// RestSentinel marks the start/end of rest slots, which represent
// unscheduled buffer rather than a fixed appointment.
const RestSentinel = "--"

// TimeSlot is one block inside a day schedule.
type TimeSlot struct {
	ID          string     `json:"id"`
	Kind        SlotKind   `json:"kind"`
	SubjectID   string     `json:"subject_id,omitempty"`
	SubjectName string     `json:"subject_name,omitempty"`
	TopicID     string     `json:"topic_id,omitempty"`
	TopicTitle  string     `json:"topic_title,omitempty"`
	Start       string     `json:"start"` // clock time, or RestSentinel
	End         string     `json:"end"`
	Minutes     int        `json:"minutes"`
	Status      SlotStatus `json:"status"`
	Note        string     `json:"note,omitempty"`
}

// DaySchedule is the ordered slot layout for one calendar day.
type DaySchedule struct {
	ID               string     `json:"id"`
	Date             string     `json:"date"`    // profile.DateLayout
	Weekday          string     `json:"weekday"` // lowercase name
	Slots            []TimeSlot `json:"slots"`
	TotalMinutes     int        `json:"total_minutes"`
	CompletedMinutes int        `json:"completed_minutes"`
	RestBuffer       int        `json:"rest_buffer_minutes"`
}

// SubjectSummary is the per-subject rollup derived after generation.
type SubjectSummary struct {
	SubjectID        string  `json:"subject_id"`
	SubjectName      string  `json:"subject_name"`
	AllocatedMinutes int     `json:"allocated_minutes"`
	RemainingMinutes int     `json:"remaining_minutes"`
	Completion       float64 `json:"completion"` // 0..1
	NextSession      string  `json:"next_session"`
}

// Plan is the immutable result of one generation run. Mutation helpers
// operate on a caller-held copy; the engine never retains a reference.
type Plan struct {
	ID            string           `json:"id"`
	ProfileID     string           `json:"profile_id"`
	GeneratedAt   time.Time        `json:"generated_at"`
	SpanDays      int              `json:"span_days"`
	RevisionEvery int              `json:"revision_every_days"`
	Days          []DaySchedule    `json:"days"`
	Summaries     []SubjectSummary `json:"summaries"`
	Notes         string           `json:"notes,omitempty"`
}

// Clone returns a deep copy of the plan. Mutating operations clone first
// so the generated value is never aliased into two call sites.
func (p *Plan) Clone() *Plan {
	out := *p
	out.Days = make([]DaySchedule, len(p.Days))
	for i, d := range p.Days {
		nd := d
		nd.Slots = make([]TimeSlot, len(d.Slots))
		copy(nd.Slots, d.Slots)
		out.Days[i] = nd
	}
	out.Summaries = make([]SubjectSummary, len(p.Summaries))
	copy(out.Summaries, p.Summaries)
	return &out
}

// DayIndex returns the index of the day with the given date, or -1.
func (p *Plan) DayIndex(date string) int {
	for i := range p.Days {
		if p.Days[i].Date == date {
			return i
		}
	}
	return -1
}

// FindSlot locates a slot by id, returning its day and slot indices.
func (p *Plan) FindSlot(slotID string) (dayIdx, slotIdx int, ok bool) {
	for i := range p.Days {
		for j := range p.Days[i].Slots {
			if p.Days[i].Slots[j].ID == slotID {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// completedMinutes sums the durations of done study slots.
func completedMinutes(slots []TimeSlot) int {
	total := 0
	for _, s := range slots {
		if s.Kind == SlotStudy && s.Status == StatusDone {
			total += s.Minutes
		}
	}
	return total
}
