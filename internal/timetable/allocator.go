package timetable

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studyplan/internal/profile"
)

// revisionNote tags revision slots in the generated plan.
const revisionNote = "Spaced repetition"

// allocator lays out the slots for single days of a plan. It owns the
// window geometry parsed from the profile; the per-day cursor state lives
// on the stack of each allocateDay call.
type allocator struct {
	profile     *profile.Profile
	tracker     *tracker
	windowStart int // minutes from midnight
	windowLen   int
	revEvery    int
	allDays     bool // treat every weekday as a study day
}

func newAllocator(p *profile.Profile, t *tracker, revEvery int, allDays bool) (*allocator, error) {
	start, err := parseClock(p.WindowStart)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(p.WindowEnd)
	if err != nil {
		return nil, err
	}
	windowLen := end - start
	if windowLen < 0 {
		windowLen = 0
	}
	return &allocator{
		profile:     p,
		tracker:     t,
		windowStart: start,
		windowLen:   windowLen,
		revEvery:    revEvery,
		allDays:     allDays,
	}, nil
}

// dayMinutes returns the effective study window for a weekday: the
// availability window capped by that weekday's hours.
func (a *allocator) dayMinutes(wd time.Weekday) int {
	byHours := int(a.profile.HoursFor(wd) * 60)
	if byHours < a.windowLen {
		return byHours
	}
	return a.windowLen
}

// allocateDay walks one calendar day: either a whole-day rest block for
// non-study weekdays, or the study/revision/break loop until the usable
// window is exhausted. It mutates the tracker in place.
func (a *allocator) allocateDay(dayIndex int, date time.Time) DaySchedule {
	wd := date.Weekday()
	day := DaySchedule{
		ID:      uuid.NewString(),
		Date:    date.Format(profile.DateLayout),
		Weekday: profile.WeekdayName(wd),
	}
	dayMinutes := a.dayMinutes(wd)

	if !a.allDays && !a.profile.StudiesOn(wd) {
		day.Slots = append(day.Slots, restSlot(dayMinutes))
		day.TotalMinutes = dayMinutes
		day.RestBuffer = dayMinutes
		return day
	}

	usable := dayMinutes - a.profile.RestBuffer
	if usable < 0 {
		usable = 0
	}

	used := 0
	cursor := a.windowStart
	pointer := 0

	for a.profile.FocusMinutes > 0 && used+a.profile.FocusMinutes+a.profile.BreakMinutes <= usable {
		candidates := a.sortedByScore(date)
		if len(candidates) == 0 {
			break
		}
		subj := candidates[pointer%len(candidates)]
		pointer++

		want := a.profile.FocusMinutes
		if want > subj.remaining {
			want = subj.remaining
		}
		got, topic := a.tracker.consume(subj.id, want)
		if got <= 0 {
			continue
		}
		slot := TimeSlot{
			ID:          uuid.NewString(),
			Kind:        SlotStudy,
			SubjectID:   subj.id,
			SubjectName: subj.name,
			Start:       formatClock(cursor),
			End:         formatClock(cursor + got),
			Minutes:     got,
			Status:      StatusPending,
		}
		if topic != nil {
			slot.TopicID = topic.id
			slot.TopicTitle = topic.title
		}
		day.Slots = append(day.Slots, slot)
		used += got
		cursor += got

		// Spaced revision, due when the cadence elapsed (or never revised).
		// The full revision slot must fit in the remaining usable space.
		if a.revisionDue(subj, dayIndex) && a.profile.RevisionSlot > 0 && usable-used >= a.profile.RevisionSlot {
			day.Slots = append(day.Slots, TimeSlot{
				ID:          uuid.NewString(),
				Kind:        SlotRevision,
				SubjectID:   subj.id,
				SubjectName: subj.name,
				Start:       formatClock(cursor),
				End:         formatClock(cursor + a.profile.RevisionSlot),
				Minutes:     a.profile.RevisionSlot,
				Status:      StatusPending,
				Note:        revisionNote,
			})
			subj.lastRevision = dayIndex
			used += a.profile.RevisionSlot
			cursor += a.profile.RevisionSlot
		}

		// Breaks separate work blocks; one never trails the day.
		if a.profile.BreakMinutes > 0 && usable-used > a.profile.BreakMinutes {
			day.Slots = append(day.Slots, TimeSlot{
				ID:      uuid.NewString(),
				Kind:    SlotBreak,
				Start:   formatClock(cursor),
				End:     formatClock(cursor + a.profile.BreakMinutes),
				Minutes: a.profile.BreakMinutes,
				Status:  StatusPending,
			})
			used += a.profile.BreakMinutes
			cursor += a.profile.BreakMinutes
		}
	}

	day.TotalMinutes = used
	residual := dayMinutes - used
	day.RestBuffer = residual
	if residual > 0 {
		day.Slots = append(day.Slots, restSlot(residual))
		day.TotalMinutes += residual
	}
	return day
}

// sortedByScore returns the subjects with remaining work ordered by
// descending score for the given date. The sort is re-run for every slot
// picked; the cyclic pointer over this list produces the interleaving.
func (a *allocator) sortedByScore(date time.Time) []*subjectState {
	subjects := a.tracker.withRemaining()
	sort.SliceStable(subjects, func(i, j int) bool {
		return score(subjects[i], date, a.profile.Weights) > score(subjects[j], date, a.profile.Weights)
	})
	return subjects
}

func (a *allocator) revisionDue(s *subjectState, dayIndex int) bool {
	if s.lastRevision < 0 {
		return true
	}
	return dayIndex-s.lastRevision >= a.revEvery
}

// restSlot builds an unscheduled buffer block. Rest slots carry sentinel
// times because they are not fixed appointments.
func restSlot(minutes int) TimeSlot {
	return TimeSlot{
		ID:      uuid.NewString(),
		Kind:    SlotRest,
		Start:   RestSentinel,
		End:     RestSentinel,
		Minutes: minutes,
		Status:  StatusPending,
	}
}
