package timetable

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studyplan/internal/profile"
)

// Defaults applied when neither the options nor the profile specify a value.
const (
	DefaultSpanDays      = 14
	DefaultRevisionEvery = 3
)

// Options overrides per-generation settings. Zero values defer to the
// profile, then to the package defaults.
type Options struct {
	StartDate     *time.Time
	SpanDays      int
	RevisionEvery int
	AllDays       bool      // schedule every weekday regardless of preferences
	Now           time.Time // injected clock; zero means time.Now()
}

// Generate produces a plan for the profile. The run is synchronous and
// deterministic: the same profile, options and clock yield the same
// layout. The per-subject state table lives only for the duration of
// this call.
func Generate(p *profile.Profile, opts Options) (*Plan, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	start := resolveStart(p, opts, now)
	span := resolveSpan(p, opts)
	revEvery := resolveRevisionEvery(p, opts)

	track := newTracker(p.Subjects)
	alloc, err := newAllocator(p, track, revEvery, opts.AllDays)
	if err != nil {
		return nil, fmt.Errorf("invalid availability window: %w", err)
	}

	plan := &Plan{
		ID:            uuid.NewString(),
		ProfileID:     p.ID,
		GeneratedAt:   now,
		SpanDays:      span,
		RevisionEvery: revEvery,
		Notes:         p.Notes,
	}
	for offset := 0; offset < span; offset++ {
		date := start.AddDate(0, 0, offset)
		plan.Days = append(plan.Days, alloc.allocateDay(offset, date))
	}
	plan.Summaries = summarize(p, track, plan.Days)
	return plan, nil
}

func resolveStart(p *profile.Profile, opts Options, now time.Time) time.Time {
	if opts.StartDate != nil {
		return truncateToDay(*opts.StartDate)
	}
	if t, ok := p.StartTime(); ok {
		return t
	}
	return truncateToDay(now)
}

func resolveSpan(p *profile.Profile, opts Options) int {
	if opts.SpanDays > 0 {
		return opts.SpanDays
	}
	if p.SpanDays > 0 {
		return p.SpanDays
	}
	return DefaultSpanDays
}

func resolveRevisionEvery(p *profile.Profile, opts Options) int {
	if opts.RevisionEvery > 0 {
		return opts.RevisionEvery
	}
	if p.RevisionEvery > 0 {
		return p.RevisionEvery
	}
	return DefaultRevisionEvery
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// summarize derives the per-subject rollups from the consumed tracker
// state and the generated days.
func summarize(p *profile.Profile, track *tracker, days []DaySchedule) []SubjectSummary {
	summaries := make([]SubjectSummary, 0, len(p.Subjects))
	for _, subj := range p.Subjects {
		st := track.states[subj.ID]
		allocated := st.total - st.remaining
		completion := 1.0
		if st.total > 0 {
			completion = float64(allocated) / float64(st.total)
			if completion > 1 {
				completion = 1
			}
		}
		summaries = append(summaries, SubjectSummary{
			SubjectID:        subj.ID,
			SubjectName:      subj.Name,
			AllocatedMinutes: allocated,
			RemainingMinutes: st.remaining,
			Completion:       completion,
			NextSession:      nextSession(subj.ID, days),
		})
	}
	return summaries
}

// nextSession describes the first pending study or revision slot for the
// subject across the generated days, in date order.
func nextSession(subjectID string, days []DaySchedule) string {
	for _, day := range days {
		for _, slot := range day.Slots {
			if slot.SubjectID != subjectID || slot.Status != StatusPending {
				continue
			}
			if slot.Kind != SlotStudy && slot.Kind != SlotRevision {
				continue
			}
			label := slot.SubjectName
			if slot.TopicTitle != "" {
				label += " — " + slot.TopicTitle
			}
			if slot.Kind == SlotRevision {
				label += " (revision)"
			}
			return fmt.Sprintf("%s %s · %s", day.Date, slot.Start, label)
		}
	}
	return "No upcoming sessions"
}
