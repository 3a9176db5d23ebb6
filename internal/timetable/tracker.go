package timetable

import (
	"time"

	"github.com/abhisek/studyplan/internal/profile"
)

// topicState is the mutable per-topic allocation record.
type topicState struct {
	id        string
	title     string
	estimated int
	completed int
}

func (t *topicState) remaining() int {
	r := t.estimated - t.completed
	if r < 0 {
		return 0
	}
	return r
}

// subjectState is the mutable per-subject record for one generation run.
// It is mutated in place as the allocator advances and discarded once the
// plan is returned.
type subjectState struct {
	id           string
	name         string
	difficulty   int
	total        int // estimated minutes
	remaining    int
	examDate     *time.Time
	priority     float64
	topics       []*topicState
	lastRevision int // day index, -1 = never revised
}

// topicsWithWork counts topics that still have remaining minutes.
func (s *subjectState) topicsWithWork() int {
	n := 0
	for _, t := range s.topics {
		if t.remaining() > 0 {
			n++
		}
	}
	return n
}

// tracker is the state table for one generation run, indexed by subject
// id and walked by reference. It is exclusively owned by a single
// Generate call and never retained afterward.
type tracker struct {
	order  []string
	states map[string]*subjectState
}

func newTracker(subjects []profile.Subject) *tracker {
	t := &tracker{states: make(map[string]*subjectState, len(subjects))}
	for _, s := range subjects {
		st := &subjectState{
			id:           s.ID,
			name:         s.Name,
			difficulty:   s.Difficulty,
			total:        s.TotalMinutes(),
			remaining:    s.TotalMinutes(),
			priority:     s.PriorityMultiplier(),
			lastRevision: -1,
		}
		if exam, ok := s.ExamTime(); ok {
			st.examDate = &exam
		}
		for _, topic := range s.Topics {
			st.topics = append(st.topics, &topicState{
				id:        topic.ID,
				title:     topic.Title,
				estimated: topic.EstimatedMinutes,
				completed: topic.CompletedMinutes,
			})
		}
		t.states[s.ID] = st
		t.order = append(t.order, s.ID)
	}
	return t
}

// consume allocates up to want minutes from the subject, attributing them
// to the first topic with remaining time. When no topic has remaining
// time but the subject's aggregate does, minutes are still subtracted
// from the aggregate without topic attribution (defensive fallback, not
// expected in normal operation).
func (t *tracker) consume(subjectID string, want int) (got int, topic *topicState) {
	s := t.states[subjectID]
	if s == nil || want <= 0 || s.remaining <= 0 {
		return 0, nil
	}
	if want > s.remaining {
		want = s.remaining
	}

	for _, tp := range s.topics {
		if tp.remaining() > 0 {
			got = want
			if got > tp.remaining() {
				got = tp.remaining()
			}
			tp.completed += got
			s.remaining -= got
			return got, tp
		}
	}

	// No topic can absorb the minutes: decrement the aggregate only.
	s.remaining -= want
	return want, nil
}

// withRemaining returns the subjects that still have remaining minutes,
// in profile order.
func (t *tracker) withRemaining() []*subjectState {
	var out []*subjectState
	for _, id := range t.order {
		if s := t.states[id]; s.remaining > 0 {
			out = append(out, s)
		}
	}
	return out
}
