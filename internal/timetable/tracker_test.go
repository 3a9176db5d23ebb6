package timetable

import (
	"testing"

	"github.com/abhisek/studyplan/internal/profile"
)

func twoTopicSubject() profile.Subject {
	return profile.Subject{
		ID:             "math",
		Name:           "Mathematics",
		EstimatedHours: 2,
		Difficulty:     3,
		Topics: []profile.Topic{
			{ID: "t1", Title: "Algebra", EstimatedMinutes: 60},
			{ID: "t2", Title: "Geometry", EstimatedMinutes: 60},
		},
	}
}

func TestConsume_FirstFitTopic(t *testing.T) {
	tr := newTracker([]profile.Subject{twoTopicSubject()})

	got, topic := tr.consume("math", 50)
	if got != 50 {
		t.Errorf("got = %d, want 50", got)
	}
	if topic == nil || topic.id != "t1" {
		t.Fatalf("topic = %+v, want t1", topic)
	}
	if topic.completed != 50 {
		t.Errorf("t1 completed = %d, want 50", topic.completed)
	}
	if rem := tr.states["math"].remaining; rem != 70 {
		t.Errorf("remaining = %d, want 70", rem)
	}
}

func TestConsume_ClampsToTopicRemaining(t *testing.T) {
	tr := newTracker([]profile.Subject{twoTopicSubject()})

	tr.consume("math", 50) // t1 down to 10
	got, topic := tr.consume("math", 50)
	if got != 10 {
		t.Errorf("got = %d, want 10 (t1 residue)", got)
	}
	if topic == nil || topic.id != "t1" {
		t.Fatalf("topic = %+v, want t1", topic)
	}

	got, topic = tr.consume("math", 50)
	if got != 50 {
		t.Errorf("got = %d, want 50", got)
	}
	if topic == nil || topic.id != "t2" {
		t.Fatalf("topic = %+v, want t2", topic)
	}
}

func TestConsume_ClampsToSubjectRemaining(t *testing.T) {
	tr := newTracker([]profile.Subject{twoTopicSubject()})

	total := 0
	for i := 0; i < 10; i++ {
		got, _ := tr.consume("math", 50)
		total += got
		if got == 0 {
			break
		}
	}
	if total != 120 {
		t.Errorf("total consumed = %d, want 120", total)
	}
	if rem := tr.states["math"].remaining; rem != 0 {
		t.Errorf("remaining = %d, want 0", rem)
	}
}

// A subject whose topics are all complete but whose aggregate still has
// minutes hits the defensive fallback: the aggregate is decremented
// without topic attribution.
func TestConsume_AggregateFallbackWithoutTopics(t *testing.T) {
	subj := profile.Subject{
		ID:             "chem",
		Name:           "Chemistry",
		EstimatedHours: 2,
		Difficulty:     2,
		Topics: []profile.Topic{
			{ID: "t1", Title: "Bonding", EstimatedMinutes: 30, CompletedMinutes: 30},
		},
	}
	tr := newTracker([]profile.Subject{subj})

	got, topic := tr.consume("chem", 40)
	if got != 40 {
		t.Errorf("got = %d, want 40", got)
	}
	if topic != nil {
		t.Errorf("topic = %+v, want nil (aggregate-only fallback)", topic)
	}
	if rem := tr.states["chem"].remaining; rem != 80 {
		t.Errorf("remaining = %d, want 80", rem)
	}
}

// remaining must never increase across consume calls.
func TestConsume_RemainingMonotonic(t *testing.T) {
	tr := newTracker([]profile.Subject{twoTopicSubject()})

	prev := tr.states["math"].remaining
	for i := 0; i < 8; i++ {
		tr.consume("math", 25)
		cur := tr.states["math"].remaining
		if cur > prev {
			t.Fatalf("remaining increased from %d to %d", prev, cur)
		}
		prev = cur
	}
}

func TestWithRemaining_DropsExhaustedSubjects(t *testing.T) {
	tr := newTracker([]profile.Subject{
		twoTopicSubject(),
		{ID: "phy", Name: "Physics", EstimatedHours: 1, Difficulty: 5,
			Topics: []profile.Topic{{ID: "p1", Title: "Optics", EstimatedMinutes: 60}}},
	})

	if n := len(tr.withRemaining()); n != 2 {
		t.Fatalf("withRemaining = %d subjects, want 2", n)
	}
	tr.consume("phy", 60)
	left := tr.withRemaining()
	if len(left) != 1 || left[0].id != "math" {
		t.Errorf("withRemaining = %v, want just math", left)
	}
}
