package timetable

import (
	"time"

	"github.com/abhisek/studyplan/internal/profile"
)

// defaultExamHorizonDays stands in for "no exam scheduled" when scoring.
const defaultExamHorizonDays = 60

// score computes the dimensionless urgency of a subject on a given day.
// Higher is more urgent. Scores are only compared within a single day;
// no normalization is performed and the weights are taken as-is.
func score(s *subjectState, date time.Time, w profile.Weights) float64 {
	days := float64(defaultExamHorizonDays)
	if s.examDate != nil {
		days = s.examDate.Sub(date).Hours() / 24
		if days < 1 {
			days = 1
		}
	}
	examFactor := 1 / days

	difficultyFactor := float64(s.difficulty) / 5

	remainingFactor := 0.0
	if s.total > 0 {
		remainingFactor = float64(s.remaining) / float64(s.total)
	}

	topicsFactor := 0.0
	if len(s.topics) > 0 {
		topicsFactor = float64(s.topicsWithWork()) / float64(len(s.topics))
	}

	raw := w.Exam*examFactor +
		w.Difficulty*difficultyFactor +
		w.Remaining*remainingFactor +
		w.Topics*topicsFactor
	return raw * s.priority
}
