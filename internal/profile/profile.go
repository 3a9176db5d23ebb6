// Package profile defines the learner profile consumed by the timetable
// engine: subjects, topics, availability and scheduling preferences.
package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used across profile and plan data.
const DateLayout = "2006-01-02"

// ClockLayout is the wall-clock format for availability windows and slots.
const ClockLayout = "15:04"

// Weights tunes the priority score. The engine treats these as free-form
// knobs: they are not required to sum to 1 and are never normalized.
type Weights struct {
	Exam       float64 `json:"exam"`
	Difficulty float64 `json:"difficulty"`
	Remaining  float64 `json:"remaining"`
	Topics     float64 `json:"topics"`
}

// Topic is a unit of study work within a subject. CompletedMinutes is
// mutable during generation and normally starts at zero.
type Topic struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	CompletedMinutes int    `json:"completed_minutes"`
}

// Subject is one area of study with an ordered topic list.
type Subject struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	EstimatedHours float64  `json:"estimated_hours"`
	Difficulty     int      `json:"difficulty"` // 1..5
	Topics         []Topic  `json:"topics"`
	ExamDate       string   `json:"exam_date,omitempty"` // DateLayout, empty = none
	Priority       *float64 `json:"priority,omitempty"`  // explicit multiplier
}

// TotalMinutes returns the subject's estimated workload in minutes.
func (s Subject) TotalMinutes() int {
	return int(s.EstimatedHours * 60)
}

// ExamTime parses the exam date. ok is false when no exam date is set
// or the value does not parse.
func (s Subject) ExamTime() (t time.Time, ok bool) {
	if s.ExamDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s.ExamDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PriorityMultiplier returns the explicit multiplier, defaulting to 1.
func (s Subject) PriorityMultiplier() float64 {
	if s.Priority == nil {
		return 1
	}
	return *s.Priority
}

// Profile holds everything the generator needs to lay out a plan.
type Profile struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Subjects      []Subject          `json:"subjects"`
	StudyDays     []string           `json:"study_days"`                // weekday names, lowercase
	DailyHours    float64            `json:"daily_hours"`
	HourOverrides map[string]float64 `json:"hour_overrides,omitempty"`  // weekday name -> hours
	WindowStart   string             `json:"window_start"`              // ClockLayout
	WindowEnd     string             `json:"window_end"`                // ClockLayout
	FocusMinutes  int                `json:"focus_minutes"`
	BreakMinutes  int                `json:"break_minutes"`
	RevisionEvery int                `json:"revision_every_days"`
	RevisionSlot  int                `json:"revision_slot_minutes"`
	SpanDays      int                `json:"span_days"`
	RestBuffer    int                `json:"rest_buffer_minutes"`
	Weights       Weights            `json:"weights"`
	StartDate     string             `json:"start_date,omitempty"` // DateLayout
	Notes         string             `json:"notes,omitempty"`
}

// Default returns a profile with the standard scheduling preferences:
// every weekday preferred, a 16:00-22:00 evening window, 50/10 focus
// cadence and spaced revision every 3 days.
func Default(name string) *Profile {
	return &Profile{
		ID:            uuid.NewString(),
		Name:          name,
		StudyDays:     []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
		DailyHours:    2,
		WindowStart:   "16:00",
		WindowEnd:     "22:00",
		FocusMinutes:  50,
		BreakMinutes:  10,
		RevisionEvery: 3,
		RevisionSlot:  20,
		SpanDays:      14,
		RestBuffer:    30,
		Weights:       Weights{Exam: 0.4, Difficulty: 0.2, Remaining: 0.3, Topics: 0.1},
	}
}

// StudiesOn reports whether the weekday is in the preferred study set.
func (p *Profile) StudiesOn(wd time.Weekday) bool {
	name := WeekdayName(wd)
	for _, d := range p.StudyDays {
		if strings.EqualFold(d, name) {
			return true
		}
	}
	return false
}

// HoursFor returns the study hours for a weekday, honoring per-weekday
// overrides before the daily default.
func (p *Profile) HoursFor(wd time.Weekday) float64 {
	if h, ok := p.HourOverrides[WeekdayName(wd)]; ok {
		return h
	}
	return p.DailyHours
}

// StartTime parses the stored plan start date. ok is false when unset.
func (p *Profile) StartTime() (t time.Time, ok bool) {
	if p.StartDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, p.StartDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday resolves a lowercase weekday name.
func ParseWeekday(name string) (time.Weekday, error) {
	wd, ok := weekdayNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
	return wd, nil
}

// WeekdayName returns the lowercase name for a weekday.
func WeekdayName(wd time.Weekday) string {
	return strings.ToLower(wd.String())
}
