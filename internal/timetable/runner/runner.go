// Package runner wraps one atomic plan generation in a cooperative,
// cancellable operation with coarse progress reporting. Cancellation is
// checked between phases only; the allocator itself is never interrupted
// mid-computation.
package runner

import (
	"context"
	"errors"

	"github.com/abhisek/studyplan/internal/profile"
	"github.com/abhisek/studyplan/internal/timetable"
)

// Progress receives coarse completion percentages with a phase label.
type Progress func(percent int, phase string)

// ErrNoProfile is returned when Run is called without a profile.
var ErrNoProfile = errors.New("no profile to generate from")

// Run generates a plan for the profile, reporting progress between
// phases and honoring context cancellation at phase boundaries.
func Run(ctx context.Context, p *profile.Profile, opts timetable.Options, report Progress) (*timetable.Plan, error) {
	if report == nil {
		report = func(int, string) {}
	}
	if p == nil {
		return nil, ErrNoProfile
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report(10, "preparing")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report(30, "allocating")

	plan, err := timetable.Generate(p, opts)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report(100, "done")
	return plan, nil
}
