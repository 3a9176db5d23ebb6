package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Load reads and validates a profile document from disk. Missing
// preferences are filled from Default, and subjects/topics without ids
// get fresh ones so slot references stay resolvable.
func Load(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Decode(raw)
}

// Decode validates and decodes a raw profile document.
func Decode(raw []byte) (*Profile, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	p := Default("")
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	fillIDs(p)
	return p, nil
}

// fillIDs assigns identifiers to any entity the document left without one.
func fillIDs(p *Profile) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	for i := range p.Subjects {
		s := &p.Subjects[i]
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		for j := range s.Topics {
			if s.Topics[j].ID == "" {
				s.Topics[j].ID = uuid.NewString()
			}
		}
	}
}

// Sample returns a ready-to-edit example profile with two subjects.
func Sample() *Profile {
	p := Default("Sample learner")
	p.Subjects = []Subject{
		{
			ID:             uuid.NewString(),
			Name:           "Mathematics",
			EstimatedHours: 12,
			Difficulty:     4,
			ExamDate:       "2026-10-15",
			Topics: []Topic{
				{ID: uuid.NewString(), Title: "Linear equations", EstimatedMinutes: 240},
				{ID: uuid.NewString(), Title: "Quadratic equations", EstimatedMinutes: 240},
				{ID: uuid.NewString(), Title: "Trigonometry", EstimatedMinutes: 240},
			},
		},
		{
			ID:             uuid.NewString(),
			Name:           "Chemistry",
			EstimatedHours: 8,
			Difficulty:     3,
			Topics: []Topic{
				{ID: uuid.NewString(), Title: "Atomic structure", EstimatedMinutes: 240},
				{ID: uuid.NewString(), Title: "Chemical bonding", EstimatedMinutes: 240},
			},
		},
	}
	return p
}
