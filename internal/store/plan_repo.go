package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/abhisek/studyplan/internal/timetable"
)

// PlanRepo manages generated plans. Only the most recent plan matters to
// the application; older rows are pruned on save.
type PlanRepo struct {
	db *sqlx.DB
}

// keepPlans bounds how many generated plans are retained.
const keepPlans = 5

// Save stores a plan and prunes all but the most recent keepPlans rows.
func (r *PlanRepo) Save(plan *timetable.Plan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	_, err = r.db.Exec(`
		INSERT INTO plans (id, profile_id, generated_at, data) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET profile_id = excluded.profile_id,
			generated_at = excluded.generated_at, data = excluded.data`,
		plan.ID, plan.ProfileID, plan.GeneratedAt.UTC(), string(data))
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return r.prune(keepPlans)
}

// Latest returns the most recently generated plan, or ErrNotFound.
func (r *PlanRepo) Latest() (*timetable.Plan, error) {
	var data string
	err := r.db.Get(&data, "SELECT data FROM plans ORDER BY generated_at DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query latest plan: %w", err)
	}
	var plan timetable.Plan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &plan, nil
}

// prune deletes all but the keep most recent plans.
func (r *PlanRepo) prune(keep int) error {
	_, err := r.db.Exec(`
		DELETE FROM plans WHERE id NOT IN (
			SELECT id FROM plans ORDER BY generated_at DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune plans: %w", err)
	}
	return nil
}
