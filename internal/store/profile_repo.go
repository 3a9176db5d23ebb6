package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/abhisek/studyplan/internal/profile"
)

// activeProfileKey is the app_state key holding the active profile id.
const activeProfileKey = "active_profile"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ProfileRepo manages saved profiles and the active-profile marker.
type ProfileRepo struct {
	db *sqlx.DB
}

// ProfileInfo is the listing row for a saved profile.
type ProfileInfo struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Save upserts a profile, keyed by its id.
func (r *ProfileRepo) Save(p *profile.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = r.db.Exec(`
		INSERT INTO profiles (id, name, data, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name,
			data = excluded.data, updated_at = excluded.updated_at`,
		p.ID, p.Name, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Get loads a profile by id.
func (r *ProfileRepo) Get(id string) (*profile.Profile, error) {
	var data string
	err := r.db.Get(&data, "SELECT data FROM profiles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	var p profile.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// List returns the saved profiles, most recently updated first.
func (r *ProfileRepo) List() ([]ProfileInfo, error) {
	infos := []ProfileInfo{}
	err := r.db.Select(&infos, "SELECT id, name, updated_at FROM profiles ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return infos, nil
}

// Delete removes a profile. Deleting the active profile clears the marker.
func (r *ProfileRepo) Delete(id string) error {
	if _, err := r.db.Exec("DELETE FROM profiles WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if _, err := r.db.Exec("DELETE FROM app_state WHERE key = ? AND value = ?", activeProfileKey, id); err != nil {
		return fmt.Errorf("clear active profile: %w", err)
	}
	return nil
}

// SetActive marks a saved profile as the active one.
func (r *ProfileRepo) SetActive(id string) error {
	if _, err := r.Get(id); err != nil {
		return err
	}
	_, err := r.db.Exec(`
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		activeProfileKey, id)
	if err != nil {
		return fmt.Errorf("set active profile: %w", err)
	}
	return nil
}

// Active loads the active profile. Returns ErrNotFound when none is set.
func (r *ProfileRepo) Active() (*profile.Profile, error) {
	var id string
	err := r.db.Get(&id, "SELECT value FROM app_state WHERE key = ?", activeProfileKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get active profile id: %w", err)
	}
	return r.Get(id)
}
