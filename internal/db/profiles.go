package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/team-matcher/internal/profiles"
	"github.com/jonathan/team-matcher/internal/types"
)

// DB satisfies the profile store the matcher reads from
var _ profiles.Store = (*DB)(nil)

const profileColumns = `id, name, title, bio, skills, goals, work_style, experience, availability`

// rowScanner is the subset of pgx.Row and pgx.Rows used to read a profile
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProfile reads one profile row selected with profileColumns
func scanProfile(row rowScanner) (*types.Profile, error) {
	var p types.Profile
	var skills, goals, workStyle []byte

	if err := row.Scan(&p.ID, &p.Name, &p.Title, &p.Bio, &skills, &goals, &workStyle, &p.Experience, &p.Availability); err != nil {
		return nil, err
	}

	for _, field := range []struct {
		name string
		raw  []byte
		dest *types.Tags
	}{
		{"skills", skills, &p.Skills},
		{"goals", goals, &p.Goals},
		{"work_style", workStyle, &p.WorkStyle},
	} {
		if len(field.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(field.raw, field.dest); err != nil {
			return nil, fmt.Errorf("failed to decode %s for profile %s: %w", field.name, p.ID, err)
		}
	}

	return &p, nil
}

// encodeTags marshals tags for a JSONB column, using [] for nil
func encodeTags(tags types.Tags) ([]byte, error) {
	return json.Marshal(tags)
}

// Get retrieves a profile by id
func (db *DB) Get(ctx context.Context, id string) (*types.Profile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`,
		id,
	)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &profiles.NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// List retrieves all profiles ordered by id
func (db *DB) List(ctx context.Context) ([]types.Profile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var out []types.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}
	return out, nil
}

// Create inserts a profile, returning a *profiles.ExistsError when the id is taken
func (db *DB) Create(ctx context.Context, p *types.Profile) error {
	args, err := profileArgs(p)
	if err != nil {
		return err
	}

	tag, err := db.pool.Exec(ctx,
		`INSERT INTO profiles (`+profileColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO NOTHING`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile %s: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return &profiles.ExistsError{ID: p.ID}
	}
	return nil
}

// Save inserts a profile or replaces the existing row with the same id
func (db *DB) Save(ctx context.Context, p *types.Profile) error {
	args, err := profileArgs(p)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (`+profileColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
		   name = $2, title = $3, bio = $4, skills = $5, goals = $6,
		   work_style = $7, experience = $8, availability = $9, updated_at = NOW()`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile %s: %w", p.ID, err)
	}
	return nil
}

// profileArgs encodes p in profileColumns order
func profileArgs(p *types.Profile) ([]any, error) {
	if p == nil || p.ID == "" {
		return nil, fmt.Errorf("profile id is required")
	}

	skills, err := encodeTags(p.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}
	goals, err := encodeTags(p.Goals)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal goals: %w", err)
	}
	workStyle, err := encodeTags(p.WorkStyle)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal work style: %w", err)
	}

	return []any{p.ID, p.Name, p.Title, p.Bio, skills, goals, workStyle, p.Experience, p.Availability}, nil
}

// Delete removes a profile; its dismissals cascade
func (db *DB) Delete(ctx context.Context, id string) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &profiles.NotFoundError{ID: id}
	}
	return nil
}

// Dismiss records that userID dismissed targetID, ignoring duplicates
func (db *DB) Dismiss(ctx context.Context, userID, targetID string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO dismissed_matches (user_id, dismissed_user_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		userID, targetID,
	)
	if err != nil {
		return fmt.Errorf("failed to dismiss match: %w", err)
	}
	return nil
}

// Dismissed returns the ids userID has dismissed
func (db *DB) Dismissed(ctx context.Context, userID string) (map[string]struct{}, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT dismissed_user_id FROM dismissed_matches WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list dismissed matches: %w", err)
	}
	defer rows.Close()

	dismissed := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan dismissed match: %w", err)
		}
		dismissed[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dismissed matches: %w", err)
	}
	return dismissed, nil
}
