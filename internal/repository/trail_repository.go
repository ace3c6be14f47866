package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/trailforge/parks-catalog/internal/model"
)

// ErrTrailNotFound is returned when a trail cannot be found in the DB.
var ErrTrailNotFound = errors.New("trail not found")

// TrailRepo encapsulates all database queries related to trails.  Reads
// expand the owning park so API responses can nest it; writes validate
// nothing themselves — the owning-park check is a separate operation the
// handler runs on every create and update.
type TrailRepo struct {
	db *sql.DB
}

// NewTrailRepo constructs a TrailRepo with the provided DB handle.
func NewTrailRepo(db *sql.DB) *TrailRepo {
	return &TrailRepo{db: db}
}

const trailSelect = `SELECT t.id, t.name, t.distance, t.difficulty, t.park_id,
	       p.id, p.name, p.state, p.established, p.picture
	FROM trails t JOIN parks p ON p.id = t.park_id`

func scanTrail(row interface{ Scan(...any) error }) (model.Trail, error) {
	var t model.Trail
	var p model.Park
	err := row.Scan(&t.ID, &t.Name, &t.Distance, &t.Difficulty, &t.NationalParkID,
		&p.ID, &p.Name, &p.State, &p.Established, &p.Picture)
	if err != nil {
		return t, err
	}
	t.NationalPark = &p
	return t, nil
}

// List returns all trails ordered ascending by name, each with its owning
// park expanded.
func (r *TrailRepo) List(ctx context.Context) ([]model.Trail, error) {
	rows, err := r.db.QueryContext(ctx, trailSelect+` ORDER BY t.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Trail{}
	for rows.Next() {
		t, err := scanTrail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByPark returns the trails contained in one park.
func (r *TrailRepo) ListByPark(ctx context.Context, parkID int) ([]model.Trail, error) {
	rows, err := r.db.QueryContext(ctx, trailSelect+` WHERE t.park_id = ?`, parkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Trail{}
	for rows.Next() {
		t, err := scanTrail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a trail by its ID with the owning park expanded.  It
// returns ErrTrailNotFound if no row is found.
func (r *TrailRepo) GetByID(ctx context.Context, id int) (*model.Trail, error) {
	t, err := scanTrail(r.db.QueryRowContext(ctx, trailSelect+` WHERE t.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrailNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ExistsByName reports whether a trail with the given name already exists,
// comparing case-insensitively with whitespace trimmed on both sides.
func (r *TrailRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM trails WHERE LOWER(TRIM(name)) = LOWER(?))`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, strings.TrimSpace(name)).Scan(&exists)
	return exists, err
}

// ExistsByID reports whether a trail with the given id exists.
func (r *TrailRepo) ExistsByID(ctx context.Context, id int) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM trails WHERE id = ?)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, id).Scan(&exists)
	return exists, err
}

// ParkExists reports whether the referenced park exists.  A trail can never
// be written against a missing park, so handlers call this on every create
// and update regardless of earlier checks in the same request.
func (r *TrailRepo) ParkExists(ctx context.Context, parkID int) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM parks WHERE id = ?)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, parkID).Scan(&exists)
	return exists, err
}

// Create inserts a new trail and populates its ID on success.
func (r *TrailRepo) Create(ctx context.Context, t *model.Trail) error {
	const q = `INSERT INTO trails (name, distance, difficulty, park_id) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, t.Name, t.Distance, t.Difficulty, t.NationalParkID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = int(id)
	return nil
}

// Update replaces a trail row in full.
func (r *TrailRepo) Update(ctx context.Context, t *model.Trail) error {
	const q = `UPDATE trails SET name = ?, distance = ?, difficulty = ?, park_id = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, t.Name, t.Distance, t.Difficulty, t.NationalParkID, t.ID)
	return err
}

// Delete physically removes a trail row.
func (r *TrailRepo) Delete(ctx context.Context, id int) error {
	const q = `DELETE FROM trails WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
