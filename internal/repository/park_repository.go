// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for national parks: sorted listing,
// lookup, case/whitespace-insensitive name existence checks and CRUD.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values
	"strings"

	"github.com/trailforge/parks-catalog/internal/model"
)

// ErrParkNotFound is returned when a park cannot be found in the DB.
var ErrParkNotFound = errors.New("national park not found")

// ParkRepo encapsulates all database queries related to national parks.
// It depends on a sql.DB connection which should be configured elsewhere.
type ParkRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewParkRepo constructs a ParkRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.
func NewParkRepo(db *sql.DB) *ParkRepo {
	return &ParkRepo{db: db}
}

// List returns all parks ordered ascending by name.  An empty slice is
// returned when no parks exist; only store errors propagate.
func (r *ParkRepo) List(ctx context.Context) ([]model.Park, error) {
	const q = `SELECT id, name, state, established, picture
	           FROM parks ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Park{}
	for rows.Next() {
		var p model.Park
		if err := rows.Scan(&p.ID, &p.Name, &p.State, &p.Established, &p.Picture); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a park by its ID.  It returns ErrParkNotFound if no row
// is found.
func (r *ParkRepo) GetByID(ctx context.Context, id int) (*model.Park, error) {
	const q = `SELECT id, name, state, established, picture FROM parks WHERE id = ?`
	var p model.Park
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.State, &p.Established, &p.Picture); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParkNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ExistsByName reports whether a park with the given name already exists.
// The comparison is case-insensitive and ignores leading/trailing
// whitespace on both sides.
func (r *ParkRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM parks WHERE LOWER(TRIM(name)) = LOWER(?))`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, strings.TrimSpace(name)).Scan(&exists)
	return exists, err
}

// ExistsByID reports whether a park with the given id exists.
func (r *ParkRepo) ExistsByID(ctx context.Context, id int) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM parks WHERE id = ?)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, id).Scan(&exists)
	return exists, err
}

// Create inserts a new park.  On success the park's ID field is populated
// with the auto-generated value as an observable side effect.
func (r *ParkRepo) Create(ctx context.Context, p *model.Park) error {
	const q = `INSERT INTO parks (name, state, established, picture) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.Name, p.State, p.Established, nullableBlob(p.Picture))
	if err != nil {
		return err // propagate DB errors to the caller
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = int(id)
	return nil
}

// Update replaces a park row in full, with one exception: when the incoming
// park carries no picture the stored picture is kept.  Preserving the blob
// inside the same write removes the fetch-then-merge race a client would
// otherwise need.
func (r *ParkRepo) Update(ctx context.Context, p *model.Park) error {
	if len(p.Picture) == 0 {
		const q = `UPDATE parks SET name = ?, state = ?, established = ? WHERE id = ?`
		_, err := r.db.ExecContext(ctx, q, p.Name, p.State, p.Established, p.ID)
		return err
	}
	const q = `UPDATE parks SET name = ?, state = ?, established = ?, picture = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, p.Name, p.State, p.Established, p.Picture, p.ID)
	return err
}

// Delete physically removes a park row.
func (r *ParkRepo) Delete(ctx context.Context, id int) error {
	const q = `DELETE FROM parks WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// nullableBlob maps an empty byte slice to SQL NULL so optional pictures
// are stored as NULL rather than zero-length blobs.
func nullableBlob(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
