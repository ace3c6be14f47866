package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/trailforge/parks-catalog/internal/model"
)

// ErrUserNotFound is returned when no user row matches a lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameExists is returned when an insert collides with the unique
// username constraint.
var ErrUsernameExists = errors.New("username already exists")

// UserRepo encapsulates all database queries related to credentialed users.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the provided DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByUsername fetches a user by exact username match, including the
// stored password hash.  ErrUserNotFound is returned when no row matches.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `SELECT id, username, password_hash, role FROM users WHERE username = ? LIMIT 1`
	var u model.User
	if err := r.db.QueryRowContext(ctx, q, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// IsUnique reports whether no user row has the given exact username.
func (r *UserRepo) IsUnique(ctx context.Context, username string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, username).Scan(&exists); err != nil {
		return false, err
	}
	return !exists, nil
}

// Create inserts a user row and populates its ID.  The username carries a
// UNIQUE constraint, so a lost check-then-insert race surfaces here as
// ErrUsernameExists rather than a second row.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, u.Username, u.PasswordHash, u.Role)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrUsernameExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = int(id)
	return nil
}
