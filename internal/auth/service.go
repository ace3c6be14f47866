package auth

import (
	"context"
	"errors"

	"github.com/trailforge/parks-catalog/internal/model"
	"github.com/trailforge/parks-catalog/internal/repository"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password.  Callers must not be able to tell the two apart, which keeps
// the authenticate endpoint useless for user enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore is the slice of the user repository the service depends on.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	IsUnique(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, u *model.User) error
}

// Service validates credentials, issues signed time-boxed tokens and
// registers users.  Every call is self-contained; no session state is kept
// on the server.
type Service struct {
	Users      UserStore
	Secret     string // symmetric JWT signing secret
	TTLDays    int    // token validity window in days
	BcryptCost int
}

// NewService constructs an auth Service.
func NewService(users UserStore, secret string, ttlDays, bcryptCost int) *Service {
	return &Service{Users: users, Secret: secret, TTLDays: ttlDays, BcryptCost: bcryptCost}
}

// IsUniqueUser reports whether no user row has the given exact username.
func (s *Service) IsUniqueUser(ctx context.Context, username string) (bool, error) {
	return s.Users.IsUnique(ctx, username)
}

// Authenticate looks up the user and verifies the password against the
// stored bcrypt hash.  On success a signed token is attached to the
// returned user as a transient field; it is never persisted.  Both "no
// such user" and "wrong password" come back as ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !VerifyPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	token, err := NewToken(s.Secret, u.ID, u.Role, s.TTLDays)
	if err != nil {
		return nil, err
	}
	u.Token = token
	u.Password = ""
	u.PasswordHash = ""
	return u, nil
}

// Register persists a new user with the role fixed to "User"; self
// registration can never grant Admin.  The password is stored only as a
// bcrypt hash and the returned user has its password field blanked so the
// credential never round-trips back to a caller.
func (s *Service) Register(ctx context.Context, cred model.AuthenticationUser) (*model.User, error) {
	hash, err := HashPassword(cred.Password, s.BcryptCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{Username: cred.Username, PasswordHash: hash, Role: model.RoleUser}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	u.Password = ""
	u.PasswordHash = ""
	return u, nil
}

// EnsureAdmin seeds the configured Admin account when it does not exist
// yet.  It is a no-op when the credentials are unset or the row is already
// present, so it is safe to run on every start.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	unique, err := s.Users.IsUnique(ctx, username)
	if err != nil {
		return err
	}
	if !unique {
		return nil
	}
	hash, err := HashPassword(password, s.BcryptCost)
	if err != nil {
		return err
	}
	err = s.Users.Create(ctx, &model.User{Username: username, PasswordHash: hash, Role: model.RoleAdmin})
	if errors.Is(err, repository.ErrUsernameExists) {
		// Lost a startup race against another replica; the row exists.
		return nil
	}
	return err
}
