package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trailforge/parks-catalog/internal/model"
	"github.com/trailforge/parks-catalog/internal/repository"
)

// fakeUserStore implements UserStore with function fields so each test
// supplies only the behavior it cares about.
type fakeUserStore struct {
	getByUsernameFunc func(ctx context.Context, username string) (*model.User, error)
	isUniqueFunc      func(ctx context.Context, username string) (bool, error)
	createFunc        func(ctx context.Context, u *model.User) error
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if f.getByUsernameFunc != nil {
		return f.getByUsernameFunc(ctx, username)
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) IsUnique(ctx context.Context, username string) (bool, error) {
	if f.isUniqueFunc != nil {
		return f.isUniqueFunc(ctx, username)
	}
	return true, nil
}

func (f *fakeUserStore) Create(ctx context.Context, u *model.User) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, u)
	}
	return errors.New("not implemented")
}

func newTestService(store *fakeUserStore) *Service {
	// Cost 4 keeps bcrypt fast in tests.
	return NewService(store, "unit-test-signing-secret-32-bytes!!", 7, 4)
}

func TestAuthenticateSuccess(t *testing.T) {
	hash, _ := HashPassword("pw1", 4)
	store := &fakeUserStore{
		getByUsernameFunc: func(_ context.Context, username string) (*model.User, error) {
			assert.Equal(t, "alice", username)
			return &model.User{ID: 7, Username: "alice", PasswordHash: hash, Role: model.RoleUser}, nil
		},
	}
	svc := newTestService(store)

	u, err := svc.Authenticate(context.Background(), "alice", "pw1")
	assert.NoError(t, err)
	assert.NotEmpty(t, u.Token)
	assert.Empty(t, u.Password)
	assert.Empty(t, u.PasswordHash)

	// The issued token decodes back to the user's id and role.
	claims, err := ParseToken(svc.Secret, u.Token)
	assert.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, model.RoleUser, claims.Role)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	hash, _ := HashPassword("pw1", 4)
	store := &fakeUserStore{
		getByUsernameFunc: func(_ context.Context, username string) (*model.User, error) {
			if username == "alice" {
				return &model.User{ID: 1, Username: "alice", PasswordHash: hash, Role: model.RoleUser}, nil
			}
			return nil, repository.ErrUserNotFound
		},
	}
	svc := newTestService(store)

	_, wrongPass := svc.Authenticate(context.Background(), "alice", "wrong")
	_, unknownUser := svc.Authenticate(context.Background(), "nobody", "pw1")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPass, unknownUser)
}

func TestAuthenticatePropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection refused")
	store := &fakeUserStore{
		getByUsernameFunc: func(context.Context, string) (*model.User, error) { return nil, boom },
	}
	svc := newTestService(store)

	_, err := svc.Authenticate(context.Background(), "alice", "pw1")
	assert.ErrorIs(t, err, boom)
}

func TestRegisterForcesUserRoleAndBlanksPassword(t *testing.T) {
	var stored *model.User
	store := &fakeUserStore{
		createFunc: func(_ context.Context, u *model.User) error {
			u.ID = 11
			stored = u
			return nil
		},
	}
	svc := newTestService(store)

	u, err := svc.Register(context.Background(), model.AuthenticationUser{Username: "alice", Password: "pw1"})
	assert.NoError(t, err)
	assert.Equal(t, 11, u.ID)
	assert.Equal(t, model.RoleUser, u.Role)
	assert.Empty(t, u.Password)

	// Only a hash reaches the store, never the plaintext.
	assert.NotNil(t, stored)
	assert.NotEqual(t, "pw1", stored.PasswordHash)
	assert.True(t, VerifyPassword(stored.PasswordHash, "pw1"))
}

func TestEnsureAdmin(t *testing.T) {
	t.Run("seeds when absent", func(t *testing.T) {
		var stored *model.User
		store := &fakeUserStore{
			isUniqueFunc: func(context.Context, string) (bool, error) { return true, nil },
			createFunc:   func(_ context.Context, u *model.User) error { stored = u; return nil },
		}
		svc := newTestService(store)
		assert.NoError(t, svc.EnsureAdmin(context.Background(), "root", "secret"))
		assert.NotNil(t, stored)
		assert.Equal(t, model.RoleAdmin, stored.Role)
	})

	t.Run("no-op when present", func(t *testing.T) {
		store := &fakeUserStore{
			isUniqueFunc: func(context.Context, string) (bool, error) { return false, nil },
			createFunc: func(context.Context, *model.User) error {
				t.Fatal("create must not be called")
				return nil
			},
		}
		svc := newTestService(store)
		assert.NoError(t, svc.EnsureAdmin(context.Background(), "root", "secret"))
	})

	t.Run("no-op without credentials", func(t *testing.T) {
		svc := newTestService(&fakeUserStore{})
		assert.NoError(t, svc.EnsureAdmin(context.Background(), "", ""))
	})

	t.Run("tolerates startup race", func(t *testing.T) {
		store := &fakeUserStore{
			isUniqueFunc: func(context.Context, string) (bool, error) { return true, nil },
			createFunc:   func(context.Context, *model.User) error { return repository.ErrUsernameExists },
		}
		svc := newTestService(store)
		assert.NoError(t, svc.EnsureAdmin(context.Background(), "root", "secret"))
	})
}
