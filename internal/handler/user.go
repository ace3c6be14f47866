package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trailforge/parks-catalog/internal/auth"
	"github.com/trailforge/parks-catalog/internal/model"
	"github.com/trailforge/parks-catalog/internal/repository"
)

// AuthService is the authentication surface the user endpoints depend on.
type AuthService interface {
	IsUniqueUser(ctx context.Context, username string) (bool, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	Register(ctx context.Context, cred model.AuthenticationUser) (*model.User, error)
}

// UserHandler bundles dependencies for the user endpoints.
type UserHandler struct {
	Auth AuthService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc AuthService) *UserHandler {
	return &UserHandler{Auth: svc}
}

// Authenticate handles POST /api/v1/users/authenticate.  Bad credentials
// always produce the same reply, whether the username is unknown or the
// password is wrong.
func (h *UserHandler) Authenticate(c echo.Context) error {
	var cred model.AuthenticationUser
	if err := c.Bind(&cred); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username or password is incorrect"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Auth.Authenticate(ctx, cred.Username, cred.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username or password is incorrect"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// Register handles POST /api/v1/users/register.  The uniqueness check runs
// first; a lost race against a concurrent registration surfaces from the
// store as ErrUsernameExists and maps to the same reply.
func (h *UserHandler) Register(c echo.Context) error {
	var cred model.AuthenticationUser
	if err := c.Bind(&cred); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error while registering"})
	}
	cred.Username = strings.TrimSpace(cred.Username)
	if cred.Username == "" || cred.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error while registering"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	unique, err := h.Auth.IsUniqueUser(ctx, cred.Username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !unique {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username already exists"})
	}
	u, err := h.Auth.Register(ctx, cred)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username already exists"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error while registering"})
	}
	return c.JSON(http.StatusOK, u)
}
