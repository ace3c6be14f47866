package handler // handler package contains the HTTP handlers for the catalog API

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trailforge/parks-catalog/internal/model"
	"github.com/trailforge/parks-catalog/internal/repository"
)

// dbTimeout bounds every store call made from a handler.
const dbTimeout = 5 * time.Second

func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// ParkStore is the repository surface the park endpoints depend on.
type ParkStore interface {
	List(ctx context.Context) ([]model.Park, error)
	GetByID(ctx context.Context, id int) (*model.Park, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, p *model.Park) error
	Update(ctx context.Context, p *model.Park) error
	Delete(ctx context.Context, id int) error
}

// ParkHandler bundles dependencies for the national park endpoints.
type ParkHandler struct {
	Parks ParkStore
}

// NewParkHandler constructs a ParkHandler.
func NewParkHandler(parks ParkStore) *ParkHandler {
	return &ParkHandler{Parks: parks}
}

// List handles GET /api/v1/nationalparks and returns all parks sorted
// ascending by name.
func (h *ParkHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	parks, err := h.Parks.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, parks)
}

// ListFirst handles GET /api/v2/nationalparks.  The v2 route family has
// always answered with only the first park of the sorted list instead of
// the full collection, and existing clients depend on that shape, so the
// behavior is kept on the v2 path only.
func (h *ParkHandler) ListFirst(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	parks, err := h.Parks.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if len(parks) == 0 {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, parks[0])
}

// Get handles GET /api/v1/nationalparks/:id.
func (h *ParkHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	p, err := h.Parks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrParkNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "national park not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /api/v1/nationalparks.  A duplicate name is rejected
// with 404 and an error body; the companion web client was built against
// that status, so it is kept rather than corrected to 409.
func (h *ParkHandler) Create(c echo.Context) error {
	var p model.Park
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(p.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	exists, err := h.Parks.ExistsByName(ctx, p.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if exists {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "national park already exists"})
	}
	if err := h.Parks.Create(ctx, &p); err != nil {
		return c.JSON(http.StatusInternalServerError,
			echo.Map{"error": fmt.Sprintf("something went wrong when saving the record %s", p.Name)})
	}
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/v1/nationalparks/%d", p.ID))
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /api/v1/nationalparks/:id with full-replace semantics.
// The stored picture is preserved by the repository when the payload
// carries none.
func (h *ParkHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var p model.Park
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if p.ID != id {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id mismatch"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Parks.Update(ctx, &p); err != nil {
		return c.JSON(http.StatusInternalServerError,
			echo.Map{"error": fmt.Sprintf("something went wrong when updating the record %s", p.Name)})
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/nationalparks/:id.
func (h *ParkHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	p, err := h.Parks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrParkNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "national park not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.Parks.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError,
			echo.Map{"error": fmt.Sprintf("something went wrong when deleting the record %s", p.Name)})
	}
	return c.NoContent(http.StatusNoContent)
}
