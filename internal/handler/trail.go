package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trailforge/parks-catalog/internal/model"
	"github.com/trailforge/parks-catalog/internal/repository"
)

// TrailStore is the repository surface the trail endpoints depend on.
// ParkExists is part of the contract: a trail write must re-validate its
// owning park regardless of any earlier check in the same request.
type TrailStore interface {
	List(ctx context.Context) ([]model.Trail, error)
	ListByPark(ctx context.Context, parkID int) ([]model.Trail, error)
	GetByID(ctx context.Context, id int) (*model.Trail, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	ParkExists(ctx context.Context, parkID int) (bool, error)
	Create(ctx context.Context, t *model.Trail) error
	Update(ctx context.Context, t *model.Trail) error
	Delete(ctx context.Context, id int) error
}

// TrailHandler bundles dependencies for the trail endpoints.
type TrailHandler struct {
	Trails TrailStore
}

// NewTrailHandler constructs a TrailHandler.
func NewTrailHandler(trails TrailStore) *TrailHandler {
	return &TrailHandler{Trails: trails}
}

// List handles GET /api/v1/trails.
func (h *TrailHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	trails, err := h.Trails.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, trails)
}

// ListByPark handles GET /api/v1/trails/park/:parkId and returns the trails
// contained in one park.
func (h *TrailHandler) ListByPark(c echo.Context) error {
	parkID, err := strconv.Atoi(c.Param("parkId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	trails, err := h.Trails.ListByPark(ctx, parkID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, trails)
}

// Get handles GET /api/v1/trails/:id.
func (h *TrailHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	t, err := h.Trails.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTrailNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trail not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, t)
}

// Create handles POST /api/v1/trails.  The owning park is validated before
// the duplicate-name check, matching the order clients observe.
func (h *TrailHandler) Create(c echo.Context) error {
	var t model.Trail
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(t.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if !t.Difficulty.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid difficulty"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	parkOK, err := h.Trails.ParkExists(ctx, t.NationalParkID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if !parkOK {
		return c.JSON(http.StatusNotFound,
			echo.Map{"error": fmt.Sprintf("national park %d doesn't exist", t.NationalParkID)})
	}
	exists, err := h.Trails.ExistsByName(ctx, t.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if exists {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "trail already exists"})
	}
	t.NationalPark = nil // writes never carry the expanded park
	if err := h.Trails.Create(ctx, &t); err != nil {
		return c.JSON(http.StatusInternalServerError,
			echo.Map{"error": fmt.Sprintf("something went wrong when saving the record %s", t.Name)})
	}
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/v1/trails/%d", t.ID))
	return c.JSON(http.StatusCreated, t)
}

// Update handles PUT /api/v1/trails/:id.  Full-replace semantics; the
// owning park is re-validated on every update and never repaired.
func (h *TrailHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var t model.Trail
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if t.ID != id {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id mismatch"})
	}
	if !t.Difficulty.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid difficulty"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	parkOK, err := h.Trails.ParkExists(ctx, t.NationalParkID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if !parkOK {
		return c.JSON(http.StatusNotFound,
			echo.Map{"error": fmt.Sprintf("national park %d doesn't exist", t.NationalParkID)})
	}
	t.NationalPark = nil
	if err := h.Trails.Update(ctx, &t); err != nil {
		return c.JSON(http.StatusInternalServerError,
			echo.Map{"error": fmt.Sprintf("something went wrong when updating the record %s", t.Name)})
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/trails/:id.
func (h *TrailHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	t, err := h.Trails.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTrailNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "trail not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.Trails.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError,
			echo.Map{"error": fmt.Sprintf("something went wrong when deleting the record %s", t.Name)})
	}
	return c.NoContent(http.StatusNoContent)
}
