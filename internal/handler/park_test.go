package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/trailforge/parks-catalog/internal/model"
	"github.com/trailforge/parks-catalog/internal/repository"
)

// newContext builds an Echo context around a recorded request.  body may be
// a raw JSON string or any value to marshal.
func newContext(t *testing.T, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var reader *strings.Reader
	switch b := body.(type) {
	case nil:
		reader = strings.NewReader("")
	case string:
		reader = strings.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		assert.NoError(t, err)
		reader = strings.NewReader(string(buf))
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

// fakeParkStore implements ParkStore with function fields.
type fakeParkStore struct {
	listFunc         func(ctx context.Context) ([]model.Park, error)
	getByIDFunc      func(ctx context.Context, id int) (*model.Park, error)
	existsByNameFunc func(ctx context.Context, name string) (bool, error)
	existsByIDFunc   func(ctx context.Context, id int) (bool, error)
	createFunc       func(ctx context.Context, p *model.Park) error
	updateFunc       func(ctx context.Context, p *model.Park) error
	deleteFunc       func(ctx context.Context, id int) error
}

func (f *fakeParkStore) List(ctx context.Context) ([]model.Park, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx)
	}
	return []model.Park{}, nil
}
func (f *fakeParkStore) GetByID(ctx context.Context, id int) (*model.Park, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrParkNotFound
}
func (f *fakeParkStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	if f.existsByNameFunc != nil {
		return f.existsByNameFunc(ctx, name)
	}
	return false, nil
}
func (f *fakeParkStore) ExistsByID(ctx context.Context, id int) (bool, error) {
	if f.existsByIDFunc != nil {
		return f.existsByIDFunc(ctx, id)
	}
	return false, nil
}
func (f *fakeParkStore) Create(ctx context.Context, p *model.Park) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, p)
	}
	return errors.New("not implemented")
}
func (f *fakeParkStore) Update(ctx context.Context, p *model.Park) error {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, p)
	}
	return errors.New("not implemented")
}
func (f *fakeParkStore) Delete(ctx context.Context, id int) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func sampleParks() []model.Park {
	est := time.Date(1872, 3, 1, 0, 0, 0, 0, time.UTC)
	return []model.Park{
		{ID: 2, Name: "Grand Canyon", State: "Arizona", Established: est},
		{ID: 1, Name: "Yellowstone", State: "Wyoming", Established: est},
	}
}

func TestParkList(t *testing.T) {
	h := NewParkHandler(&fakeParkStore{
		listFunc: func(context.Context) ([]model.Park, error) { return sampleParks(), nil },
	})
	c, rec := newContext(t, http.MethodGet, "/api/v1/nationalparks", nil)

	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.Park
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "Grand Canyon", got[0].Name)
}

func TestParkListFirstOnly(t *testing.T) {
	h := NewParkHandler(&fakeParkStore{
		listFunc: func(context.Context) ([]model.Park, error) { return sampleParks(), nil },
	})
	c, rec := newContext(t, http.MethodGet, "/api/v2/nationalparks", nil)

	assert.NoError(t, h.ListFirst(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// v2 answers with a single object, not a collection.
	var got model.Park
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Grand Canyon", got.Name)
}

func TestParkGet(t *testing.T) {
	parks := sampleParks()
	h := NewParkHandler(&fakeParkStore{
		getByIDFunc: func(_ context.Context, id int) (*model.Park, error) {
			for i := range parks {
				if parks[i].ID == id {
					return &parks[i], nil
				}
			}
			return nil, repository.ErrParkNotFound
		},
	})

	t.Run("found", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues("1")
		assert.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Yellowstone")
	})

	t.Run("absent", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues("99")
		assert.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		c, rec := newContext(t, http.MethodGet, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues("zion")
		assert.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestParkCreate(t *testing.T) {
	t.Run("success assigns id and location", func(t *testing.T) {
		h := NewParkHandler(&fakeParkStore{
			createFunc: func(_ context.Context, p *model.Park) error { p.ID = 5; return nil },
		})
		c, rec := newContext(t, http.MethodPost, "/api/v1/nationalparks",
			model.Park{Name: "Zion", State: "Utah"})

		assert.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/v1/nationalparks/5", rec.Header().Get(echo.HeaderLocation))

		var got model.Park
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 5, got.ID)
	})

	t.Run("duplicate name rejected before the write", func(t *testing.T) {
		created := false
		h := NewParkHandler(&fakeParkStore{
			existsByNameFunc: func(_ context.Context, name string) (bool, error) { return true, nil },
			createFunc:       func(context.Context, *model.Park) error { created = true; return nil },
		})
		c, rec := newContext(t, http.MethodPost, "/api/v1/nationalparks",
			model.Park{Name: " zion "})

		assert.NoError(t, h.Create(c))
		// Duplicates come back as 404 with an error body, the status the
		// existing web client was built against.
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, created)
	})

	t.Run("store failure names the entity", func(t *testing.T) {
		h := NewParkHandler(&fakeParkStore{
			createFunc: func(context.Context, *model.Park) error { return errors.New("insert failed") },
		})
		c, rec := newContext(t, http.MethodPost, "/api/v1/nationalparks",
			model.Park{Name: "Zion"})

		assert.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Zion")
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewParkHandler(&fakeParkStore{})
		c, rec := newContext(t, http.MethodPost, "/api/v1/nationalparks", "{not json")

		assert.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestParkUpdate(t *testing.T) {
	t.Run("id mismatch rejected before any mutation", func(t *testing.T) {
		updated := false
		h := NewParkHandler(&fakeParkStore{
			updateFunc: func(context.Context, *model.Park) error { updated = true; return nil },
		})
		c, rec := newContext(t, http.MethodPut, "/", model.Park{ID: 2, Name: "Zion"})
		c.SetParamNames("id")
		c.SetParamValues("1")

		assert.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, updated)
	})

	t.Run("success", func(t *testing.T) {
		h := NewParkHandler(&fakeParkStore{
			updateFunc: func(context.Context, *model.Park) error { return nil },
		})
		c, rec := newContext(t, http.MethodPut, "/", model.Park{ID: 1, Name: "Zion"})
		c.SetParamNames("id")
		c.SetParamValues("1")

		assert.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})
}

func TestParkDelete(t *testing.T) {
	t.Run("absent id performs no mutation", func(t *testing.T) {
		deleted := false
		h := NewParkHandler(&fakeParkStore{
			deleteFunc: func(context.Context, int) error { deleted = true; return nil },
		})
		c, rec := newContext(t, http.MethodDelete, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues("99")

		assert.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, deleted)
	})

	t.Run("success", func(t *testing.T) {
		h := NewParkHandler(&fakeParkStore{
			getByIDFunc: func(_ context.Context, id int) (*model.Park, error) {
				return &model.Park{ID: id, Name: "Zion"}, nil
			},
			deleteFunc: func(context.Context, int) error { return nil },
		})
		c, rec := newContext(t, http.MethodDelete, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues("5")

		assert.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
