// Package client is the typed HTTP access layer used by the companion web
// application to talk to the catalog API.  One generic Resource type serves
// every entity kind; callers pick the endpoint URL and the entity shape and
// the client handles JSON (de)serialization and bearer propagation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
)

// Resource performs typed CRUD against one resource endpoint family.
// Single-resource operations concatenate url and id path-style (url+id),
// so callers are responsible for trailing-slash correctness.  When a token
// is supplied, every request carries a Bearer authorization header.
//
// Status handling mirrors what the server promises: reads yield a nil
// result on anything but 200 without distinguishing why, Create succeeds
// only on 201, Update and Delete only on 204.  Errors are returned solely
// for transport-level failures.
type Resource[T any] struct {
	http *http.Client
}

// NewResource constructs a Resource using the given HTTP client.  Passing
// nil selects http.DefaultClient; timeout policy belongs to the caller's
// client, not to this layer.
func NewResource[T any](httpClient *http.Client) *Resource[T] {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Resource[T]{http: httpClient}
}

// Get fetches a single entity from url+id.  Any non-200 reply yields
// (nil, nil).
func (r *Resource[T]) Get(ctx context.Context, url string, id int, token string) (*T, error) {
	resp, err := send(ctx, r.http, http.MethodGet, url+strconv.Itoa(id), nil, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAll fetches the full collection from url.  Any non-200 reply yields
// (nil, nil).
func (r *Resource[T]) GetAll(ctx context.Context, url, token string) ([]T, error) {
	resp, err := send(ctx, r.http, http.MethodGet, url, nil, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}
	var out []T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts the entity to url and reports success only for HTTP 201.
func (r *Resource[T]) Create(ctx context.Context, url string, obj *T, token string) (bool, error) {
	if obj == nil {
		return false, nil
	}
	resp, err := send(ctx, r.http, http.MethodPost, url, obj, token)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusCreated, nil
}

// Update puts the entity to url (the caller composes url+id) and reports
// success only for HTTP 204.
func (r *Resource[T]) Update(ctx context.Context, url string, obj *T, token string) (bool, error) {
	if obj == nil {
		return false, nil
	}
	resp, err := send(ctx, r.http, http.MethodPut, url, obj, token)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusNoContent, nil
}

// Delete removes the entity at url+id and reports success only for
// HTTP 204.
func (r *Resource[T]) Delete(ctx context.Context, url string, id int, token string) (bool, error) {
	resp, err := send(ctx, r.http, http.MethodDelete, url+strconv.Itoa(id), nil, token)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusNoContent, nil
}

// send builds and executes one request.  The bearer header is attached only
// when a token is present; an empty token sends the request unauthenticated.
func send(ctx context.Context, hc *http.Client, method, url string, body any, token string) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return hc.Do(req)
}
