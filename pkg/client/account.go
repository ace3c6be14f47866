package client

import (
	"context"
	"encoding/json"
	"net/http"
)

// User is the account wire shape exchanged with the users endpoints.
type User struct {
	ID       int    `json:"id,omitempty"`
	UserName string `json:"userName"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
	Token    string `json:"token,omitempty"`
}

// Account talks to the authenticate and register endpoints.  Unlike
// Resource it never attaches a bearer header; both calls are made before a
// token exists.
type Account struct {
	http *http.Client
}

// NewAccount constructs an Account client; nil selects http.DefaultClient.
func NewAccount(httpClient *http.Client) *Account {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Account{http: httpClient}
}

// Login posts the credentials to url.  On HTTP 200 the returned User
// carries the issued token; any other reply yields a zero User, so callers
// test Token to learn whether the login took.
func (a *Account) Login(ctx context.Context, url string, user User) (User, error) {
	resp, err := send(ctx, a.http, http.MethodPost, url, user, "")
	if err != nil {
		return User{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return User{}, nil
	}
	var out User
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Register posts the credentials to url and reports success only for
// HTTP 200.
func (a *Account) Register(ctx context.Context, url string, user User) (bool, error) {
	resp, err := send(ctx, a.http, http.MethodPost, url, user, "")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}
