package client

import "sync"

// Session is the process-wide token carrier for one signed-in user.  The
// token obtained at login is stored here and supplied to every subsequent
// client call.  Safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	name  string
	token string
}

// SignIn records the username and bearer token of a successful login.
func (s *Session) SignIn(name, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
	s.token = token
}

// Token returns the stored bearer token, or "" when nobody is signed in.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Name returns the signed-in username, or "" when nobody is signed in.
func (s *Session) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// Authenticated reports whether a token is currently held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SignOut clears the stored identity and token.
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = ""
	s.token = ""
}
