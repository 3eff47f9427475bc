package client

import "sync"

// Session holds the bearer token for authenticated calls. It is injected
// into the Client rather than read from ambient storage so tests can use
// fake sessions.
type Session struct {
	mu    sync.RWMutex
	token string
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Clear() {
	s.SetToken("")
}

func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}
