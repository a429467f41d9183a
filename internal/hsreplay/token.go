package hsreplay

import "sync/atomic"

// TokenSource holds the process-wide auth token. It is read on every
// authenticated request and by the upload gating check, and written only by
// the token lifecycle (create / unlink), so reads and writes must not tear.
type TokenSource struct {
	v atomic.Value // string
}

// NewTokenSource returns a source seeded with token ("" means absent).
func NewTokenSource(token string) *TokenSource {
	s := &TokenSource{}
	s.v.Store(token)
	return s
}

// Get returns the current token, or "" when none is set.
func (s *TokenSource) Get() string {
	t, _ := s.v.Load().(string)
	return t
}

// Set replaces the current token.
func (s *TokenSource) Set(token string) {
	s.v.Store(token)
}

// Clear removes the current token.
func (s *TokenSource) Clear() {
	s.v.Store("")
}
