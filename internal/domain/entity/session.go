// Package entity contains the core business objects of the project.
package entity

import "sync"

// Session holds the single currently authenticated identity for the lifetime
// of the process. It is created empty, mutated only through Establish and
// Clear, and never persisted. Concurrent logins racing on it resolve as last
// write wins; this is a single-session-per-process model, not a session store.
type Session struct {
	mu      sync.RWMutex
	current *User
}

// NewSession creates an empty session holder.
func NewSession() *Session {
	return &Session{}
}

// Establish records the given identity as the currently authenticated one,
// replacing any previous identity.
func (s *Session) Establish(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = user
}

// Clear removes the current identity. Safe to call when nothing is
// authenticated.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
}

// Current returns the currently authenticated identity, or nil when no
// identity has been established or the session was cleared.
func (s *Session) Current() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// IsAuthenticated reports whether an identity is currently established.
func (s *Session) IsAuthenticated() bool {
	return s.Current() != nil
}
