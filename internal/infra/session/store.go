// Package session implements the in-memory session registry. A session is
// created at login with the backend token, resolved on every authenticated
// request, and deleted at logout.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"backoffice/config"
	domainsession "backoffice/internal/domain/session"
)

type store struct {
	mu       sync.RWMutex
	sessions map[string]*domainsession.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty session registry.
func NewStore(cfg *config.Config) domainsession.Store {
	return &store{
		sessions: make(map[string]*domainsession.Session),
		ttl:      cfg.Session.TTL,
		now:      time.Now,
	}
}

// Create registers a new session holding the backend token.
func (s *store) Create(backendToken, email string) *domainsession.Session {
	now := s.now()
	sess := &domainsession.Session{
		ID:           uuid.New().String(),
		BackendToken: backendToken,
		Email:        email,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get resolves a session by id. Expired sessions are dropped on access.
func (s *store) Get(id string) (*domainsession.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if sess.Expired(s.now()) {
		s.Delete(id)

		return nil, false
	}

	return sess, true
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (s *store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
