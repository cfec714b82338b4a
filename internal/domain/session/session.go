// Package session models the explicit session object that replaces ambient
// token storage: created at login, cleared at logout, passed to every
// component that needs to prove identity to the backend.
package session

import (
	"context"
	"time"
)

// Session binds a dashboard login to the backend API token it obtained.
// The token never leaves the server: clients hold only a signed reference
// to the session.
type Session struct {
	ID           string
	BackendToken string
	Email        string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Expired reports whether the session has passed its TTL.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store keeps sessions between login and logout.
type Store interface {
	// Create registers a new session holding the backend token.
	Create(backendToken, email string) *Session

	// Get resolves a session by id; ok is false for unknown or expired ids.
	Get(id string) (*Session, bool)

	// Delete removes a session. Deleting an unknown id is a no-op.
	Delete(id string)
}

type contextKey struct{}

// WithToken returns a context carrying the backend token for the current
// session. The backend client reads it on every request.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextKey{}, token)
}

// TokenFromContext extracts the backend token, if any, from the context.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(contextKey{}).(string)

	return token, ok && token != ""
}
