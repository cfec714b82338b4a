package session

import (
	"testing"
	"time"

	"backoffice/config"
	domainsession "backoffice/internal/domain/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(ttl time.Duration) *store {
	cfg := &config.Config{}
	cfg.Session.TTL = ttl

	return NewStore(cfg).(*store)
}

func TestStore_CreateGetDelete(t *testing.T) {
	s := newTestStore(time.Hour)

	sess := s.Create("backend-token", "admin@example.com")
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, "backend-token", sess.BackendToken)

	got, ok := s.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, sess.ID, got.ID)

	s.Delete(sess.ID)
	_, ok = s.Get(sess.ID)
	assert.False(t, ok)

	// deleting again is a no-op
	s.Delete(sess.ID)
}

func TestStore_UnknownID(t *testing.T) {
	s := newTestStore(time.Hour)

	_, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestStore_ExpiredSessionIsDropped(t *testing.T) {
	s := newTestStore(time.Minute)

	sess := s.Create("backend-token", "admin@example.com")

	s.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, ok := s.Get(sess.ID)
	assert.False(t, ok)
}

func TestTokenContext_RoundTrip(t *testing.T) {
	ctx := t.Context()

	_, ok := domainsession.TokenFromContext(ctx)
	assert.False(t, ok)

	ctx = domainsession.WithToken(ctx, "backend-token")
	token, ok := domainsession.TokenFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "backend-token", token)
}
