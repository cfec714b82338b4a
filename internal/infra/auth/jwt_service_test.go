package auth

import (
	"testing"
	"time"

	"backoffice/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, secret string) *jwtService {
	cfg := &config.Config{}
	cfg.Session.Secret = secret
	cfg.Session.TTL = time.Hour

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_SignVerifyRoundTrip(t *testing.T) {
	svc := newTestService(t, "test-secret")

	token, err := svc.Sign("session-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	signer := newTestService(t, "secret-a")
	verifier := newTestService(t, "secret-b")

	token, err := signer.Sign("session-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestService(t, "test-secret")
	svc.ttl = -time.Minute

	token, err := svc.Sign("session-123")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestService(t, "test-secret")

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.TTL = time.Hour

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
