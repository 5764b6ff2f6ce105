package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suri-ai/suri-backend/config"
	"github.com/suri-ai/suri-backend/internal/model"
)

func newTestTokenService(secret string) TokenService {
	cfg := &config.Config{}
	cfg.Auth.SecretKey = secret
	cfg.Auth.AccessTokenMinutes = 30
	return NewTokenService(cfg)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService("test-secret")

	token, err := svc.Issue("uid-1", "student@example.com", model.RoleStudent, svc.DefaultTTL())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UserID)
	assert.Equal(t, "student@example.com", claims.Subject)
	assert.Equal(t, model.RoleStudent, claims.Role)
}

func TestTokenCarriesRole(t *testing.T) {
	svc := newTestTokenService("test-secret")

	token, err := svc.Issue("uid-2", "admin@example.com", model.RoleAdmin, time.Minute)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestZeroTTLTokenIsRejectedImmediately(t *testing.T) {
	svc := newTestTokenService("test-secret")

	token, err := svc.Issue("uid-1", "student@example.com", model.RoleStudent, 0)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenSignedWithDifferentSecretIsRejected(t *testing.T) {
	issuer := newTestTokenService("secret-a")
	verifier := newTestTokenService("secret-b")

	token, err := issuer.Issue("uid-1", "student@example.com", model.RoleStudent, time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGarbageTokenIsRejected(t *testing.T) {
	svc := newTestTokenService("test-secret")

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestDefaultTTLFallsBackToThirtyMinutes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.SecretKey = "test-secret"
	svc := NewTokenService(cfg)

	assert.Equal(t, DefaultAccessTokenTTL, svc.DefaultTTL())
}
