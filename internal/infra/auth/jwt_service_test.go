package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"campnav/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T, secret string, ttl time.Duration) *jwtSessionService {
	t.Helper()

	cfg := &config.Config{Session: &config.SessionConfig{Secret: secret, TTL: ttl}}
	svc, err := NewJWTSessionService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return svc.(*jwtSessionService)
}

func TestJWTSessionService_IssueAndValidate(t *testing.T) {
	svc := newTestSessionService(t, "test_session_secret_key_long_enough", 24*time.Hour)

	token, expiresAt, err := svc.Issue("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, sessionIssuer, claims.Issuer)
	assert.Equal(t, 24*time.Hour, svc.TTL())
}

func TestJWTSessionService_RejectsExpiredToken(t *testing.T) {
	svc := newTestSessionService(t, "test_session_secret_key_long_enough", time.Hour)

	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }
	token, _, err := svc.Issue("admin")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTSessionService_RejectsForeignSignature(t *testing.T) {
	issuer := newTestSessionService(t, "first_secret_key_for_signing_tokens", time.Hour)
	verifier := newTestSessionService(t, "second_secret_key_for_signing_tokens", time.Hour)

	token, _, err := issuer.Issue("admin")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTSessionService_RejectsGarbage(t *testing.T) {
	svc := newTestSessionService(t, "", time.Hour)

	_, err := svc.Validate("authenticated")
	assert.Error(t, err)
}

func TestJWTSessionService_EphemeralKeyStillValidates(t *testing.T) {
	svc := newTestSessionService(t, "", time.Hour)

	token, _, err := svc.Issue("admin")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.NoError(t, err)
}
