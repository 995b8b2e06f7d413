package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiter(60, 2)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	// Separate bucket per IP.
	assert.True(t, limiter.Allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
}

func TestRateLimiter_SweepsIdleClients(t *testing.T) {
	limiter := NewRateLimiter(60, 1)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.2")
	assert.Len(t, limiter.clients, 2)

	now = now.Add(limiterTTL + time.Minute)
	limiter.Allow("10.0.0.3")

	assert.Len(t, limiter.clients, 1)
}

func TestRateLimiter_Disabled(t *testing.T) {
	limiter := NewRateLimiter(0, 0)

	for range 100 {
		assert.True(t, limiter.Allow("10.0.0.1"))
	}
}

func TestRateLimiter_Limit(t *testing.T) {
	limiter := NewRateLimiter(1, 1)

	rec := serve(t, limiter.Limit, "/api/auth/login", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, limiter.Limit, "/api/auth/login", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"TOO_MANY_ATTEMPTS"`)
}
