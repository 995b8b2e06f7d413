package middleware

import (
	"sync"
	"time"

	"campnav/config"
	"campnav/internal/delivery/api/response"
	domainerrors "campnav/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// limiterTTL is how long an idle client keeps its limiter.
const limiterTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP with a token bucket each.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewLoginRateLimiter builds the limiter guarding the auth endpoints.
func NewLoginRateLimiter(cfg *config.Config) *RateLimiter {
	return NewRateLimiter(cfg.Auth.LoginRatePerMinute, cfg.Auth.LoginBurst)
}

// NewRateLimiter allows perMinute requests per IP with the given burst.
// A non-positive perMinute disables limiting.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		burst:   burst,
		now:     time.Now,
	}
}

// Allow consumes one token for ip.
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	cl, ok := r.clients[ip]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[ip] = cl
	}
	cl.lastSeen = now

	return cl.limiter.AllowN(now, 1)
}

// sweep drops idle clients at most once per limiterTTL. Callers hold mu.
func (r *RateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < limiterTTL {
		return
	}
	r.lastSweep = now

	for ip, cl := range r.clients {
		if now.Sub(cl.lastSeen) > limiterTTL {
			delete(r.clients, ip)
		}
	}
}

// Limit answers 429 once the client IP runs out of tokens.
func (r *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !r.Allow(c.RealIP()) {
			return response.HandleAppError(c, domainerrors.ErrTooManyAttempts)
		}

		return next(c)
	}
}
