package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by an admin session token.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionTokenService issues and validates signed admin session tokens.
type SessionTokenService interface {
	// Issue creates a token for subject that expires after the configured TTL.
	Issue(subject string) (token string, expiresAt time.Time, err error)

	// Validate checks signature and expiry.
	Validate(token string) (*SessionClaims, error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}
