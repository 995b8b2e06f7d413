package usecase

import (
	"context"
	"time"
)

// AuthUsecase defines the admin dashboard sign-in operations.
type AuthUsecase interface {
	// Login checks the shared admin password and issues a session token.
	Login(ctx context.Context, password string) (*Session, error)
	// ValidateSession reports whether token is a live admin session.
	ValidateSession(ctx context.Context, token string) bool
}

// Session is an issued admin session token.
type Session struct {
	Token     string
	ExpiresAt time.Time
	MaxAge    time.Duration
}
