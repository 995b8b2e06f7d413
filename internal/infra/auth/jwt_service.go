package auth

import (
	"crypto/rand"
	"log/slog"
	"time"

	"campnav/config"
	"campnav/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	sessionIssuer      = "campnav"
	generatedKeyLength = 32
)

// jwtSessionService signs admin sessions as HS256 JWTs.
type jwtSessionService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTSessionService is the constructor for jwtSessionService.
// Without session.secret a random key is generated, so sessions do not survive a restart.
func NewJWTSessionService(cfg *config.Config, logger *slog.Logger) (service.SessionTokenService, error) {
	secret := []byte(cfg.Session.Secret)
	if len(secret) == 0 {
		secret = make([]byte, generatedKeyLength)
		if _, err := rand.Read(secret); err != nil {
			return nil, errors.Wrap(err, "failed to generate session key")
		}
		logger.Warn("session.secret is not configured, using an ephemeral signing key")
	}

	return &jwtSessionService{
		secret: secret,
		ttl:    cfg.Session.TTL,
		now:    time.Now,
	}, nil
}

// Issue creates a signed session token for subject.
func (s *jwtSessionService) Issue(subject string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := service.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign session token")
	}

	return token, expiresAt, nil
}

// Validate parses the token and checks its signature, issuer and expiry.
func (s *jwtSessionService) Validate(token string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}
	if !parsed.Valid {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}

// TTL returns the configured session lifetime.
func (s *jwtSessionService) TTL() time.Duration {
	return s.ttl
}
