package impl

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"log/slog"

	"campnav/config"
	deliverycontext "campnav/internal/delivery/context"
	"campnav/internal/domain/constants"
	domainerrors "campnav/internal/domain/errors"
	"campnav/internal/domain/service"
	"campnav/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface for the shared admin account.
type authService struct {
	adminPassword string
	tokens        service.SessionTokenService
	logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(cfg *config.Config, tokens service.SessionTokenService, logger *slog.Logger) usecase.AuthUsecase {
	return &authService{
		adminPassword: cfg.Admin.Password,
		tokens:        tokens,
		logger:        logger,
	}
}

// Login issues a session when password equals the configured admin password.
// Every failure, including a missing configuration, yields the same error.
func (srv *authService) Login(ctx context.Context, password string) (*usecase.Session, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if srv.adminPassword == "" {
		logger.Error("Admin password is not configured, rejecting login")

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !secretsEqual(password, srv.adminPassword) {
		logger.Warn("Admin login rejected")

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := srv.tokens.Issue(constants.AdminSubject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session")
	}

	logger.Info("Admin signed in")

	return &usecase.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		MaxAge:    srv.tokens.TTL(),
	}, nil
}

func (srv *authService) ValidateSession(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}

	claims, err := srv.tokens.Validate(token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Session rejected", slog.Any("error", err))

		return false
	}

	return claims.Subject == constants.AdminSubject
}

// secretsEqual compares fixed-size digests so neither the content nor the
// length of the secret leaks through timing.
func secretsEqual(given, want string) bool {
	a := sha256.Sum256([]byte(given))
	b := sha256.Sum256([]byte(want))

	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
