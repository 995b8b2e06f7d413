package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"campnav/config"
	"campnav/internal/delivery/api/response"
	domainerrors "campnav/internal/domain/errors"
	"campnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LoginPath is where unauthenticated page requests are sent.
const LoginPath = "/login"

// publicPrefixes are never gated by the page gate.
//
//nolint:gochecknoglobals
var publicPrefixes = []string{"/api", LoginPath, "/assets", "/files", "/health"}

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// SessionMiddleware gates dashboard pages and the admin API on the session cookie.
type SessionMiddleware struct {
	authUC     usecase.AuthUsecase
	cookieName string
	logger     *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		authUC:     params.AuthUC,
		cookieName: params.Config.Session.CookieName,
		logger:     params.Logger,
	}
}

// IsPublicPath reports whether path bypasses the page gate: API routes, the
// login page, static assets, stored files, health checks, and anything that
// looks like a file name.
func IsPublicPath(path string) bool {
	if strings.Contains(path, ".") {
		return true
	}

	for _, prefix := range publicPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}

	return false
}

// Authenticated reports whether the request carries a valid session cookie.
func (m *SessionMiddleware) Authenticated(c echo.Context) bool {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return false
	}

	return m.authUC.ValidateSession(c.Request().Context(), cookie.Value)
}

// PageGate redirects browser navigation without a session to the login page.
func (m *SessionMiddleware) PageGate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if IsPublicPath(c.Request().URL.Path) || m.Authenticated(c) {
			return next(c)
		}

		return c.Redirect(http.StatusFound, LoginPath)
	}
}

// RequireSession rejects API calls without a session with 401.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.Authenticated(c) {
			return response.HandleAppError(c, domainerrors.ErrSessionRequired)
		}

		return next(c)
	}
}
