package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"campnav/config"
	mockUC "campnav/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "campnav_admin_session"

func newTestSessionMiddleware(t *testing.T) (*SessionMiddleware, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)
	cfg := &config.Config{Session: &config.SessionConfig{CookieName: testCookieName}}

	return NewSessionMiddleware(SessionMiddlewareParams{
		AuthUC: authUC,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), authUC
}

func serve(t *testing.T, mw echo.MiddlewareFunc, path, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)
	require.NoError(t, err)

	return rec
}

func TestIsPublicPath(t *testing.T) {
	tests := map[string]bool{
		"/":                   false,
		"/rooms":              false,
		"/users/123":          false,
		"/login":              true,
		"/loginx":             false,
		"/api":                true,
		"/api/v1/rooms":       true,
		"/api/auth/login":     true,
		"/assets/app.js":      true,
		"/files/0192-a.png":   true,
		"/health":             true,
		"/favicon.ico":        true,
		"/reports/export.csv": true,
	}

	for path, want := range tests {
		assert.Equal(t, want, IsPublicPath(path), path)
	}
}

func TestSessionMiddleware_PageGate(t *testing.T) {
	t.Run("redirects without cookie", func(t *testing.T) {
		mw, _ := newTestSessionMiddleware(t)

		rec := serve(t, mw.PageGate, "/rooms", "")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, LoginPath, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("redirects with invalid session", func(t *testing.T) {
		mw, authUC := newTestSessionMiddleware(t)
		authUC.EXPECT().ValidateSession(mock.Anything, "forged").Return(false)

		rec := serve(t, mw.PageGate, "/", "forged")

		assert.Equal(t, http.StatusFound, rec.Code)
	})

	t.Run("passes with valid session", func(t *testing.T) {
		mw, authUC := newTestSessionMiddleware(t)
		authUC.EXPECT().ValidateSession(mock.Anything, "signed").Return(true)

		rec := serve(t, mw.PageGate, "/orders", "signed")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("public paths skip the session check", func(t *testing.T) {
		mw, _ := newTestSessionMiddleware(t)

		for _, path := range []string{"/login", "/api/v1/rooms", "/assets/app.css", "/logo.png"} {
			rec := serve(t, mw.PageGate, path, "")
			assert.Equal(t, http.StatusOK, rec.Code, path)
		}
	})
}

func TestSessionMiddleware_RequireSession(t *testing.T) {
	t.Run("rejects with 401 envelope", func(t *testing.T) {
		mw, _ := newTestSessionMiddleware(t)

		rec := serve(t, mw.RequireSession, "/api/v1/rooms", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"SESSION_REQUIRED"`)
	})

	t.Run("passes with valid session", func(t *testing.T) {
		mw, authUC := newTestSessionMiddleware(t)
		authUC.EXPECT().ValidateSession(mock.Anything, "signed").Return(true)

		rec := serve(t, mw.RequireSession, "/api/v1/rooms", "signed")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
