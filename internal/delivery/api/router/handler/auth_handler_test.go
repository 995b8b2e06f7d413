package handler

import (
	"net/http"
	"testing"
	"time"

	"campnav/config"
	"campnav/internal/domain/entity"
	domainerrors "campnav/internal/domain/errors"
	mockUC "campnav/internal/mocks/usecase"
	"campnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "campnav_admin_session"

type authFixture struct {
	handler *AuthHandler
	authUC  *mockUC.MockAuthUsecase
	userUC  *mockUC.MockUserUsecase
}

func newAuthFixture(t *testing.T, env string) *authFixture {
	cfg := &config.Config{Session: &config.SessionConfig{CookieName: testCookieName}}
	cfg.Env.Env = env

	fx := &authFixture{
		authUC: mockUC.NewMockAuthUsecase(t),
		userUC: mockUC.NewMockUserUsecase(t),
	}
	fx.handler = NewAuthHandler(AuthHandlerParams{
		AuthUC: fx.authUC,
		UserUC: fx.userUC,
		Config: cfg,
		Logger: newDiscardLogger(),
	})

	return fx
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets session cookie", func(t *testing.T) {
		fx := newAuthFixture(t, "production")
		expiresAt := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		fx.authUC.EXPECT().Login(mock.Anything, "s3cret").Return(&usecase.Session{
			Token:     "signed-token",
			ExpiresAt: expiresAt,
			MaxAge:    24 * time.Hour,
		}, nil)

		c, rec := newContext(http.MethodPost, "/api/auth/login", `{"password":"s3cret"}`)
		require.NoError(t, fx.handler.Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, testCookieName, cookie.Name)
		assert.Equal(t, "signed-token", cookie.Value)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, 86400, cookie.MaxAge)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

		var body SessionResponse
		decodeData(t, rec, &body)
		assert.True(t, body.Authenticated)
	})

	t.Run("cookie is not secure outside production", func(t *testing.T) {
		fx := newAuthFixture(t, "development")
		fx.authUC.EXPECT().Login(mock.Anything, "s3cret").Return(&usecase.Session{
			Token:     "signed-token",
			ExpiresAt: time.Now().Add(time.Hour),
			MaxAge:    time.Hour,
		}, nil)

		c, rec := newContext(http.MethodPost, "/api/auth/login", `{"password":"s3cret"}`)
		require.NoError(t, fx.handler.Login(c))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.False(t, cookies[0].Secure)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := newAuthFixture(t, "")
		fx.authUC.EXPECT().Login(mock.Anything, "guess").Return(nil, domainerrors.ErrInvalidCredentials)

		c, rec := newContext(http.MethodPost, "/api/auth/login", `{"password":"guess"}`)
		require.NoError(t, fx.handler.Login(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("missing password", func(t *testing.T) {
		fx := newAuthFixture(t, "")

		c, rec := newContext(http.MethodPost, "/api/auth/login", `{}`)
		require.NoError(t, fx.handler.Login(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	fx := newAuthFixture(t, "")

	c, rec := newContext(http.MethodPost, "/api/auth/logout", "")
	require.NoError(t, fx.handler.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestAuthHandler_Session(t *testing.T) {
	t.Run("no cookie", func(t *testing.T) {
		fx := newAuthFixture(t, "")

		c, rec := newContext(http.MethodGet, "/api/auth/session", "")
		require.NoError(t, fx.handler.Session(c))

		var body SessionResponse
		decodeData(t, rec, &body)
		assert.False(t, body.Authenticated)
	})

	t.Run("valid cookie", func(t *testing.T) {
		fx := newAuthFixture(t, "")
		fx.authUC.EXPECT().ValidateSession(mock.Anything, "signed-token").Return(true)

		c, rec := newContext(http.MethodGet, "/api/auth/session", "")
		c.Request().AddCookie(&http.Cookie{Name: testCookieName, Value: "signed-token"})
		require.NoError(t, fx.handler.Session(c))

		var body SessionResponse
		decodeData(t, rec, &body)
		assert.True(t, body.Authenticated)
	})
}

func TestAuthHandler_VerifyUser(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		fx := newAuthFixture(t, "")
		user := &usecase.UserView{User: &entity.User{ID: uuid.New(), Name: "Ada", Email: "ada@camp.test"}}
		fx.userUC.EXPECT().VerifyUser(mock.Anything, "ada@camp.test", "pw").Return(user, nil)

		c, rec := newContext(http.MethodPost, "/api/auth/verify-user", `{"email":"ada@camp.test","password":"pw"}`)
		require.NoError(t, fx.handler.VerifyUser(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		decodeData(t, rec, &body)
		assert.Equal(t, "Ada", body["name"])
		assert.NotContains(t, body, "password_hash")
	})

	t.Run("mismatch responds with null", func(t *testing.T) {
		fx := newAuthFixture(t, "")
		fx.userUC.EXPECT().VerifyUser(mock.Anything, "ada@camp.test", "wrong").Return(nil, nil)

		c, rec := newContext(http.MethodPost, "/api/auth/verify-user", `{"email":"ada@camp.test","password":"wrong"}`)
		require.NoError(t, fx.handler.VerifyUser(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `null`, extractData(t, rec))
	})

	t.Run("invalid email", func(t *testing.T) {
		fx := newAuthFixture(t, "")

		c, rec := newContext(http.MethodPost, "/api/auth/verify-user", `{"email":"nope","password":"pw"}`)
		require.NoError(t, fx.handler.VerifyUser(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
