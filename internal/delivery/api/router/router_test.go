package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"campnav/config"
	"campnav/internal/delivery/api/middleware"
	"campnav/internal/delivery/api/response"
	"campnav/internal/delivery/api/router/handler"
	"campnav/internal/delivery/api/validator"
	mockUC "campnav/internal/mocks/usecase"
	"campnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testCookieName = "campnav_admin_session"
	validToken     = "valid-token"
)

type routerFixture struct {
	echo   *echo.Echo
	authUC *mockUC.MockAuthUsecase
	roomUC *mockUC.MockRoomUsecase
}

func newRouterFixture(t *testing.T, loginBurst int) *routerFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Session: &config.SessionConfig{CookieName: testCookieName},
		Storage: &config.StorageConfig{MaxUploadSize: "10MB"},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	fx := &routerFixture{
		echo:   echo.New(),
		authUC: mockUC.NewMockAuthUsecase(t),
		roomUC: mockUC.NewMockRoomUsecase(t),
	}
	fx.echo.Validator = validator.New()
	fx.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	pages, err := handler.NewPageHandler(handler.PageHandlerParams{Logger: logger})
	require.NoError(t, err)

	NewRouter(RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC: fx.authUC,
			UserUC: mockUC.NewMockUserUsecase(t),
			Config: cfg,
			Logger: logger,
		}),
		UserHandler:         handler.NewUserHandler(handler.UserHandlerParams{Logger: logger}),
		RoomHandler:         handler.NewRoomHandler(handler.RoomHandlerParams{RoomUC: fx.roomUC, Logger: logger}),
		OrderHandler:        handler.NewOrderHandler(handler.OrderHandlerParams{Logger: logger}),
		ProductHandler:      handler.NewProductHandler(handler.ProductHandlerParams{Logger: logger}),
		AnnouncementHandler: handler.NewAnnouncementHandler(handler.AnnouncementHandlerParams{Logger: logger}),
		HousekeepingHandler: handler.NewHousekeepingHandler(handler.HousekeepingHandlerParams{Logger: logger}),
		RequestHandler:      handler.NewRequestHandler(handler.RequestHandlerParams{Logger: logger}),
		ReportHandler:       handler.NewReportHandler(handler.ReportHandlerParams{Logger: logger}),
		ActivityHandler:     handler.NewActivityHandler(handler.ActivityHandlerParams{Logger: logger}),
		FileHandler:         handler.NewFileHandler(handler.FileHandlerParams{Logger: logger}),
		PageHandler:         pages,
		SessionMiddleware: middleware.NewSessionMiddleware(middleware.SessionMiddlewareParams{
			AuthUC: fx.authUC,
			Config: cfg,
			Logger: logger,
		}),
		LoginRateLimiter: middleware.NewRateLimiter(60, loginBurst),
		Config:           cfg,
	}).RegisterRoutes(fx.echo)

	return fx
}

func (fx *routerFixture) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_PublicRoutes(t *testing.T) {
	fx := newRouterFixture(t, 5)

	health := fx.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, health.Code)

	login := fx.do(http.MethodGet, "/login", "")
	assert.Equal(t, http.StatusOK, login.Code)
	assert.Contains(t, login.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
}

func TestRouter_PageGate(t *testing.T) {
	t.Run("anonymous navigation is redirected", func(t *testing.T) {
		fx := newRouterFixture(t, 5)

		rec := fx.do(http.MethodGet, "/rooms", "")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, middleware.LoginPath, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("signed in navigation renders the page", func(t *testing.T) {
		fx := newRouterFixture(t, 5)
		fx.authUC.EXPECT().ValidateSession(mock.Anything, validToken).Return(true)

		rec := fx.do(http.MethodGet, "/rooms", validToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<h1>Rooms</h1>")
	})
}

func TestRouter_APIRequiresSession(t *testing.T) {
	t.Run("missing session", func(t *testing.T) {
		fx := newRouterFixture(t, 5)

		rec := fx.do(http.MethodGet, "/api/v1/rooms", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var body response.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "SESSION_REQUIRED", body.Error.Code)
	})

	t.Run("valid session", func(t *testing.T) {
		fx := newRouterFixture(t, 5)
		fx.authUC.EXPECT().ValidateSession(mock.Anything, validToken).Return(true)
		fx.roomUC.EXPECT().List(mock.Anything, "").Return([]*usecase.RoomView{}, nil)

		rec := fx.do(http.MethodGet, "/api/v1/rooms", validToken)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_AuthRoutesAreRateLimited(t *testing.T) {
	fx := newRouterFixture(t, 1)

	first := fx.do(http.MethodGet, "/api/auth/session", "")
	assert.Equal(t, http.StatusOK, first.Code)

	second := fx.do(http.MethodGet, "/api/auth/session", "")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
