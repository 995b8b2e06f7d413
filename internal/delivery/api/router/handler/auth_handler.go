package handler

import (
	"log/slog"
	"net/http"
	"time"

	"campnav/config"
	"campnav/internal/delivery/api/response"
	"campnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	UserUC usecase.UserUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves the admin login and the guest credential check.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	userUC       usecase.UserUsecase
	cookieName   string
	secureCookie bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:       params.AuthUC,
		userUC:       params.UserUC,
		cookieName:   params.Config.Session.CookieName,
		secureCookie: params.Config.IsProduction(),
		logger:       params.Logger,
	}
}

// LoginRequest represents the admin login form.
type LoginRequest struct {
	Password string `json:"password" form:"password" validate:"required"`
}

// VerifyUserRequest represents guest app credentials.
type VerifyUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse describes the current admin session.
type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// Login checks the admin password and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.authUC.Login(c.Request().Context(), req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(session.MaxAge.Seconds()),
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, SessionResponse{Authenticated: true, ExpiresAt: &session.ExpiresAt})
}

// Logout expires the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, SessionResponse{Authenticated: false})
}

// Session reports whether the caller holds a valid admin session.
func (h *AuthHandler) Session(c echo.Context) error {
	authenticated := false
	if cookie, err := c.Cookie(h.cookieName); err == nil {
		authenticated = h.authUC.ValidateSession(c.Request().Context(), cookie.Value)
	}

	return response.Success(c, http.StatusOK, SessionResponse{Authenticated: authenticated})
}

// VerifyUser checks guest credentials and responds with the user, or null
// data when they do not match.
func (h *AuthHandler) VerifyUser(c echo.Context) error {
	var req VerifyUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credentials input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.userUC.VerifyUser(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
