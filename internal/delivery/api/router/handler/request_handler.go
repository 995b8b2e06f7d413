package handler

import (
	"log/slog"
	"net/http"

	"campnav/internal/delivery/api/response"
	"campnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
	Logger    *slog.Logger
}

// RequestHandler holds dependencies for request-related handlers
type RequestHandler struct {
	requestUC usecase.RequestUsecase
	logger    *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		requestUC: params.RequestUC,
		logger:    params.Logger,
	}
}

// ListRequests handles GET /requests?status=
func (h *RequestHandler) ListRequests(c echo.Context) error {
	requests, err := h.requestUC.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// ListUserRequests handles GET /requests/user/:userId
func (h *RequestHandler) ListUserRequests(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return invalidID(c, "user")
	}

	requests, err := h.requestUC.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

func (h *RequestHandler) GetRequest(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "request")
	}

	request, err := h.requestUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}

func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var req usecase.CreateRequestInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	id, err := h.requestUC.Create(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return created(c, id)
}

func (h *RequestHandler) UpdateRequest(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "request")
	}

	var req usecase.UpdateRequestInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.requestUC.Update(c.Request().Context(), id, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Request updated successfully")
}

// UpdateRequestStatus handles PATCH /requests/:id/status
func (h *RequestHandler) UpdateRequestStatus(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "request")
	}

	var req WorkStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.requestUC.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Request status updated successfully")
}

func (h *RequestHandler) RemoveRequest(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "request")
	}

	if err := h.requestUC.Remove(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Request removed successfully")
}
