package handler

import (
	"log/slog"
	"net/http"

	"campnav/internal/delivery/api/response"
	"campnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
	Logger     *slog.Logger
}

// ActivityHandler holds dependencies for activity-related handlers
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
	logger     *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{
		activityUC: params.ActivityUC,
		logger:     params.Logger,
	}
}

// ListActivities handles GET /activities in creation order.
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	activities, err := h.activityUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, activities)
}

// ListUpcomingActivities handles GET /activities/upcoming
func (h *ActivityHandler) ListUpcomingActivities(c echo.Context) error {
	activities, err := h.activityUC.ListUpcoming(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, activities)
}

func (h *ActivityHandler) GetActivity(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "activity")
	}

	activity, err := h.activityUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, activity)
}

func (h *ActivityHandler) CreateActivity(c echo.Context) error {
	var req usecase.CreateActivityInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	id, err := h.activityUC.Create(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return created(c, id)
}

func (h *ActivityHandler) UpdateActivity(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "activity")
	}

	var req usecase.UpdateActivityInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.activityUC.Update(c.Request().Context(), id, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Activity updated successfully")
}

func (h *ActivityHandler) RemoveActivity(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "activity")
	}

	if err := h.activityUC.Remove(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Activity removed successfully")
}
