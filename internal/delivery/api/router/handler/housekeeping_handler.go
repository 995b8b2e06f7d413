package handler

import (
	"log/slog"
	"net/http"

	"campnav/internal/delivery/api/response"
	"campnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HousekeepingHandlerParams holds dependencies for HousekeepingHandler, injected by Fx.
type HousekeepingHandlerParams struct {
	fx.In

	HousekeepingUC usecase.HousekeepingUsecase
	Logger         *slog.Logger
}

// HousekeepingHandler holds dependencies for assignment-related handlers
type HousekeepingHandler struct {
	housekeepingUC usecase.HousekeepingUsecase
	logger         *slog.Logger
}

// NewHousekeepingHandler is the constructor for HousekeepingHandler
func NewHousekeepingHandler(params HousekeepingHandlerParams) *HousekeepingHandler {
	return &HousekeepingHandler{
		housekeepingUC: params.HousekeepingUC,
		logger:         params.Logger,
	}
}

// ListAssignments handles GET /housekeeping?status=
func (h *HousekeepingHandler) ListAssignments(c echo.Context) error {
	assignments, err := h.housekeepingUC.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assignments)
}

func (h *HousekeepingHandler) GetAssignment(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "assignment")
	}

	assignment, err := h.housekeepingUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assignment)
}

// AssignHousekeeping assigns a housekeeper to a room or area
func (h *HousekeepingHandler) AssignHousekeeping(c echo.Context) error {
	var req usecase.AssignHousekeepingInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	id, err := h.housekeepingUC.Assign(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return created(c, id)
}

func (h *HousekeepingHandler) UpdateAssignment(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "assignment")
	}

	var req usecase.UpdateHousekeepingInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.housekeepingUC.Update(c.Request().Context(), id, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Assignment updated successfully")
}

// UpdateAssignmentStatus handles PATCH /housekeeping/:id/status
func (h *HousekeepingHandler) UpdateAssignmentStatus(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "assignment")
	}

	var req WorkStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.housekeepingUC.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Assignment status updated successfully")
}

func (h *HousekeepingHandler) RemoveAssignment(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "assignment")
	}

	if err := h.housekeepingUC.Remove(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Assignment removed successfully")
}
