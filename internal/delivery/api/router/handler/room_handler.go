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

// RoomHandlerParams holds dependencies for RoomHandler, injected by Fx.
type RoomHandlerParams struct {
	fx.In

	RoomUC usecase.RoomUsecase
	Logger *slog.Logger
}

// RoomHandler holds dependencies for room-related handlers
type RoomHandler struct {
	roomUC usecase.RoomUsecase
	logger *slog.Logger
}

// NewRoomHandler is the constructor for RoomHandler
func NewRoomHandler(params RoomHandlerParams) *RoomHandler {
	return &RoomHandler{
		roomUC: params.RoomUC,
		logger: params.Logger,
	}
}

// AssignOccupantRequest sets or clears (null) the occupant of a room.
type AssignOccupantRequest struct {
	UserID *uuid.UUID `json:"user_id"`
}

// ListRooms handles GET /rooms?status=
func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.roomUC.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rooms)
}

// GetRoom responds with the room, or null data when it does not exist.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "room")
	}

	room, err := h.roomUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, room)
}

// CreateRoom handles room creation
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req usecase.CreateRoomInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	id, err := h.roomUC.Create(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return created(c, id)
}

// UpdateRoom applies a partial update
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "room")
	}

	var req usecase.UpdateRoomInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.roomUC.Update(c.Request().Context(), id, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Room updated successfully")
}

// AssignOccupant handles PUT /rooms/:id/occupant
func (h *RoomHandler) AssignOccupant(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "room")
	}

	var req AssignOccupantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid occupant input")
	}

	if err := h.roomUC.AssignOccupant(c.Request().Context(), id, req.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Room occupancy updated successfully")
}

// RemoveRoom handles room deletion
func (h *RoomHandler) RemoveRoom(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "room")
	}

	if err := h.roomUC.Remove(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Room removed successfully")
}
