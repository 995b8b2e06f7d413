package handler

import (
	"log/slog"
	"net/http"

	"campnav/internal/delivery/api/response"
	"campnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnnouncementHandlerParams holds dependencies for AnnouncementHandler, injected by Fx.
type AnnouncementHandlerParams struct {
	fx.In

	AnnouncementUC usecase.AnnouncementUsecase
	Logger         *slog.Logger
}

// AnnouncementHandler holds dependencies for announcement-related handlers
type AnnouncementHandler struct {
	announcementUC usecase.AnnouncementUsecase
	logger         *slog.Logger
}

// NewAnnouncementHandler is the constructor for AnnouncementHandler
func NewAnnouncementHandler(params AnnouncementHandlerParams) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementUC: params.AnnouncementUC,
		logger:         params.Logger,
	}
}

// ListAnnouncements handles GET /announcements?priority=
func (h *AnnouncementHandler) ListAnnouncements(c echo.Context) error {
	announcements, err := h.announcementUC.List(c.Request().Context(), c.QueryParam("priority"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcements)
}

func (h *AnnouncementHandler) GetAnnouncement(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "announcement")
	}

	announcement, err := h.announcementUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcement)
}

// CreateAnnouncement publishes a new announcement
func (h *AnnouncementHandler) CreateAnnouncement(c echo.Context) error {
	var req usecase.CreateAnnouncementInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid announcement input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	id, err := h.announcementUC.Create(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return created(c, id)
}

func (h *AnnouncementHandler) UpdateAnnouncement(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "announcement")
	}

	var req usecase.UpdateAnnouncementInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid announcement input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.announcementUC.Update(c.Request().Context(), id, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Announcement updated successfully")
}

func (h *AnnouncementHandler) RemoveAnnouncement(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "announcement")
	}

	if err := h.announcementUC.Remove(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Announcement removed successfully")
}
