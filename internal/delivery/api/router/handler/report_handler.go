package handler

import (
	"log/slog"
	"net/http"

	"campnav/internal/delivery/api/response"
	"campnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler holds dependencies for report-related handlers
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// ListReports handles GET /reports?status=
func (h *ReportHandler) ListReports(c echo.Context) error {
	reports, err := h.reportUC.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports)
}

// ResolveReport handles POST /reports/:id/resolve
func (h *ReportHandler) ResolveReport(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "report")
	}

	if err := h.reportUC.MarkAsResolved(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Report resolved successfully")
}

func (h *ReportHandler) GetReport(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "report")
	}

	report, err := h.reportUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// CreateReport files a bug, feedback or incident report
func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req usecase.CreateReportInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	id, err := h.reportUC.Create(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return created(c, id)
}

func (h *ReportHandler) UpdateReport(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "report")
	}

	var req usecase.UpdateReportInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.reportUC.Update(c.Request().Context(), id, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Report updated successfully")
}

func (h *ReportHandler) RemoveReport(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "report")
	}

	if err := h.reportUC.Remove(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Report removed successfully")
}
