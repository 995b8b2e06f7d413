// Package handler contains the echo handlers of the admin API and dashboard.
package handler

import (
	"net/http"

	"campnav/internal/delivery/api/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreatedResponse is returned after a record is created.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// WorkStatusRequest moves an order, assignment or request through its workflow.
type WorkStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
}

func parseID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))

	return id, err == nil
}

func invalidID(c echo.Context, what string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+what+" ID")
}

func message(c echo.Context, msg string) error {
	return response.Success(c, http.StatusOK, MessageResponse{Message: msg})
}

func created(c echo.Context, id uuid.UUID) error {
	return response.Success(c, http.StatusCreated, CreatedResponse{ID: id})
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
