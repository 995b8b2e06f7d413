package handler

import (
	"log/slog"
	"net/http"

	"campnav/internal/delivery/api/response"
	"campnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// ListOrders handles GET /orders?status=
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "order")
	}

	order, err := h.orderUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// CreateOrder responds with the full stored order.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req usecase.CreateOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.Create(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "order")
	}

	var req usecase.UpdateOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.orderUC.Update(c.Request().Context(), id, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Order updated successfully")
}

// UpdateOrderStatus responds with the updated order.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "order")
	}

	var req WorkStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

func (h *OrderHandler) RemoveOrder(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "order")
	}

	if err := h.orderUC.Remove(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Order removed successfully")
}
