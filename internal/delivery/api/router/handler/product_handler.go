package handler

import (
	"log/slog"
	"net/http"

	"campnav/internal/delivery/api/response"
	"campnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ListProducts handles GET /products?category=&service=
// A concrete service takes precedence over the category.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.List(c.Request().Context(), c.QueryParam("category"), c.QueryParam("service"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "product")
	}

	product, err := h.productUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct handles product creation
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req usecase.CreateProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	id, err := h.productUC.Create(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return created(c, id)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "product")
	}

	var req usecase.UpdateProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.productUC.Update(c.Request().Context(), id, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Product updated successfully")
}

func (h *ProductHandler) RemoveProduct(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "product")
	}

	if err := h.productUC.Remove(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Product removed successfully")
}
