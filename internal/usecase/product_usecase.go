package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	// List filters by service when it is set and not "none", otherwise by category
	// when it is set and not "all".
	List(ctx context.Context, category, service string) ([]*ProductView, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductView, error)
	Create(ctx context.Context, input *CreateProductInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateProductInput) error
	Remove(ctx context.Context, id uuid.UUID) error
}

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Service     string  `json:"service,omitempty"`
	Image       string  `json:"image,omitempty"`
	Stock       int     `json:"stock" validate:"gte=0"`
	IsAvailable bool    `json:"is_available"`
}

// UpdateProductInput lists the product fields to change.
type UpdateProductInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Service     *string  `json:"service,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}
