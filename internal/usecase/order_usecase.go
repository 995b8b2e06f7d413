package usecase

import (
	"context"

	"campnav/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	List(ctx context.Context, status string) ([]*OrderView, error)
	Get(ctx context.Context, id uuid.UUID) (*OrderView, error)
	// Create returns the stored order, including its id and defaults.
	Create(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateOrderInput) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Source  string    `json:"source" validate:"required"`
	Summary string    `json:"summary" validate:"required"`
	Total   float64   `json:"total" validate:"gte=0"`
	Status  string    `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
}

// UpdateOrderInput lists the order fields to change.
type UpdateOrderInput struct {
	UserID  *uuid.UUID `json:"user_id,omitempty"`
	Source  *string    `json:"source,omitempty"`
	Summary *string    `json:"summary,omitempty"`
	Total   *float64   `json:"total,omitempty"`
	Status  *string    `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
}
