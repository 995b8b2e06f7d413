package repository

import (
	"context"
	"errors"

	"campnav/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists order records.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// List returns order records newest first. An empty status scans every order.
	List(ctx context.Context, status string) ([]*entity.Order, error)
	Create(ctx context.Context, record *entity.Order) error
	Update(ctx context.Context, id uuid.UUID, patch *entity.OrderPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
