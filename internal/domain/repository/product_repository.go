package repository

import (
	"context"
	"errors"

	"campnav/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists product records.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// List returns product records newest first, filtered by service or category when set.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	Create(ctx context.Context, record *entity.Product) error
	Update(ctx context.Context, id uuid.UUID, patch *entity.ProductPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
