package repository

import (
	"context"
	"errors"
	"time"

	"campnav/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrActivityNotFound = errors.New("activity not found")

// ActivityRepository persists activity records.
type ActivityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	// List returns activity records in creation order, oldest first.
	List(ctx context.Context) ([]*entity.Activity, error)
	// ListBefore returns activities dated before until, soonest first.
	ListBefore(ctx context.Context, until time.Time) ([]*entity.Activity, error)
	Create(ctx context.Context, record *entity.Activity) error
	Update(ctx context.Context, id uuid.UUID, patch *entity.ActivityPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
