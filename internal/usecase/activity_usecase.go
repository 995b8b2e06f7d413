package usecase

import (
	"context"
	"time"

	"campnav/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityUsecase defines the interface for camp activity operations.
type ActivityUsecase interface {
	// List returns activities in creation order.
	List(ctx context.Context) ([]*entity.Activity, error)
	// ListUpcoming returns activities dated within the next week, soonest first.
	ListUpcoming(ctx context.Context) ([]*entity.Activity, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	Create(ctx context.Context, input *CreateActivityInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateActivityInput) error
	Remove(ctx context.Context, id uuid.UUID) error
}

// CreateActivityInput defines the data required to schedule an activity.
type CreateActivityInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Time        string    `json:"time" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Category    string    `json:"category,omitempty"`
	Capacity    *int      `json:"capacity,omitempty" validate:"omitempty,gte=0"`
}

// UpdateActivityInput lists the activity fields to change. A null capacity clears it.
type UpdateActivityInput struct {
	Title       *string              `json:"title,omitempty"`
	Description *string              `json:"description,omitempty"`
	Date        *time.Time           `json:"date,omitempty"`
	Time        *string              `json:"time,omitempty"`
	Location    *string              `json:"location,omitempty"`
	Category    *string              `json:"category,omitempty"`
	Capacity    entity.Nullable[int] `json:"capacity"`
}
