package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RequestUsecase defines the interface for guest service request operations.
type RequestUsecase interface {
	List(ctx context.Context, status string) ([]*RequestView, error)
	// ListForUser returns the requests of one guest, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*RequestView, error)
	Get(ctx context.Context, id uuid.UUID) (*RequestView, error)
	Create(ctx context.Context, input *CreateRequestInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateRequestInput) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Remove(ctx context.Context, id uuid.UUID) error
}

// CreateRequestInput defines the data required to submit a service request.
type CreateRequestInput struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	Type        string    `json:"type" validate:"required"`
	RoomNumber  string    `json:"room_number" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Priority    string    `json:"priority" validate:"required,oneof=low medium high"`
	Image       string    `json:"image,omitempty"`
}

// UpdateRequestInput lists the request fields to change.
type UpdateRequestInput struct {
	Type        *string `json:"type,omitempty"`
	RoomNumber  *string `json:"room_number,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
	Image       *string `json:"image,omitempty"`
}
