package usecase

import (
	"context"

	"github.com/google/uuid"
)

// HousekeepingUsecase defines the interface for housekeeping assignment operations.
type HousekeepingUsecase interface {
	List(ctx context.Context, status string) ([]*HousekeepingView, error)
	Get(ctx context.Context, id uuid.UUID) (*HousekeepingView, error)
	Assign(ctx context.Context, input *AssignHousekeepingInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateHousekeepingInput) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Remove(ctx context.Context, id uuid.UUID) error
}

// AssignHousekeepingInput defines the data required to assign a housekeeper.
type AssignHousekeepingInput struct {
	HousekeeperID uuid.UUID `json:"housekeeper_id" validate:"required"`
	RoomNumber    string    `json:"room_number" validate:"required"`
	ServiceType   string    `json:"service_type" validate:"required"`
	Status        string    `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
}

// UpdateHousekeepingInput lists the assignment fields to change.
type UpdateHousekeepingInput struct {
	HousekeeperID *uuid.UUID `json:"housekeeper_id,omitempty"`
	RoomNumber    *string    `json:"room_number,omitempty"`
	ServiceType   *string    `json:"service_type,omitempty"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
}
