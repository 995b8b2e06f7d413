package usecase

import (
	"context"

	"campnav/internal/domain/entity"

	"github.com/google/uuid"
)

// RoomUsecase defines the interface for room-related business operations.
type RoomUsecase interface {
	List(ctx context.Context, status string) ([]*RoomView, error)
	Get(ctx context.Context, id uuid.UUID) (*RoomView, error)
	Create(ctx context.Context, input *CreateRoomInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateRoomInput) error
	// AssignOccupant sets or clears the occupant and derives the status in one write.
	AssignOccupant(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error
	Remove(ctx context.Context, id uuid.UUID) error
}

// CreateRoomInput defines the data required to create a room.
type CreateRoomInput struct {
	RoomNumber    string   `json:"room_number" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Capacity      int      `json:"capacity" validate:"gte=0"`
	Status        string   `json:"status,omitempty" validate:"omitempty,oneof=available maintenance"`
	PricePerNight *float64 `json:"price_per_night,omitempty"`
}

// UpdateRoomInput lists the room fields to change. A null occupant_id clears the occupant.
type UpdateRoomInput struct {
	RoomNumber    *string                    `json:"room_number,omitempty"`
	Category      *string                    `json:"category,omitempty"`
	Capacity      *int                       `json:"capacity,omitempty"`
	Status        *string                    `json:"status,omitempty" validate:"omitempty,oneof=available occupied maintenance"`
	OccupantID    entity.Nullable[uuid.UUID] `json:"occupant_id"`
	PricePerNight entity.Nullable[float64]   `json:"price_per_night"`
}
