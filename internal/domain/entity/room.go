package entity

import (
	"time"

	"github.com/google/uuid"
)

// Room is a bookable unit of accommodation.
type Room struct {
	ID            uuid.UUID  `json:"id"`
	RoomNumber    string     `json:"room_number"`
	Category      string     `json:"category"`
	Capacity      int        `json:"capacity"`
	Status        string     `json:"status"`
	OccupantID    *uuid.UUID `json:"occupant_id,omitempty"`
	PricePerNight *float64   `json:"price_per_night,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// RoomPatch lists the room fields to change.
// OccupantID with an explicit null unsets the occupant.
type RoomPatch struct {
	RoomNumber    *string
	Category      *string
	Capacity      *int
	Status        *string
	OccupantID    Nullable[uuid.UUID]
	PricePerNight Nullable[float64]
}

// OccupancyPatch sets the occupant and derives the room status in the same write.
func OccupancyPatch(userID *uuid.UUID) *RoomPatch {
	status := RoomStatusAvailable
	if userID != nil {
		status = RoomStatusOccupied
	}

	return &RoomPatch{
		Status:     &status,
		OccupantID: NewNullable(userID),
	}
}
