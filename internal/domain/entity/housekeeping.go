package entity

import (
	"time"

	"github.com/google/uuid"
)

// HousekeepingAssignment assigns a housekeeper to a room or area.
type HousekeepingAssignment struct {
	ID            uuid.UUID `json:"id"`
	HousekeeperID uuid.UUID `json:"housekeeper_id"`
	RoomNumber    string    `json:"room_number"` // Room number or area label.
	ServiceType   string    `json:"service_type"`
	Status        string    `json:"status"`
	AssignedAt    time.Time `json:"assigned_at"`
}

type HousekeepingPatch struct {
	HousekeeperID *uuid.UUID
	RoomNumber    *string
	ServiceType   *string
	Status        *string
}
