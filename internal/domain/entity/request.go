package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRequest is a guest request such as maintenance or room service.
type ServiceRequest struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Type        string    `json:"type"`
	RoomNumber  string    `json:"room_number"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ServiceRequestPatch struct {
	Type        *string
	RoomNumber  *string
	Description *string
	Priority    *string
	Status      *string
	Image       *string
}
