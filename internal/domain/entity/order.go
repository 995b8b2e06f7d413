package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a guest purchase, e.g. food or shop items.
type Order struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Source    string    `json:"source"`
	Summary   string    `json:"summary"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderPatch struct {
	UserID  *uuid.UUID
	Source  *string
	Summary *string
	Total   *float64
	Status  *string
}
