package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a scheduled camp event.
type Activity struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"` // Display time, e.g. "18:30".
	Location    string    `json:"location"`
	Category    string    `json:"category,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ActivityPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	Time        *string
	Location    *string
	Category    *string
	Capacity    Nullable[int]
}
