package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item or service sold at the camp.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Service     string    `json:"service,omitempty"` // Service tag, e.g. "restaurant" or "spa".
	Image       string    `json:"image,omitempty"`
	Stock       int       `json:"stock"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Service     *string
	Image       *string
	Stock       *int
	IsAvailable *bool
}
