package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Source    string    `gorm:"type:varchar(64);not null"`
	Summary   string    `gorm:"type:text;not null"`
	Total     float64   `gorm:"not null"`
	Status    string    `gorm:"type:varchar(32);not null;index"`
	CreatedAt time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
