package model

import (
	"time"

	"github.com/google/uuid"
)

// RoomModel is the GORM-specific struct for the 'rooms' table.
type RoomModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key"`
	RoomNumber    string     `gorm:"type:varchar(64);not null"`
	Category      string     `gorm:"type:varchar(64);not null"`
	Capacity      int        `gorm:"not null"`
	Status        string     `gorm:"type:varchar(32);not null;index"`
	OccupantID    *uuid.UUID `gorm:"type:uuid"`
	PricePerNight *float64
	CreatedAt     time.Time
}

func (RoomModel) TableName() string {
	return "rooms"
}
