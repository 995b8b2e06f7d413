package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRequestModel is the GORM-specific struct for the 'service_requests' table.
type ServiceRequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(64);not null"`
	RoomNumber  string    `gorm:"type:varchar(64);not null"`
	Description string    `gorm:"type:text;not null"`
	Priority    string    `gorm:"type:varchar(32);not null"`
	Status      string    `gorm:"type:varchar(32);not null;index"`
	Image       string    `gorm:"type:text"`
	CreatedAt   time.Time
}

func (ServiceRequestModel) TableName() string {
	return "service_requests"
}
