package model

import (
	"time"

	"github.com/google/uuid"
)

// HousekeepingAssignmentModel is the GORM-specific struct for the 'housekeeping_assignments' table.
type HousekeepingAssignmentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	HousekeeperID uuid.UUID `gorm:"type:uuid;not null"`
	RoomNumber    string    `gorm:"type:varchar(64);not null"`
	ServiceType   string    `gorm:"type:varchar(64);not null"`
	Status        string    `gorm:"type:varchar(32);not null;index"`
	AssignedAt    time.Time `gorm:"not null"`
}

func (HousekeepingAssignmentModel) TableName() string {
	return "housekeeping_assignments"
}
