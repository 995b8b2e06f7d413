package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel is the GORM-specific struct for the 'activities' table.
type ActivityModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Date        time.Time `gorm:"not null;index"`
	Time        string    `gorm:"type:varchar(32)"`
	Location    string    `gorm:"type:varchar(255)"`
	Category    string    `gorm:"type:varchar(64)"`
	Capacity    *int
	CreatedAt   time.Time
}

func (ActivityModel) TableName() string {
	return "activities"
}
