package model

import (
	"time"

	"github.com/google/uuid"
)

// AnnouncementModel is the GORM-specific struct for the 'announcements' table.
type AnnouncementModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Content    string    `gorm:"type:text;not null"`
	Author     string    `gorm:"type:varchar(255);not null"`
	Priority   string    `gorm:"type:varchar(32);not null;index"`
	CoverImage string    `gorm:"type:text"`
	CreatedAt  time.Time
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
