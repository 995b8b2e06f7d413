package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportModel is the GORM-specific struct for the 'reports' table.
type ReportModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Type      string    `gorm:"type:varchar(32);not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(32);not null;index"`
	CreatedAt time.Time
}

func (ReportModel) TableName() string {
	return "reports"
}
