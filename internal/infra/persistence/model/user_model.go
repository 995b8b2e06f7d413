// Package model contains the GORM-specific structs that map to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Image         string    `gorm:"type:text"`
	PasswordHash  string    `gorm:"type:varchar(255)"`
	Role          string    `gorm:"type:varchar(32);index"`
	DurationStart *time.Time
	DurationEnd   *time.Time
	IsOnSite      *bool
	CampStaffID   string `gorm:"type:varchar(64)"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// All lists every model managed by schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&RoomModel{},
		&OrderModel{},
		&ProductModel{},
		&AnnouncementModel{},
		&HousekeepingAssignmentModel{},
		&ServiceRequestModel{},
		&ReportModel{},
		&ActivityModel{},
	}
}
