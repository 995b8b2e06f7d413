package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"not null"`
	Category    string    `gorm:"type:varchar(64);not null;index"`
	Service     string    `gorm:"type:varchar(64);index"`
	Image       string    `gorm:"type:text"`
	Stock       int       `gorm:"not null"`
	IsAvailable bool      `gorm:"not null;index"`
	CreatedAt   time.Time
}

func (ProductModel) TableName() string {
	return "products"
}
