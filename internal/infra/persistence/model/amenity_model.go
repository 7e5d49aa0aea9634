package model

import (
	"time"

	"github.com/google/uuid"
)

// AmenityModel mirrors the 'amenities' table. Name uniqueness is enforced
// case-insensitively by the service layer; the unique index backs it up for
// exact duplicates.
type AmenityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(50);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AmenityModel) TableName() string {
	return "amenities"
}
