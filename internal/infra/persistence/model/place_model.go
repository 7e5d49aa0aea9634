package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaceModel mirrors the 'places' table. Amenity links live in the
// 'place_amenities' join table.
type PlaceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"not null"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Amenities []*AmenityModel `gorm:"many2many:place_amenities;"`
	Reviews   []*ReviewModel  `gorm:"foreignKey:PlaceID"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}
