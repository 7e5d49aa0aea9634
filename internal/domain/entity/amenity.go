package entity

import (
	"time"

	"github.com/google/uuid"
)

// Amenity is a feature a place can offer (wifi, parking, ...). Names are
// unique case-insensitively across all amenities.
type Amenity struct {
	ID        uuid.UUID
	Name      string // 1-50 characters.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAmenity builds an amenity from a raw name, running the field validator.
func NewAmenity(name string) (*Amenity, error) {
	name, err := ValidateAmenityName(name)
	if err != nil {
		return nil, err
	}

	return &Amenity{Name: name}, nil
}
