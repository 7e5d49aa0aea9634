package entity

import (
	"time"

	"github.com/google/uuid"
)

// Place is a rental listing. Ownership is fixed at creation and may only be
// reassigned by an admin. Cross-entity references are held as foreign keys;
// the object-graph view is rebuilt at the serialization boundary.
type Place struct {
	ID          uuid.UUID
	Title       string  // 1-100 characters.
	Description string  // Optional free text.
	Price       float64 // Price per night, strictly positive.
	Latitude    float64 // Degrees, -90..90 inclusive.
	Longitude   float64 // Degrees, -180..180 inclusive.
	OwnerID     uuid.UUID
	AmenityIDs  []uuid.UUID // Unordered set, many-to-many with amenities.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPlace builds a place from raw field values, running every field validator.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID uuid.UUID) (*Place, error) {
	title, err := ValidatePlaceTitle(title)
	if err != nil {
		return nil, err
	}

	price, err = ValidatePrice(price)
	if err != nil {
		return nil, err
	}

	latitude, err = ValidateLatitude(latitude)
	if err != nil {
		return nil, err
	}

	longitude, err = ValidateLongitude(longitude)
	if err != nil {
		return nil, err
	}

	return &Place{
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		AmenityIDs:  []uuid.UUID{},
	}, nil
}

// HasAmenity reports whether the amenity is already attached to the place.
func (p *Place) HasAmenity(amenityID uuid.UUID) bool {
	for _, id := range p.AmenityIDs {
		if id == amenityID {
			return true
		}
	}

	return false
}

// AttachAmenity adds the amenity to the place's set. Attaching an amenity
// that is already present is a no-op.
func (p *Place) AttachAmenity(amenityID uuid.UUID) {
	if p.HasAmenity(amenityID) {
		return
	}
	p.AmenityIDs = append(p.AmenityIDs, amenityID)
}

// DetachAmenity removes the amenity from the place's set and reports whether
// it was present.
func (p *Place) DetachAmenity(amenityID uuid.UUID) bool {
	for i, id := range p.AmenityIDs {
		if id == amenityID {
			p.AmenityIDs = append(p.AmenityIDs[:i], p.AmenityIDs[i+1:]...)

			return true
		}
	}

	return false
}
