package usecase

import (
	"context"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/policy"

	"github.com/google/uuid"
)

// CreatePlaceInput defines the data required to create a place. OwnerID is
// honored only for admin actors; everyone else becomes the owner themselves.
type CreatePlaceInput struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Price       float64     `json:"price" validate:"required"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	OwnerID     *uuid.UUID  `json:"owner_id,omitempty"`
	AmenityIDs  []uuid.UUID `json:"amenity_ids,omitempty"`
}

// UpdatePlaceInput lists the mutable place fields as optional values; only
// the supplied fields are re-validated and applied. Owner reassignment is
// admin-only and the new owner must exist.
type UpdatePlaceInput struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty"`
}

// NearbySearchInput defines a geographic search around a point.
type NearbySearchInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
}

// NearbyPlace pairs a place with its great-circle distance from the search point.
type NearbyPlace struct {
	Place      *entity.Place
	DistanceKm float64
}

// PlaceUsecase defines the interface for place-related business operations.
type PlaceUsecase interface {
	// CreatePlace creates a listing. The owner must exist; amenity ids, if
	// supplied, must all exist.
	CreatePlace(ctx context.Context, actor policy.Actor, input *CreatePlaceInput) (*entity.Place, error)

	// GetPlace retrieves a place by id.
	GetPlace(ctx context.Context, id uuid.UUID) (*entity.Place, error)

	// ListPlaces retrieves all places.
	ListPlaces(ctx context.Context) ([]*entity.Place, error)

	// ListPlacesByOwner retrieves all places owned by a user.
	ListPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Place, error)

	// SearchNearby returns places within the given radius of a point,
	// closest first.
	SearchNearby(ctx context.Context, input *NearbySearchInput) ([]*NearbyPlace, error)

	// UpdatePlace applies a partial update subject to the ownership rules.
	UpdatePlace(ctx context.Context, actor policy.Actor, id uuid.UUID, input *UpdatePlaceInput) (*entity.Place, error)

	// DeletePlace removes a place and cascades deletion of its reviews.
	DeletePlace(ctx context.Context, actor policy.Actor, id uuid.UUID) error

	// AttachAmenity adds an amenity to a place's set.
	AttachAmenity(ctx context.Context, actor policy.Actor, placeID, amenityID uuid.UUID) (*entity.Place, error)

	// DetachAmenity removes an amenity from a place's set.
	DetachAmenity(ctx context.Context, actor policy.Actor, placeID, amenityID uuid.UUID) (*entity.Place, error)

	// PlaceQR renders a PNG QR code linking to the place's public listing.
	PlaceQR(ctx context.Context, placeID uuid.UUID) ([]byte, error)
}
