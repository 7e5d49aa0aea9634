package usecase

import (
	"context"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/policy"

	"github.com/google/uuid"
)

// CreateAmenityInput defines the data required to create an amenity.
type CreateAmenityInput struct {
	Name string `json:"name" validate:"required"`
}

// UpdateAmenityInput lists the mutable amenity fields as optional values.
type UpdateAmenityInput struct {
	Name *string `json:"name,omitempty"`
}

// AmenityUsecase defines the interface for amenity-related business operations.
// All mutations are admin-only; amenities have no owner.
type AmenityUsecase interface {
	// CreateAmenity creates an amenity with a case-insensitively unique name.
	CreateAmenity(ctx context.Context, actor policy.Actor, input *CreateAmenityInput) (*entity.Amenity, error)

	// GetAmenity retrieves an amenity by id.
	GetAmenity(ctx context.Context, id uuid.UUID) (*entity.Amenity, error)

	// ListAmenities retrieves all amenities.
	ListAmenities(ctx context.Context) ([]*entity.Amenity, error)

	// UpdateAmenity renames an amenity, re-checking uniqueness against all
	// other amenities.
	UpdateAmenity(ctx context.Context, actor policy.Actor, id uuid.UUID, input *UpdateAmenityInput) (*entity.Amenity, error)

	// DeleteAmenity removes an amenity and detaches it from every place.
	DeleteAmenity(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}
