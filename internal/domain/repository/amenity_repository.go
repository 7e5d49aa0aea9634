package repository

import (
	"context"
	"errors"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAmenityNotFound is a domain-specific error returned when an amenity is not found.
var ErrAmenityNotFound = errors.New("amenity not found")

// AmenityRepository defines the standard operations for amenity persistence.
type AmenityRepository interface {
	// Create persists a new amenity entity, assigning its identifier and timestamps.
	Create(ctx context.Context, amenity *entity.Amenity) error

	// FindByID retrieves a single amenity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Amenity, error)

	// FindByName retrieves a single amenity by name. The match is
	// case-insensitive; it backs the uniqueness check.
	FindByName(ctx context.Context, name string) (*entity.Amenity, error)

	// List returns all amenities. Order is unspecified.
	List(ctx context.Context) ([]*entity.Amenity, error)

	// Update modifies an existing amenity and refreshes its UpdatedAt.
	// Returns ErrAmenityNotFound if the id is absent.
	Update(ctx context.Context, amenity *entity.Amenity) error

	// Delete removes the amenity. Returns ErrAmenityNotFound if the id is absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
