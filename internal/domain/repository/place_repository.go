package repository

import (
	"context"
	"errors"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlaceNotFound is a domain-specific error returned when a place is not found.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceRepository defines the standard operations for place persistence.
type PlaceRepository interface {
	// Create persists a new place entity, assigning its identifier and timestamps.
	Create(ctx context.Context, place *entity.Place) error

	// FindByID retrieves a single place by its unique ID, including its amenity set.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)

	// List returns all places. Order is unspecified.
	List(ctx context.Context) ([]*entity.Place, error)

	// ListByOwner returns all places owned by the given user.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Place, error)

	// Update modifies an existing place entity, including its amenity set,
	// and refreshes its UpdatedAt. Returns ErrPlaceNotFound if the id is absent.
	Update(ctx context.Context, place *entity.Place) error

	// Delete removes the place. Returns ErrPlaceNotFound if the id is absent.
	// Dependent reviews are the caller's responsibility; the review service
	// cascades them inside the same transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
