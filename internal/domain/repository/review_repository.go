package repository

import (
	"context"
	"errors"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// Create persists a new review entity, assigning its identifier and timestamps.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByUserAndPlace retrieves the review a user left for a place, if any.
	// It backs the one-review-per-user-per-place check.
	FindByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*entity.Review, error)

	// List returns all reviews. Order is unspecified.
	List(ctx context.Context) ([]*entity.Review, error)

	// ListByPlace returns the place's review collection, possibly empty.
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*entity.Review, error)

	// ListByUser returns all reviews authored by the given user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)

	// Update modifies an existing review and refreshes its UpdatedAt.
	// Returns ErrReviewNotFound if the id is absent.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes the review. Returns ErrReviewNotFound if the id is absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
