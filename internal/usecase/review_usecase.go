package usecase

import (
	"context"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/policy"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to create a review. The author
// is always the acting user.
type CreateReviewInput struct {
	Text    string    `json:"text" validate:"required"`
	Rating  int       `json:"rating" validate:"required"`
	PlaceID uuid.UUID `json:"place_id" validate:"required"`
}

// UpdateReviewInput lists the mutable review fields as optional values; only
// the supplied fields are re-validated and applied.
type UpdateReviewInput struct {
	Text   *string `json:"text,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

// ReviewUsecase defines the interface for review-related business operations.
type ReviewUsecase interface {
	// CreateReview creates a review by the acting user for an existing
	// place. Owners cannot review their own place, and a user may review a
	// given place at most once.
	CreateReview(ctx context.Context, actor policy.Actor, input *CreateReviewInput) (*entity.Review, error)

	// GetReview retrieves a review by id.
	GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListReviews retrieves all reviews.
	ListReviews(ctx context.Context) ([]*entity.Review, error)

	// ListReviewsByPlace returns the place's review collection. A missing
	// place is an error, distinct from an existing place with no reviews.
	ListReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*entity.Review, error)

	// ListReviewsByUser returns all reviews authored by a user.
	ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)

	// UpdateReview applies a partial update subject to the authorship rules.
	UpdateReview(ctx context.Context, actor policy.Actor, id uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)

	// DeleteReview removes a review, leaving no dangling reference in its
	// place's review collection.
	DeleteReview(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}
