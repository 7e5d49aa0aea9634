package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating left by a user for a place. A given (user, place) pair
// holds at most one review, and a user never reviews a place they own; both
// rules are enforced by the review service, not here.
type Review struct {
	ID        uuid.UUID
	Text      string // Non-empty free text.
	Rating    int    // Integer 1-5 inclusive.
	UserID    uuid.UUID
	PlaceID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReview builds a review from raw field values, running every field validator.
func NewReview(text string, rating int, userID, placeID uuid.UUID) (*Review, error) {
	text, err := ValidateReviewText(text)
	if err != nil {
		return nil, err
	}

	rating, err = ValidateRating(rating)
	if err != nil {
		return nil, err
	}

	return &Review{
		Text:    text,
		Rating:  rating,
		UserID:  userID,
		PlaceID: placeID,
	}, nil
}
