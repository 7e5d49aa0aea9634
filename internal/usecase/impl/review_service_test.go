package impl

import (
	"context"
	"testing"

	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_Create_Success(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")
	reviewer := registerUser(t, fixtures, "reviewer@example.com")
	place := createPlace(t, fixtures, owner, "Sea View Loft", 25.03, 121.56)

	review, err := fixtures.reviews.CreateReview(ctx, actorFor(reviewer), &usecase.CreateReviewInput{
		Text:    "Great stay, would come back",
		Rating:  5,
		PlaceID: place.ID,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, review.ID)
	assert.Equal(t, reviewer.ID, review.UserID)
	assert.Equal(t, place.ID, review.PlaceID)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_Create_SelfReview(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")
	place := createPlace(t, fixtures, owner, "Sea View Loft", 25.03, 121.56)

	_, err := fixtures.reviews.CreateReview(ctx, actorFor(owner), &usecase.CreateReviewInput{
		Text:    "My place is the best",
		Rating:  5,
		PlaceID: place.ID,
	})

	require.ErrorIs(t, err, domainerrors.ErrSelfReview)
}

func TestReviewService_Create_AlreadyReviewed(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")
	reviewer := registerUser(t, fixtures, "reviewer@example.com")
	place := createPlace(t, fixtures, owner, "Sea View Loft", 25.03, 121.56)

	_, err := fixtures.reviews.CreateReview(ctx, actorFor(reviewer), &usecase.CreateReviewInput{
		Text:    "First impression",
		Rating:  4,
		PlaceID: place.ID,
	})
	require.NoError(t, err)

	_, err = fixtures.reviews.CreateReview(ctx, actorFor(reviewer), &usecase.CreateReviewInput{
		Text:    "Second thoughts",
		Rating:  2,
		PlaceID: place.ID,
	})

	require.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
}

func TestReviewService_Create_UnknownPlace(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	reviewer := registerUser(t, fixtures, "reviewer@example.com")

	_, err := fixtures.reviews.CreateReview(ctx, actorFor(reviewer), &usecase.CreateReviewInput{
		Text:    "Reviewing the void",
		Rating:  3,
		PlaceID: uuid.New(),
	})

	require.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
}

func TestReviewService_Create_InvalidRating(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")
	reviewer := registerUser(t, fixtures, "reviewer@example.com")
	place := createPlace(t, fixtures, owner, "Sea View Loft", 25.03, 121.56)

	for _, rating := range []int{0, 6, -1} {
		_, err := fixtures.reviews.CreateReview(ctx, actorFor(reviewer), &usecase.CreateReviewInput{
			Text:    "Out of range",
			Rating:  rating,
			PlaceID: place.ID,
		})

		require.Error(t, err)
		assertErrorCode(t, err, "VALIDATION_FAILED")
	}
}

func TestReviewService_ListByPlace(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")
	reviewer := registerUser(t, fixtures, "reviewer@example.com")
	place := createPlace(t, fixtures, owner, "Sea View Loft", 25.03, 121.56)

	// An existing place with no reviews returns an empty slice, not an error.
	reviews, err := fixtures.reviews.ListReviewsByPlace(ctx, place.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	created, err := fixtures.reviews.CreateReview(ctx, actorFor(reviewer), &usecase.CreateReviewInput{
		Text:    "Nice",
		Rating:  4,
		PlaceID: place.ID,
	})
	require.NoError(t, err)

	reviews, err = fixtures.reviews.ListReviewsByPlace(ctx, place.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, created.ID, reviews[0].ID)
}

func TestReviewService_ListByPlace_MissingPlace(t *testing.T) {
	fixtures := createTestServices(t)

	_, err := fixtures.reviews.ListReviewsByPlace(context.Background(), uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
}

func TestReviewService_Update_AuthorOnly(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")
	reviewer := registerUser(t, fixtures, "reviewer@example.com")
	stranger := registerUser(t, fixtures, "stranger@example.com")
	place := createPlace(t, fixtures, owner, "Sea View Loft", 25.03, 121.56)

	review, err := fixtures.reviews.CreateReview(ctx, actorFor(reviewer), &usecase.CreateReviewInput{
		Text:    "Average",
		Rating:  3,
		PlaceID: place.ID,
	})
	require.NoError(t, err)

	rating := 1
	_, err = fixtures.reviews.UpdateReview(ctx, actorFor(stranger), review.ID, &usecase.UpdateReviewInput{
		Rating: &rating,
	})
	require.ErrorIs(t, err, domainerrors.ErrUnauthorizedAction)

	rating = 4
	updated, err := fixtures.reviews.UpdateReview(ctx, actorFor(reviewer), review.ID, &usecase.UpdateReviewInput{
		Rating: &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
}

func TestReviewService_Update_InvalidRating(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")
	reviewer := registerUser(t, fixtures, "reviewer@example.com")
	place := createPlace(t, fixtures, owner, "Sea View Loft", 25.03, 121.56)

	review, err := fixtures.reviews.CreateReview(ctx, actorFor(reviewer), &usecase.CreateReviewInput{
		Text:    "Fine",
		Rating:  3,
		PlaceID: place.ID,
	})
	require.NoError(t, err)

	rating := 6
	_, err = fixtures.reviews.UpdateReview(ctx, actorFor(reviewer), review.ID, &usecase.UpdateReviewInput{
		Rating: &rating,
	})

	require.Error(t, err)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestReviewService_Delete_AuthorOrAdmin(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")
	owner := registerUser(t, fixtures, "owner@example.com")
	reviewer := registerUser(t, fixtures, "reviewer@example.com")
	place := createPlace(t, fixtures, owner, "Sea View Loft", 25.03, 121.56)

	first, err := fixtures.reviews.CreateReview(ctx, actorFor(reviewer), &usecase.CreateReviewInput{
		Text:    "Mine to delete",
		Rating:  3,
		PlaceID: place.ID,
	})
	require.NoError(t, err)

	err = fixtures.reviews.DeleteReview(ctx, actorFor(owner), first.ID)
	require.ErrorIs(t, err, domainerrors.ErrUnauthorizedAction)

	require.NoError(t, fixtures.reviews.DeleteReview(ctx, actorFor(reviewer), first.ID))
	_, err = fixtures.reviews.GetReview(ctx, first.ID)
	require.ErrorIs(t, err, domainerrors.ErrReviewNotFound)

	// The place's review collection must not keep a dangling entry.
	remaining, err := fixtures.reviews.ListReviewsByPlace(ctx, place.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	second, err := fixtures.reviews.CreateReview(ctx, actorFor(reviewer), &usecase.CreateReviewInput{
		Text:    "Admin will remove this",
		Rating:  2,
		PlaceID: place.ID,
	})
	require.NoError(t, err)

	require.NoError(t, fixtures.reviews.DeleteReview(ctx, actorFor(admin), second.ID))
}

func TestReviewService_ListByUser(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")
	reviewer := registerUser(t, fixtures, "reviewer@example.com")
	first := createPlace(t, fixtures, owner, "First Place", 25.03, 121.56)
	second := createPlace(t, fixtures, owner, "Second Place", 24.15, 120.67)

	for _, place := range []uuid.UUID{first.ID, second.ID} {
		_, err := fixtures.reviews.CreateReview(ctx, actorFor(reviewer), &usecase.CreateReviewInput{
			Text:    "Visited",
			Rating:  4,
			PlaceID: place,
		})
		require.NoError(t, err)
	}

	reviews, err := fixtures.reviews.ListReviewsByUser(ctx, reviewer.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
