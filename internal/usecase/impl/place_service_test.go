package impl

import (
	"bytes"
	"context"
	"testing"

	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceService_Create_ActorBecomesOwner(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")

	place, err := fixtures.places.CreatePlace(ctx, actorFor(owner), &usecase.CreatePlaceInput{
		Title:     "City Apartment",
		Price:     99.5,
		Latitude:  25.03,
		Longitude: 121.56,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, place.ID)
	assert.Equal(t, owner.ID, place.OwnerID)
	assert.NotNil(t, place.AmenityIDs)
	assert.Empty(t, place.AmenityIDs)
}

func TestPlaceService_Create_OwnerOverrideRequiresAdmin(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	actor := registerUser(t, fixtures, "actor@example.com")
	other := registerUser(t, fixtures, "other@example.com")

	_, err := fixtures.places.CreatePlace(ctx, actorFor(actor), &usecase.CreatePlaceInput{
		Title:   "Not Mine",
		Price:   50,
		OwnerID: &other.ID,
	})

	require.ErrorIs(t, err, domainerrors.ErrUnauthorizedAction)
}

func TestPlaceService_Create_AdminCreatesForAnotherOwner(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")
	owner := registerUser(t, fixtures, "owner@example.com")

	place, err := fixtures.places.CreatePlace(ctx, actorFor(admin), &usecase.CreatePlaceInput{
		Title:   "Managed Listing",
		Price:   75,
		OwnerID: &owner.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, owner.ID, place.OwnerID)
}

func TestPlaceService_Create_UnknownOwner(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")
	ghost := uuid.New()

	_, err := fixtures.places.CreatePlace(ctx, actorFor(admin), &usecase.CreatePlaceInput{
		Title:   "Orphan Listing",
		Price:   75,
		OwnerID: &ghost,
	})

	require.ErrorIs(t, err, domainerrors.ErrOwnerNotFound)
}

func TestPlaceService_Create_UnknownAmenity(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")

	_, err := fixtures.places.CreatePlace(ctx, actorFor(owner), &usecase.CreatePlaceInput{
		Title:      "With Ghost Amenity",
		Price:      75,
		AmenityIDs: []uuid.UUID{uuid.New()},
	})

	require.ErrorIs(t, err, domainerrors.ErrAmenityNotFound)
}

func TestPlaceService_Create_WithAmenities(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")
	owner := registerUser(t, fixtures, "owner@example.com")

	wifi, err := fixtures.amenities.CreateAmenity(ctx, actorFor(admin), &usecase.CreateAmenityInput{Name: "Wi-Fi"})
	require.NoError(t, err)

	place, err := fixtures.places.CreatePlace(ctx, actorFor(owner), &usecase.CreatePlaceInput{
		Title:      "Connected Flat",
		Price:      75,
		AmenityIDs: []uuid.UUID{wifi.ID},
	})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{wifi.ID}, place.AmenityIDs)
}

func TestPlaceService_Create_InvalidPrice(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")

	_, err := fixtures.places.CreatePlace(ctx, actorFor(owner), &usecase.CreatePlaceInput{
		Title: "Free Lunch",
		Price: 0,
	})

	require.Error(t, err)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestPlaceService_Update_OwnerOnly(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")
	stranger := registerUser(t, fixtures, "stranger@example.com")
	place := createPlace(t, fixtures, owner, "Sea View Loft", 25.03, 121.56)

	title := "Renamed"
	_, err := fixtures.places.UpdatePlace(ctx, actorFor(stranger), place.ID, &usecase.UpdatePlaceInput{
		Title: &title,
	})
	require.ErrorIs(t, err, domainerrors.ErrUnauthorizedAction)

	updated, err := fixtures.places.UpdatePlace(ctx, actorFor(owner), place.ID, &usecase.UpdatePlaceInput{
		Title: &title,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestPlaceService_Update_AdminOverride(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")
	owner := registerUser(t, fixtures, "owner@example.com")
	place := createPlace(t, fixtures, owner, "Sea View Loft", 25.03, 121.56)

	price := 150.0
	updated, err := fixtures.places.UpdatePlace(ctx, actorFor(admin), place.ID, &usecase.UpdatePlaceInput{
		Price: &price,
	})

	require.NoError(t, err)
	assert.InDelta(t, 150.0, updated.Price, 1e-9)
}

func TestPlaceService_Update_OwnerReassignmentAdminOnly(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")
	owner := registerUser(t, fixtures, "owner@example.com")
	next := registerUser(t, fixtures, "next@example.com")
	place := createPlace(t, fixtures, owner, "Sea View Loft", 25.03, 121.56)

	_, err := fixtures.places.UpdatePlace(ctx, actorFor(owner), place.ID, &usecase.UpdatePlaceInput{
		OwnerID: &next.ID,
	})
	require.ErrorIs(t, err, domainerrors.ErrRestrictedField)

	updated, err := fixtures.places.UpdatePlace(ctx, actorFor(admin), place.ID, &usecase.UpdatePlaceInput{
		OwnerID: &next.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, next.ID, updated.OwnerID)

	ghost := uuid.New()
	_, err = fixtures.places.UpdatePlace(ctx, actorFor(admin), place.ID, &usecase.UpdatePlaceInput{
		OwnerID: &ghost,
	})
	require.ErrorIs(t, err, domainerrors.ErrOwnerNotFound)
}

func TestPlaceService_Delete_CascadesReviews(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")
	reviewer := registerUser(t, fixtures, "reviewer@example.com")
	place := createPlace(t, fixtures, owner, "Sea View Loft", 25.03, 121.56)

	review, err := fixtures.reviews.CreateReview(ctx, actorFor(reviewer), &usecase.CreateReviewInput{
		Text:    "Lovely",
		Rating:  4,
		PlaceID: place.ID,
	})
	require.NoError(t, err)

	require.NoError(t, fixtures.places.DeletePlace(ctx, actorFor(owner), place.ID))

	_, err = fixtures.places.GetPlace(ctx, place.ID)
	require.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)

	_, err = fixtures.reviews.GetReview(ctx, review.ID)
	require.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestPlaceService_AttachDetachAmenity(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")
	owner := registerUser(t, fixtures, "owner@example.com")

	wifi, err := fixtures.amenities.CreateAmenity(ctx, actorFor(admin), &usecase.CreateAmenityInput{Name: "Wi-Fi"})
	require.NoError(t, err)
	place := createPlace(t, fixtures, owner, "Connected Flat", 25.03, 121.56)

	attached, err := fixtures.places.AttachAmenity(ctx, actorFor(owner), place.ID, wifi.ID)
	require.NoError(t, err)
	assert.Contains(t, attached.AmenityIDs, wifi.ID)

	detached, err := fixtures.places.DetachAmenity(ctx, actorFor(owner), place.ID, wifi.ID)
	require.NoError(t, err)
	assert.NotContains(t, detached.AmenityIDs, wifi.ID)

	// Detaching an amenity that is not on the place is an error.
	_, err = fixtures.places.DetachAmenity(ctx, actorFor(owner), place.ID, wifi.ID)
	require.ErrorIs(t, err, domainerrors.ErrAmenityNotFound)
}

func TestPlaceService_AttachAmenity_OwnerOnly(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")
	owner := registerUser(t, fixtures, "owner@example.com")
	stranger := registerUser(t, fixtures, "stranger@example.com")

	wifi, err := fixtures.amenities.CreateAmenity(ctx, actorFor(admin), &usecase.CreateAmenityInput{Name: "Wi-Fi"})
	require.NoError(t, err)
	place := createPlace(t, fixtures, owner, "Connected Flat", 25.03, 121.56)

	_, err = fixtures.places.AttachAmenity(ctx, actorFor(stranger), place.ID, wifi.ID)

	require.ErrorIs(t, err, domainerrors.ErrUnauthorizedAction)
}

func TestPlaceService_SearchNearby_OrdersByDistance(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")

	// Roughly 0 km, 5.5 km and 111 km from the origin.
	origin := createPlace(t, fixtures, owner, "Origin", 0, 0)
	near := createPlace(t, fixtures, owner, "Near", 0.05, 0)
	createPlace(t, fixtures, owner, "Far", 1.0, 0)

	// Radius zero falls back to the configured 10 km default.
	results, err := fixtures.places.SearchNearby(ctx, &usecase.NearbySearchInput{
		Latitude:  0,
		Longitude: 0,
	})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, origin.ID, results[0].Place.ID)
	assert.Equal(t, near.ID, results[1].Place.ID)
	assert.InDelta(t, 0, results[0].DistanceKm, 0.01)
	assert.InDelta(t, 5.5, results[1].DistanceKm, 0.2)
}

func TestPlaceService_SearchNearby_ClampsRadius(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")

	// Roughly 0 km, 55 km and 222 km from the origin.
	createPlace(t, fixtures, owner, "Origin", 0, 0)
	createPlace(t, fixtures, owner, "Mid", 0.5, 0)
	createPlace(t, fixtures, owner, "Beyond", 2.0, 0)

	// An absurd radius is clamped to the configured 100 km maximum.
	results, err := fixtures.places.SearchNearby(ctx, &usecase.NearbySearchInput{
		Latitude:  0,
		Longitude: 0,
		RadiusKm:  1e6,
	})

	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestPlaceService_SearchNearby_InvalidCoordinates(t *testing.T) {
	fixtures := createTestServices(t)

	_, err := fixtures.places.SearchNearby(context.Background(), &usecase.NearbySearchInput{
		Latitude:  91,
		Longitude: 0,
	})

	require.Error(t, err)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestPlaceService_PlaceQR(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	owner := registerUser(t, fixtures, "owner@example.com")
	place := createPlace(t, fixtures, owner, "Sea View Loft", 25.03, 121.56)

	png, err := fixtures.places.PlaceQR(ctx, place.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))

	_, err = fixtures.places.PlaceQR(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
}
