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

func TestAmenityService_Create_RequiresAdmin(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	regular := registerUser(t, fixtures, "regular@example.com")

	_, err := fixtures.amenities.CreateAmenity(ctx, actorFor(regular), &usecase.CreateAmenityInput{
		Name: "Wi-Fi",
	})

	require.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestAmenityService_Create_Success(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")

	amenity, err := fixtures.amenities.CreateAmenity(ctx, actorFor(admin), &usecase.CreateAmenityInput{
		Name: "Wi-Fi",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, amenity.ID)
	assert.Equal(t, "Wi-Fi", amenity.Name)
}

func TestAmenityService_Create_NameTakenCaseInsensitive(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")

	_, err := fixtures.amenities.CreateAmenity(ctx, actorFor(admin), &usecase.CreateAmenityInput{Name: "Pool"})
	require.NoError(t, err)

	_, err = fixtures.amenities.CreateAmenity(ctx, actorFor(admin), &usecase.CreateAmenityInput{Name: "POOL"})
	require.ErrorIs(t, err, domainerrors.ErrAmenityNameTaken)
}

func TestAmenityService_Get_NotFound(t *testing.T) {
	fixtures := createTestServices(t)

	_, err := fixtures.amenities.GetAmenity(context.Background(), uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrAmenityNotFound)
}

func TestAmenityService_Update_RenameToOwnNameAllowed(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")

	amenity, err := fixtures.amenities.CreateAmenity(ctx, actorFor(admin), &usecase.CreateAmenityInput{Name: "Parking"})
	require.NoError(t, err)

	// The uniqueness re-check must exclude the amenity itself.
	name := "Parking"
	updated, err := fixtures.amenities.UpdateAmenity(ctx, actorFor(admin), amenity.ID, &usecase.UpdateAmenityInput{
		Name: &name,
	})

	require.NoError(t, err)
	assert.Equal(t, "Parking", updated.Name)
}

func TestAmenityService_Update_NameTakenByOther(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")

	_, err := fixtures.amenities.CreateAmenity(ctx, actorFor(admin), &usecase.CreateAmenityInput{Name: "Pool"})
	require.NoError(t, err)

	parking, err := fixtures.amenities.CreateAmenity(ctx, actorFor(admin), &usecase.CreateAmenityInput{Name: "Parking"})
	require.NoError(t, err)

	name := "pool"
	_, err = fixtures.amenities.UpdateAmenity(ctx, actorFor(admin), parking.ID, &usecase.UpdateAmenityInput{
		Name: &name,
	})

	require.ErrorIs(t, err, domainerrors.ErrAmenityNameTaken)
}

func TestAmenityService_Delete_DetachesFromPlaces(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")
	owner := registerUser(t, fixtures, "owner@example.com")

	amenity, err := fixtures.amenities.CreateAmenity(ctx, actorFor(admin), &usecase.CreateAmenityInput{Name: "Sauna"})
	require.NoError(t, err)

	place := createPlace(t, fixtures, owner, "Mountain Cabin", 24.0, 121.0)
	_, err = fixtures.places.AttachAmenity(ctx, actorFor(owner), place.ID, amenity.ID)
	require.NoError(t, err)

	require.NoError(t, fixtures.amenities.DeleteAmenity(ctx, actorFor(admin), amenity.ID))

	_, err = fixtures.amenities.GetAmenity(ctx, amenity.ID)
	require.ErrorIs(t, err, domainerrors.ErrAmenityNotFound)

	fetched, err := fixtures.places.GetPlace(ctx, place.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.AmenityIDs)
}
