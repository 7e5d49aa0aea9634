package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_Success(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	user, err := fixtures.users.Register(ctx, &usecase.RegisterUserInput{
		FirstName: "Alice",
		LastName:  "Chen",
		Email:     "Alice.Chen@Example.COM",
		Password:  "Password123!",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice.chen@example.com", user.Email)
	assert.False(t, user.IsAdmin)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "Password123!", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	registerUser(t, fixtures, "alice@example.com")

	_, err := fixtures.users.Register(ctx, &usecase.RegisterUserInput{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "ALICE@example.com",
		Password:  "Password123!",
	})

	require.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Register_InvalidEmail(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	_, err := fixtures.users.Register(ctx, &usecase.RegisterUserInput{
		FirstName: "Alice",
		LastName:  "Chen",
		Email:     "not-an-email",
		Password:  "Password123!",
	})

	require.Error(t, err)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestUserService_Register_NameLengthCountsRunes(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	// 30 CJK runes is 90 bytes; the 50-character bound is on runes.
	user, err := fixtures.users.Register(ctx, &usecase.RegisterUserInput{
		FirstName: strings.Repeat("愛", 30),
		LastName:  "User",
		Email:     "cjk@example.com",
		Password:  "Password123!",
	})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("愛", 30), user.FirstName)

	_, err = fixtures.users.Register(ctx, &usecase.RegisterUserInput{
		FirstName: strings.Repeat("愛", 51),
		LastName:  "User",
		Email:     "cjk2@example.com",
		Password:  "Password123!",
	})
	require.Error(t, err)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestUserService_CreateUser_RequiresAdmin(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	regular := registerUser(t, fixtures, "regular@example.com")

	_, err := fixtures.users.CreateUser(ctx, actorFor(regular), &usecase.CreateUserInput{
		FirstName: "New",
		LastName:  "User",
		Email:     "new@example.com",
		Password:  "Password123!",
	})

	require.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestUserService_CreateUser_AdminCanMintAdmin(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")

	created, err := fixtures.users.CreateUser(ctx, actorFor(admin), &usecase.CreateUserInput{
		FirstName: "Second",
		LastName:  "Admin",
		Email:     "second.admin@example.com",
		Password:  "Password123!",
		IsAdmin:   true,
	})

	require.NoError(t, err)
	assert.True(t, created.IsAdmin)

	fetched, err := fixtures.users.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsAdmin)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fixtures := createTestServices(t)

	_, err := fixtures.users.GetUser(context.Background(), uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	fixtures := createTestServices(t)

	registerUser(t, fixtures, "one@example.com")
	registerUser(t, fixtures, "two@example.com")

	users, err := fixtures.users.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_UpdateUser_SelfBasicFields(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	user := registerUser(t, fixtures, "alice@example.com")
	firstName := "Alicia"

	updated, err := fixtures.users.UpdateUser(ctx, actorFor(user), user.ID, &usecase.UpdateUserInput{
		FirstName: &firstName,
	})

	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)

	fetched, err := fixtures.users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", fetched.FirstName)
}

func TestUserService_UpdateUser_RestrictedFieldDenied(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	user := registerUser(t, fixtures, "alice@example.com")
	email := "new.alice@example.com"

	_, err := fixtures.users.UpdateUser(ctx, actorFor(user), user.ID, &usecase.UpdateUserInput{
		Email: &email,
	})
	require.ErrorIs(t, err, domainerrors.ErrRestrictedField)

	isAdmin := true
	_, err = fixtures.users.UpdateUser(ctx, actorFor(user), user.ID, &usecase.UpdateUserInput{
		IsAdmin: &isAdmin,
	})
	require.ErrorIs(t, err, domainerrors.ErrRestrictedField)
}

func TestUserService_UpdateUser_OtherUserDenied(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, fixtures, "alice@example.com")
	bob := registerUser(t, fixtures, "bob@example.com")
	firstName := "Hacked"

	_, err := fixtures.users.UpdateUser(ctx, actorFor(alice), bob.ID, &usecase.UpdateUserInput{
		FirstName: &firstName,
	})

	require.ErrorIs(t, err, domainerrors.ErrUnauthorizedAction)
}

func TestUserService_UpdateUser_AdminSetsRestrictedFields(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")
	user := registerUser(t, fixtures, "alice@example.com")

	email := "Promoted@Example.com"
	isAdmin := true

	updated, err := fixtures.users.UpdateUser(ctx, actorFor(admin), user.ID, &usecase.UpdateUserInput{
		Email:   &email,
		IsAdmin: &isAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, "promoted@example.com", updated.Email)
	assert.True(t, updated.IsAdmin)
}

func TestUserService_UpdateUser_EmailTakenByOther(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")
	registerUser(t, fixtures, "alice@example.com")
	bob := registerUser(t, fixtures, "bob@example.com")

	email := "alice@example.com"
	_, err := fixtures.users.UpdateUser(ctx, actorFor(admin), bob.ID, &usecase.UpdateUserInput{
		Email: &email,
	})

	require.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_DeleteUser_RequiresAdmin(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	user := registerUser(t, fixtures, "alice@example.com")

	err := fixtures.users.DeleteUser(ctx, actorFor(user), user.ID)

	require.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fixtures := createTestServices(t)

	admin := seedAdmin(t, fixtures, "root@example.com")

	err := fixtures.users.DeleteUser(context.Background(), actorFor(admin), uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteUser_CascadesPlacesAndReviews(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	admin := seedAdmin(t, fixtures, "root@example.com")
	owner := registerUser(t, fixtures, "owner@example.com")
	reviewer := registerUser(t, fixtures, "reviewer@example.com")

	place := createPlace(t, fixtures, owner, "Sea View Loft", 25.03, 121.56)

	review, err := fixtures.reviews.CreateReview(ctx, actorFor(reviewer), &usecase.CreateReviewInput{
		Text:    "Great stay",
		Rating:  5,
		PlaceID: place.ID,
	})
	require.NoError(t, err)

	require.NoError(t, fixtures.users.DeleteUser(ctx, actorFor(admin), owner.ID))

	_, err = fixtures.users.GetUser(ctx, owner.ID)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = fixtures.places.GetPlace(ctx, place.ID)
	require.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)

	// The reviewer survives but their review of the deleted place is gone.
	_, err = fixtures.reviews.GetReview(ctx, review.ID)
	require.ErrorIs(t, err, domainerrors.ErrReviewNotFound)

	remaining, err := fixtures.reviews.ListReviewsByUser(ctx, reviewer.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
