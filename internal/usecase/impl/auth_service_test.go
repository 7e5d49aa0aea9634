package impl

import (
	"context"
	"testing"

	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login_Success(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	user := registerUser(t, fixtures, "alice@example.com")

	output, err := fixtures.auth.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.Equal(t, user.ID, output.User.ID)

	claims, err := fixtures.tokens.ValidateToken(output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.False(t, claims.IsAdmin)
}

func TestAuthService_Login_AdminClaim(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	root := seedAdmin(t, fixtures, "root@example.com")

	admin, err := fixtures.users.CreateUser(ctx, actorFor(root), &usecase.CreateUserInput{
		FirstName: "Second",
		LastName:  "Admin",
		Email:     "admin@example.com",
		Password:  "Password123!",
		IsAdmin:   true,
	})
	require.NoError(t, err)

	output, err := fixtures.auth.Login(ctx, &usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	claims, err := fixtures.tokens.ValidateToken(output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestAuthService_Login_MixedCaseEmail(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	// Registration lowercases the address; logging in with the original
	// casing must still find the account.
	user, err := fixtures.users.Register(ctx, &usecase.RegisterUserInput{
		FirstName: "Alice",
		LastName:  "Chen",
		Email:     "Alice@Example.com",
		Password:  "Password123!",
	})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)

	output, err := fixtures.auth.Login(ctx, &usecase.LoginInput{
		Email:    "Alice@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestServices(t)
	ctx := context.Background()

	registerUser(t, fixtures, "alice@example.com")

	_, err := fixtures.auth.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fixtures := createTestServices(t)

	// A missing account and a wrong password must be indistinguishable.
	_, err := fixtures.auth.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
