package usecase

import (
	"context"

	"homestay/internal/domain/entity"
)

// LoginInput defines the credentials for a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// AuthUsecase defines the interface for authentication operations.
type AuthUsecase interface {
	// Login verifies the credentials against the stored password hash and
	// issues an access token carrying the user id and admin flag as claims.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
