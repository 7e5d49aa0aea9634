// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/policy"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required for public self-registration.
// Registered users are never admins.
type RegisterUserInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// CreateUserInput defines the data an admin supplies to create a user,
// including the admin flag.
type CreateUserInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	IsAdmin   bool   `json:"is_admin"`
}

// UpdateUserInput lists the mutable user fields as optional values; only the
// supplied fields are re-validated and applied. Email, Password and IsAdmin
// are restricted fields: setting them requires an admin actor.
type UpdateUserInput struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	IsAdmin   *bool   `json:"is_admin,omitempty"`
}

// TouchesRestrictedFields reports whether the update sets any field that
// only admins may change.
func (in *UpdateUserInput) TouchesRestrictedFields() bool {
	return in.Email != nil || in.Password != nil || in.IsAdmin != nil
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a regular user account. Open to unauthenticated callers.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// CreateUser creates a user on behalf of an admin actor; the only path
	// that can mint another admin.
	CreateUser(ctx context.Context, actor policy.Actor, input *CreateUserInput) (*entity.User, error)

	// GetUser retrieves a user by id.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUser applies a partial update subject to the authorization rules.
	UpdateUser(ctx context.Context, actor policy.Actor, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes a user together with their places and reviews.
	// Admin only.
	DeleteUser(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}
