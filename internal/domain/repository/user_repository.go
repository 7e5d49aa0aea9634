// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific sentinels returned by repositories. Lookups signal absence
// through these instead of panicking or returning nil entities.
var (
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateID is returned by Create when the entity's identifier is
	// already present. Identifiers are generated, not user-supplied, so a
	// collision indicates a caller bug rather than a client error.
	ErrDuplicateID = errors.New("duplicate identifier")
)

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity, assigning its identifier and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// The match is case-insensitive; emails are stored lowercased.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns all users. Order is unspecified.
	List(ctx context.Context) ([]*entity.User, error)

	// Update modifies an existing user entity and refreshes its UpdatedAt.
	// Returns ErrUserNotFound if the id is absent.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user. Returns ErrUserNotFound if the id is absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
