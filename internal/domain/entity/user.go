// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. A user owns zero or more places
// and authors zero or more reviews. The password is stored only as a one-way
// hash; the plaintext never leaves the registration path.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	FirstName    string    // Given name, 1-50 characters.
	LastName     string    // Family name, 1-50 characters.
	Email        string    // Login identifier, unique across all users.
	PasswordHash string    // bcrypt hash of the password. Never serialized.
	IsAdmin      bool      // Grants unconditional authorization on all actions.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// NewUser builds a user from raw field values, running every field validator.
// The password hash is attached separately by the registration flow.
func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	firstName, err := ValidateFirstName(firstName)
	if err != nil {
		return nil, err
	}

	lastName, err = ValidateLastName(lastName)
	if err != nil {
		return nil, err
	}

	email, err = ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	return &User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		IsAdmin:   isAdmin,
	}, nil
}
