package service

import (
	"github.com/google/uuid"
)

// Claims is the actor-identity metadata carried by an access token: the user
// id and the admin flag. The policy engine consumes only this decoded pair,
// never the token itself.
type Claims struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the token format from the delivery layer.
type TokenService interface {
	// GenerateToken creates a signed access token carrying the user's
	// identity claims.
	GenerateToken(userID uuid.UUID, isAdmin bool) (string, error)

	// ValidateToken checks a token string and returns its decoded claims.
	ValidateToken(tokenString string) (*Claims, error)
}
