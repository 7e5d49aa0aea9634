package entity

import (
	"regexp"
	"strings"
	"unicode/utf8"

	domainerrors "homestay/internal/domain/errors"
)

// Field length limits, mirrored by the database column definitions.
const (
	MaxNameLength        = 50
	MaxPlaceTitleLength  = 100
	MaxAmenityNameLength = 50
	MinRating            = 1
	MaxRating            = 5
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validators run both at construction and at every update that touches the
// field. Each returns the normalized value or a validation error carrying a
// human-readable reason.

// ValidateFirstName checks that the first name is non-empty and within limits.
func ValidateFirstName(firstName string) (string, error) {
	if firstName == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("First name is required")
	}
	if utf8.RuneCountInString(firstName) > MaxNameLength {
		return "", domainerrors.ErrValidationFailed.WithDetails("First name must not exceed 50 characters")
	}

	return firstName, nil
}

// ValidateLastName checks that the last name is non-empty and within limits.
func ValidateLastName(lastName string) (string, error) {
	if lastName == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("Last name is required")
	}
	if utf8.RuneCountInString(lastName) > MaxNameLength {
		return "", domainerrors.ErrValidationFailed.WithDetails("Last name must not exceed 50 characters")
	}

	return lastName, nil
}

// ValidateEmail checks that the email is non-empty and looks like an address.
// The address is lowercased so the uniqueness check is case-insensitive.
func ValidateEmail(email string) (string, error) {
	if email == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("Email is required")
	}
	if !emailPattern.MatchString(email) {
		return "", domainerrors.ErrValidationFailed.WithDetails("Invalid email format")
	}

	return strings.ToLower(email), nil
}

// ValidatePlaceTitle checks that the title is non-empty and within limits.
func ValidatePlaceTitle(title string) (string, error) {
	if title == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("Title is required")
	}
	if utf8.RuneCountInString(title) > MaxPlaceTitleLength {
		return "", domainerrors.ErrValidationFailed.WithDetails("Title must not exceed 100 characters")
	}

	return title, nil
}

// ValidatePrice checks that the price is strictly positive.
func ValidatePrice(price float64) (float64, error) {
	if price <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("Price must be a positive value")
	}

	return price, nil
}

// ValidateLatitude checks that the latitude is within -90..90 degrees.
func ValidateLatitude(latitude float64) (float64, error) {
	if latitude < -90.0 || latitude > 90.0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("Latitude must be between -90.0 and 90.0")
	}

	return latitude, nil
}

// ValidateLongitude checks that the longitude is within -180..180 degrees.
func ValidateLongitude(longitude float64) (float64, error) {
	if longitude < -180.0 || longitude > 180.0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("Longitude must be between -180.0 and 180.0")
	}

	return longitude, nil
}

// ValidateReviewText checks that the review text is non-empty.
func ValidateReviewText(text string) (string, error) {
	if text == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("Review text is required")
	}

	return text, nil
}

// ValidateRating checks that the rating is an integer between 1 and 5.
func ValidateRating(rating int) (int, error) {
	if rating < MinRating || rating > MaxRating {
		return 0, domainerrors.ErrValidationFailed.WithDetails("Rating must be between 1 and 5")
	}

	return rating, nil
}

// ValidateAmenityName checks that the amenity name is non-empty and within limits.
func ValidateAmenityName(name string) (string, error) {
	if name == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("Amenity name is required")
	}
	if utf8.RuneCountInString(name) > MaxAmenityNameLength {
		return "", domainerrors.ErrValidationFailed.WithDetails("Amenity name must not exceed 50 characters")
	}

	return name, nil
}
