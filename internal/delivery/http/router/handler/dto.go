package handler

import (
	"time"

	"homestay/internal/domain/entity"
	"homestay/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public shape of a user. The password hash never
// leaves the service.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

// PlaceResponse is the public shape of a place listing.
type PlaceResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	AmenityIDs  []uuid.UUID `json:"amenity_ids"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func toPlaceResponse(place *entity.Place) *PlaceResponse {
	if place == nil {
		return nil
	}

	amenityIDs := place.AmenityIDs
	if amenityIDs == nil {
		amenityIDs = []uuid.UUID{}
	}

	return &PlaceResponse{
		ID:          place.ID,
		Title:       place.Title,
		Description: place.Description,
		Price:       place.Price,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		OwnerID:     place.OwnerID,
		AmenityIDs:  amenityIDs,
		CreatedAt:   place.CreatedAt,
		UpdatedAt:   place.UpdatedAt,
	}
}

func toPlaceResponses(places []*entity.Place) []*PlaceResponse {
	out := make([]*PlaceResponse, 0, len(places))
	for _, place := range places {
		out = append(out, toPlaceResponse(place))
	}

	return out
}

// NearbyPlaceResponse pairs a place with its distance from the query point.
type NearbyPlaceResponse struct {
	Place      *PlaceResponse `json:"place"`
	DistanceKm float64        `json:"distance_km"`
}

func toNearbyPlaceResponses(matches []*usecase.NearbyPlace) []*NearbyPlaceResponse {
	out := make([]*NearbyPlaceResponse, 0, len(matches))
	for _, match := range matches {
		out = append(out, &NearbyPlaceResponse{
			Place:      toPlaceResponse(match.Place),
			DistanceKm: match.DistanceKm,
		})
	}

	return out
}

// AmenityResponse is the public shape of an amenity.
type AmenityResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toAmenityResponse(amenity *entity.Amenity) *AmenityResponse {
	if amenity == nil {
		return nil
	}

	return &AmenityResponse{
		ID:        amenity.ID,
		Name:      amenity.Name,
		CreatedAt: amenity.CreatedAt,
		UpdatedAt: amenity.UpdatedAt,
	}
}

func toAmenityResponses(amenities []*entity.Amenity) []*AmenityResponse {
	out := make([]*AmenityResponse, 0, len(amenities))
	for _, amenity := range amenities {
		out = append(out, toAmenityResponse(amenity))
	}

	return out
}

// ReviewResponse is the public shape of a review.
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    uuid.UUID `json:"user_id"`
	PlaceID   uuid.UUID `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toReviewResponse(review *entity.Review) *ReviewResponse {
	if review == nil {
		return nil
	}

	return &ReviewResponse{
		ID:        review.ID,
		Text:      review.Text,
		Rating:    review.Rating,
		UserID:    review.UserID,
		PlaceID:   review.PlaceID,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func toReviewResponses(reviews []*entity.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}

	return out
}
