package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. The (user_id, place_id) unique
// index enforces one review per user per place.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Text      string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_place"`
	PlaceID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_place"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
