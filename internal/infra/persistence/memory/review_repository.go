package memory

import (
	"context"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"

	"github.com/google/uuid"
)

type reviewRecord = entity.Review

func cloneReview(rv *entity.Review) *entity.Review {
	clone := *rv

	return &clone
}

type reviewRepository struct {
	store *Store
}

func (r *reviewRepository) Create(_ context.Context, review *entity.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	review.ID = assignID(review.ID)
	if _, exists := r.store.reviews[review.ID]; exists {
		return repository.ErrDuplicateID
	}

	review.CreatedAt = now()
	review.UpdatedAt = review.CreatedAt
	r.store.reviews[review.ID] = cloneReview(review)

	return nil
}

func (r *reviewRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	review, ok := r.store.reviews[id]
	if !ok {
		return nil, repository.ErrReviewNotFound
	}

	return cloneReview(review), nil
}

func (r *reviewRepository) FindByUserAndPlace(_ context.Context, userID, placeID uuid.UUID) (*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, review := range r.store.reviews {
		if review.UserID == userID && review.PlaceID == placeID {
			return cloneReview(review), nil
		}
	}

	return nil, repository.ErrReviewNotFound
}

func (r *reviewRepository) List(_ context.Context) ([]*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reviews := make([]*entity.Review, 0, len(r.store.reviews))
	for _, review := range r.store.reviews {
		reviews = append(reviews, cloneReview(review))
	}

	return reviews, nil
}

func (r *reviewRepository) ListByPlace(_ context.Context, placeID uuid.UUID) ([]*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reviews := make([]*entity.Review, 0)
	for _, review := range r.store.reviews {
		if review.PlaceID == placeID {
			reviews = append(reviews, cloneReview(review))
		}
	}

	return reviews, nil
}

func (r *reviewRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reviews := make([]*entity.Review, 0)
	for _, review := range r.store.reviews {
		if review.UserID == userID {
			reviews = append(reviews, cloneReview(review))
		}
	}

	return reviews, nil
}

func (r *reviewRepository) Update(_ context.Context, review *entity.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.reviews[review.ID]
	if !ok {
		return repository.ErrReviewNotFound
	}

	review.CreatedAt = stored.CreatedAt
	review.UpdatedAt = now()
	r.store.reviews[review.ID] = cloneReview(review)

	return nil
}

func (r *reviewRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.reviews[id]; !ok {
		return repository.ErrReviewNotFound
	}
	delete(r.store.reviews, id)

	return nil
}
