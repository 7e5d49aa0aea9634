package memory

import (
	"context"
	"strings"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"

	"github.com/google/uuid"
)

type amenityRecord = entity.Amenity

func cloneAmenity(a *entity.Amenity) *entity.Amenity {
	clone := *a

	return &clone
}

type amenityRepository struct {
	store *Store
}

func (r *amenityRepository) Create(_ context.Context, amenity *entity.Amenity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	amenity.ID = assignID(amenity.ID)
	if _, exists := r.store.amenities[amenity.ID]; exists {
		return repository.ErrDuplicateID
	}

	amenity.CreatedAt = now()
	amenity.UpdatedAt = amenity.CreatedAt
	r.store.amenities[amenity.ID] = cloneAmenity(amenity)

	return nil
}

func (r *amenityRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Amenity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	amenity, ok := r.store.amenities[id]
	if !ok {
		return nil, repository.ErrAmenityNotFound
	}

	return cloneAmenity(amenity), nil
}

func (r *amenityRepository) FindByName(_ context.Context, name string) (*entity.Amenity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, amenity := range r.store.amenities {
		if strings.EqualFold(amenity.Name, name) {
			return cloneAmenity(amenity), nil
		}
	}

	return nil, repository.ErrAmenityNotFound
}

func (r *amenityRepository) List(_ context.Context) ([]*entity.Amenity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	amenities := make([]*entity.Amenity, 0, len(r.store.amenities))
	for _, amenity := range r.store.amenities {
		amenities = append(amenities, cloneAmenity(amenity))
	}

	return amenities, nil
}

func (r *amenityRepository) Update(_ context.Context, amenity *entity.Amenity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.amenities[amenity.ID]
	if !ok {
		return repository.ErrAmenityNotFound
	}

	amenity.CreatedAt = stored.CreatedAt
	amenity.UpdatedAt = now()
	r.store.amenities[amenity.ID] = cloneAmenity(amenity)

	return nil
}

func (r *amenityRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.amenities[id]; !ok {
		return repository.ErrAmenityNotFound
	}
	delete(r.store.amenities, id)

	return nil
}
