package memory

import (
	"context"
	"slices"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"

	"github.com/google/uuid"
)

type placeRecord = entity.Place

func clonePlace(p *entity.Place) *entity.Place {
	clone := *p
	clone.AmenityIDs = slices.Clone(p.AmenityIDs)

	return &clone
}

type placeRepository struct {
	store *Store
}

func (r *placeRepository) Create(_ context.Context, place *entity.Place) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	place.ID = assignID(place.ID)
	if _, exists := r.store.places[place.ID]; exists {
		return repository.ErrDuplicateID
	}

	place.CreatedAt = now()
	place.UpdatedAt = place.CreatedAt
	r.store.places[place.ID] = clonePlace(place)

	return nil
}

func (r *placeRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Place, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	place, ok := r.store.places[id]
	if !ok {
		return nil, repository.ErrPlaceNotFound
	}

	return clonePlace(place), nil
}

func (r *placeRepository) List(_ context.Context) ([]*entity.Place, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	places := make([]*entity.Place, 0, len(r.store.places))
	for _, place := range r.store.places {
		places = append(places, clonePlace(place))
	}

	return places, nil
}

func (r *placeRepository) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Place, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	places := make([]*entity.Place, 0)
	for _, place := range r.store.places {
		if place.OwnerID == ownerID {
			places = append(places, clonePlace(place))
		}
	}

	return places, nil
}

func (r *placeRepository) Update(_ context.Context, place *entity.Place) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.places[place.ID]
	if !ok {
		return repository.ErrPlaceNotFound
	}

	place.CreatedAt = stored.CreatedAt
	place.UpdatedAt = now()
	r.store.places[place.ID] = clonePlace(place)

	return nil
}

func (r *placeRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.places[id]; !ok {
		return repository.ErrPlaceNotFound
	}
	delete(r.store.places, id)

	return nil
}
