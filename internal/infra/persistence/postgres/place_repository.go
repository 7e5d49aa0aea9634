package postgres

import (
	"context"

	"homestay/internal/domain/entity"
	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/domain/repository"
	"homestay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// placeRepository implements the domain.PlaceRepository interface using GORM.
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{db: db}
}

// Create persists a new place and its amenity links.
func (repo *placeRepository) Create(ctx context.Context, place *entity.Place) error {
	if place.ID == uuid.Nil {
		place.ID = uuid.New()
	}
	placeM := fromPlaceDomain(place)

	if err := repo.db.WithContext(ctx).Create(placeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOwnerNotFound.WrapMessage("place owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create place")
	}

	place.CreatedAt = placeM.CreatedAt
	place.UpdatedAt = placeM.UpdatedAt

	return nil
}

// FindByID retrieves a single place with its amenity links.
func (repo *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	var placeM model.PlaceModel
	if err := repo.db.WithContext(ctx).Preload("Amenities").First(&placeM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find place by id")
	}

	return toPlaceDomain(&placeM), nil
}

// List returns all places with their amenity links.
func (repo *placeRepository) List(ctx context.Context) ([]*entity.Place, error) {
	var placeModels []*model.PlaceModel
	if err := repo.db.WithContext(ctx).Preload("Amenities").Find(&placeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list places")
	}

	places := make([]*entity.Place, 0, len(placeModels))
	for _, placeM := range placeModels {
		places = append(places, toPlaceDomain(placeM))
	}

	return places, nil
}

// ListByOwner returns all places owned by one user.
func (repo *placeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Place, error) {
	var placeModels []*model.PlaceModel
	if err := repo.db.WithContext(ctx).Preload("Amenities").Find(&placeModels, "owner_id = ?", ownerID).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list places by owner")
	}

	places := make([]*entity.Place, 0, len(placeModels))
	for _, placeM := range placeModels {
		places = append(places, toPlaceDomain(placeM))
	}

	return places, nil
}

// Update modifies an existing place and replaces its amenity links.
func (repo *placeRepository) Update(ctx context.Context, place *entity.Place) error {
	placeM := fromPlaceDomain(place)

	result := repo.db.WithContext(ctx).Model(&model.PlaceModel{}).
		Where("id = ?", place.ID).
		Updates(map[string]any{
			"title":       placeM.Title,
			"description": placeM.Description,
			"price":       placeM.Price,
			"latitude":    placeM.Latitude,
			"longitude":   placeM.Longitude,
			"owner_id":    placeM.OwnerID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrOwnerNotFound.WrapMessage("place owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update place")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaceNotFound
	}

	// Replace the amenity association set with the entity's current one.
	target := &model.PlaceModel{ID: place.ID}
	if err := repo.db.WithContext(ctx).Model(target).Association("Amenities").Replace(placeM.Amenities); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update place amenities")
	}

	return nil
}

// Delete removes the place and its amenity links.
func (repo *placeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	target := &model.PlaceModel{ID: id}
	if err := repo.db.WithContext(ctx).Model(target).Association("Amenities").Clear(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear place amenities")
	}

	result := repo.db.WithContext(ctx).Delete(&model.PlaceModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete place")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPlaceDomain(data *model.PlaceModel) *entity.Place {
	if data == nil {
		return nil
	}

	amenityIDs := make([]uuid.UUID, 0, len(data.Amenities))
	for _, amenity := range data.Amenities {
		amenityIDs = append(amenityIDs, amenity.ID)
	}

	return &entity.Place{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		OwnerID:     data.OwnerID,
		AmenityIDs:  amenityIDs,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromPlaceDomain(data *entity.Place) *model.PlaceModel {
	if data == nil {
		return nil
	}

	amenities := make([]*model.AmenityModel, 0, len(data.AmenityIDs))
	for _, amenityID := range data.AmenityIDs {
		amenities = append(amenities, &model.AmenityModel{ID: amenityID})
	}

	return &model.PlaceModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		OwnerID:     data.OwnerID,
		Amenities:   amenities,
	}
}
