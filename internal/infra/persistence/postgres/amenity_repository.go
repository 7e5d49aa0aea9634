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

// amenityRepository implements the domain.AmenityRepository interface using GORM.
type amenityRepository struct {
	db *gorm.DB
}

// NewAmenityRepository is the constructor for amenityRepository.
func NewAmenityRepository(db *gorm.DB) repository.AmenityRepository {
	return &amenityRepository{db: db}
}

// Create persists a new amenity.
func (repo *amenityRepository) Create(ctx context.Context, amenity *entity.Amenity) error {
	if amenity.ID == uuid.Nil {
		amenity.ID = uuid.New()
	}
	amenityM := fromAmenityDomain(amenity)

	if err := repo.db.WithContext(ctx).Create(amenityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAmenityNameTaken.WrapMessage("amenity name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create amenity")
	}

	amenity.CreatedAt = amenityM.CreatedAt
	amenity.UpdatedAt = amenityM.UpdatedAt

	return nil
}

// FindByID retrieves a single amenity by id.
func (repo *amenityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Amenity, error) {
	var amenityM model.AmenityModel
	if err := repo.db.WithContext(ctx).First(&amenityM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAmenityNotFound
		}

		return nil, errors.Wrap(err, "failed to find amenity by id")
	}

	return toAmenityDomain(&amenityM), nil
}

// FindByName retrieves an amenity by name, case-insensitively.
func (repo *amenityRepository) FindByName(ctx context.Context, name string) (*entity.Amenity, error) {
	var amenityM model.AmenityModel
	if err := repo.db.WithContext(ctx).First(&amenityM, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAmenityNotFound
		}

		return nil, errors.Wrap(err, "failed to find amenity by name")
	}

	return toAmenityDomain(&amenityM), nil
}

// List returns all amenities.
func (repo *amenityRepository) List(ctx context.Context) ([]*entity.Amenity, error) {
	var amenityModels []*model.AmenityModel
	if err := repo.db.WithContext(ctx).Find(&amenityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list amenities")
	}

	amenities := make([]*entity.Amenity, 0, len(amenityModels))
	for _, amenityM := range amenityModels {
		amenities = append(amenities, toAmenityDomain(amenityM))
	}

	return amenities, nil
}

// Update modifies an existing amenity.
func (repo *amenityRepository) Update(ctx context.Context, amenity *entity.Amenity) error {
	result := repo.db.WithContext(ctx).Model(&model.AmenityModel{}).
		Where("id = ?", amenity.ID).
		Update("name", amenity.Name)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrAmenityNameTaken.WrapMessage("amenity name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update amenity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAmenityNotFound
	}

	return nil
}

// Delete removes the amenity.
func (repo *amenityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AmenityModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete amenity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAmenityNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAmenityDomain(data *model.AmenityModel) *entity.Amenity {
	if data == nil {
		return nil
	}

	return &entity.Amenity{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAmenityDomain(data *entity.Amenity) *model.AmenityModel {
	if data == nil {
		return nil
	}

	return &model.AmenityModel{
		ID:   data.ID,
		Name: data.Name,
	}
}
