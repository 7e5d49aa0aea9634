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

// reviewRepository implements the domain.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyReviewed.WrapMessage("user has already reviewed this place")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPlaceNotFound.WrapMessage("reviewed place does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a single review by id.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := repo.db.WithContext(ctx).First(&reviewM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByUserAndPlace retrieves the review one user wrote for one place.
func (repo *reviewRepository) FindByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).First(&reviewM, "user_id = ? AND place_id = ?", userID, placeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by user and place")
	}

	return toReviewDomain(&reviewM), nil
}

// List returns all reviews.
func (repo *reviewRepository) List(ctx context.Context) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	if err := repo.db.WithContext(ctx).Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// ListByPlace returns all reviews for one place.
func (repo *reviewRepository) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	if err := repo.db.WithContext(ctx).Find(&reviewModels, "place_id = ?", placeID).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by place")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// ListByUser returns all reviews written by one user.
func (repo *reviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	if err := repo.db.WithContext(ctx).Find(&reviewModels, "user_id = ?", userID).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by user")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// Update modifies an existing review's text and rating.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"text":   review.Text,
			"rating": review.Rating,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes the review.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ReviewModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		Text:      data.Text,
		Rating:    data.Rating,
		UserID:    data.UserID,
		PlaceID:   data.PlaceID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toReviewDomainSlice(models []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(models))
	for _, reviewM := range models {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:      data.ID,
		Text:    data.Text,
		Rating:  data.Rating,
		UserID:  data.UserID,
		PlaceID: data.PlaceID,
	}
}
