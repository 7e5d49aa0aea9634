package impl

import (
	"context"
	"log/slog"

	deliverycontext "homestay/internal/delivery/context"
	"homestay/internal/domain/entity"
	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/domain/policy"
	"homestay/internal/domain/repository"
	"homestay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	placeRepo  repository.PlaceRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	PlaceRepo  repository.PlaceRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		placeRepo:  params.PlaceRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview records the actor's review of a place. Owners cannot review
// their own places, and each user gets at most one review per place; both
// checks run inside the transaction that inserts the review.
func (srv *reviewService) CreateReview(ctx context.Context, actor policy.Actor, input *usecase.CreateReviewInput) (*entity.Review, error) {
	srv.log(ctx).Info("Creating review", slog.Any("placeID", input.PlaceID), slog.Any("userID", actor.ID))

	review, err := entity.NewReview(input.Text, input.Rating, actor.ID, input.PlaceID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid review fields")
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.UserRepo().FindByID(ctx, actor.ID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "review author does not exist")
			}

			return errors.Wrap(err, "failed to find review author")
		}

		place, err := repos.PlaceRepo().FindByID(ctx, input.PlaceID)
		if err != nil {
			if errors.Is(err, repository.ErrPlaceNotFound) {
				return errors.Wrap(domainerrors.ErrPlaceNotFound, "reviewed place does not exist")
			}

			return errors.Wrap(err, "failed to find reviewed place")
		}

		if place.OwnerID == actor.ID {
			return errors.Wrap(domainerrors.ErrSelfReview, "owners cannot review their own places")
		}

		if _, err := repos.ReviewRepo().FindByUserAndPlace(ctx, actor.ID, input.PlaceID); err == nil {
			return errors.Wrap(domainerrors.ErrAlreadyReviewed, "user has already reviewed this place")
		} else if !errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(err, "failed to check for existing review")
		}

		if err := repos.ReviewRepo().Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Review creation failed", slog.Any("placeID", input.PlaceID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute review creation transaction")
	}

	return review, nil
}

// GetReview retrieves a review by id.
func (srv *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

// ListReviews retrieves all reviews.
func (srv *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// ListReviewsByPlace retrieves all reviews for one place. A missing place is
// an error; a place with no reviews returns an empty slice.
func (srv *reviewService) ListReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*entity.Review, error) {
	if _, err := srv.placeRepo.FindByID(ctx, placeID); err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlaceNotFound, "place not found")
		}

		return nil, errors.Wrap(err, "failed to find place")
	}

	reviews, err := srv.reviewRepo.ListByPlace(ctx, placeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list place reviews")
	}

	return reviews, nil
}

// ListReviewsByUser retrieves all reviews written by one user.
func (srv *reviewService) ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user reviews")
	}

	return reviews, nil
}

// UpdateReview applies a partial update to a review. Author or admin only.
// The review's author and place bindings never change.
func (srv *reviewService) UpdateReview(ctx context.Context, actor policy.Actor, id uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	srv.log(ctx).Info("Updating review", slog.Any("reviewID", id), slog.Any("actorID", actor.ID))

	var updated *entity.Review

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		reviewRepo := repos.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to find review")
		}

		if decision := policy.Decide(actor, policy.ActionMutateReview, review.UserID); !decision.Allowed {
			srv.log(ctx).Warn("Review update denied", slog.Any("reviewID", id), slog.String("reason", decision.Reason))

			return denyError(decision)
		}

		if input.Text != nil {
			text, err := entity.ValidateReviewText(*input.Text)
			if err != nil {
				return errors.Wrap(err, "invalid review text")
			}
			review.Text = text
		}

		if input.Rating != nil {
			rating, err := entity.ValidateRating(*input.Rating)
			if err != nil {
				return errors.Wrap(err, "invalid review rating")
			}
			review.Rating = rating
		}

		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}
		updated = review

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute review update transaction")
	}

	return updated, nil
}

// DeleteReview removes a review. Author or admin only.
func (srv *reviewService) DeleteReview(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting review", slog.Any("reviewID", id), slog.Any("actorID", actor.ID))

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		reviewRepo := repos.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to find review")
		}

		if decision := policy.Decide(actor, policy.ActionMutateReview, review.UserID); !decision.Allowed {
			return denyError(decision)
		}

		if err := reviewRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete review", slog.Any("reviewID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute review deletion transaction")
	}

	return nil
}
