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

// amenityService implements the AmenityUsecase interface.
type amenityService struct {
	txManager   repository.TransactionManager
	amenityRepo repository.AmenityRepository
	logger      *slog.Logger
}

// AmenityServiceParams holds dependencies for amenityService, injected by Fx.
type AmenityServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AmenityRepo repository.AmenityRepository
	Logger      *slog.Logger
}

// NewAmenityService is the constructor for amenityService.
func NewAmenityService(params AmenityServiceParams) usecase.AmenityUsecase {
	return &amenityService{
		txManager:   params.TxManager,
		amenityRepo: params.AmenityRepo,
		logger:      params.Logger,
	}
}

func (srv *amenityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAmenity creates an amenity with a case-insensitively unique name.
// Admin only.
func (srv *amenityService) CreateAmenity(ctx context.Context, actor policy.Actor, input *usecase.CreateAmenityInput) (*entity.Amenity, error) {
	if decision := policy.Decide(actor, policy.ActionMutateAmenity, uuid.Nil); !decision.Allowed {
		return nil, denyError(decision)
	}

	srv.log(ctx).Info("Creating amenity", slog.String("name", input.Name))

	amenity, err := entity.NewAmenity(input.Name)
	if err != nil {
		return nil, errors.Wrap(err, "invalid amenity fields")
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		amenityRepo := repos.AmenityRepo()

		_, findErr := amenityRepo.FindByName(ctx, amenity.Name)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrAmenityNameTaken, "amenity name already exists")
		}
		if !errors.Is(findErr, repository.ErrAmenityNotFound) {
			return errors.Wrap(findErr, "failed to check amenity name uniqueness")
		}

		if createErr := amenityRepo.Create(ctx, amenity); createErr != nil {
			return errors.Wrap(createErr, "failed to create amenity")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute amenity creation transaction")
	}

	srv.log(ctx).Debug("Amenity created", slog.Any("amenityID", amenity.ID))

	return amenity, nil
}

// GetAmenity retrieves an amenity by id.
func (srv *amenityService) GetAmenity(ctx context.Context, id uuid.UUID) (*entity.Amenity, error) {
	amenity, err := srv.amenityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAmenityNotFound, "amenity not found")
		}

		return nil, errors.Wrap(err, "failed to find amenity")
	}

	return amenity, nil
}

// ListAmenities retrieves all amenities.
func (srv *amenityService) ListAmenities(ctx context.Context) ([]*entity.Amenity, error) {
	amenities, err := srv.amenityRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list amenities")
	}

	return amenities, nil
}

// UpdateAmenity renames an amenity. The uniqueness re-check excludes the
// amenity itself, so renaming to the unchanged name succeeds. Admin only.
func (srv *amenityService) UpdateAmenity(ctx context.Context, actor policy.Actor, id uuid.UUID, input *usecase.UpdateAmenityInput) (*entity.Amenity, error) {
	if decision := policy.Decide(actor, policy.ActionMutateAmenity, uuid.Nil); !decision.Allowed {
		return nil, denyError(decision)
	}

	srv.log(ctx).Info("Updating amenity", slog.Any("amenityID", id))

	var updated *entity.Amenity

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		amenityRepo := repos.AmenityRepo()

		amenity, err := amenityRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAmenityNotFound) {
				return errors.Wrap(domainerrors.ErrAmenityNotFound, "amenity not found")
			}

			return errors.Wrap(err, "failed to find amenity")
		}

		if input.Name != nil {
			name, err := entity.ValidateAmenityName(*input.Name)
			if err != nil {
				return errors.Wrap(err, "invalid amenity name")
			}

			existing, findErr := amenityRepo.FindByName(ctx, name)
			if findErr == nil && existing.ID != amenity.ID {
				return errors.Wrap(domainerrors.ErrAmenityNameTaken, "amenity name already exists")
			}
			if findErr != nil && !errors.Is(findErr, repository.ErrAmenityNotFound) {
				return errors.Wrap(findErr, "failed to check amenity name uniqueness")
			}

			amenity.Name = name
		}

		if err := amenityRepo.Update(ctx, amenity); err != nil {
			return errors.Wrap(err, "failed to update amenity")
		}
		updated = amenity

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute amenity update transaction")
	}

	return updated, nil
}

// DeleteAmenity removes an amenity and detaches it from every place that
// carries it, inside one transaction. Admin only.
func (srv *amenityService) DeleteAmenity(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	if decision := policy.Decide(actor, policy.ActionMutateAmenity, uuid.Nil); !decision.Allowed {
		return denyError(decision)
	}

	srv.log(ctx).Info("Deleting amenity", slog.Any("amenityID", id))

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		amenityRepo := repos.AmenityRepo()
		placeRepo := repos.PlaceRepo()

		if _, err := amenityRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrAmenityNotFound) {
				return errors.Wrap(domainerrors.ErrAmenityNotFound, "amenity not found")
			}

			return errors.Wrap(err, "failed to find amenity")
		}

		places, err := placeRepo.List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list places for amenity detach")
		}
		for _, place := range places {
			if place.DetachAmenity(id) {
				if err := placeRepo.Update(ctx, place); err != nil {
					return errors.Wrap(err, "failed to detach amenity from place")
				}
			}
		}

		if err := amenityRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete amenity")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete amenity", slog.Any("amenityID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute amenity deletion transaction")
	}

	return nil
}
