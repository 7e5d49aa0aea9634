package impl

import (
	"context"
	"log/slog"
	"sort"

	"homestay/config"
	deliverycontext "homestay/internal/delivery/context"
	"homestay/internal/domain/entity"
	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/domain/policy"
	"homestay/internal/domain/repository"
	"homestay/internal/domain/service"
	"homestay/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fallbackDefaultRadiusKm = 10.0
	fallbackMaxRadiusKm     = 100.0
)

// placeService implements the PlaceUsecase interface.
type placeService struct {
	txManager       repository.TransactionManager
	placeRepo       repository.PlaceRepository
	qrcodeService   service.QRCodeService
	defaultRadiusKm float64
	maxRadiusKm     float64
	logger          *slog.Logger
}

// PlaceServiceParams holds dependencies for placeService, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PlaceRepo     repository.PlaceRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPlaceService is the constructor for placeService.
func NewPlaceService(params PlaceServiceParams) usecase.PlaceUsecase {
	defaultRadius := fallbackDefaultRadiusKm
	maxRadius := fallbackMaxRadiusKm
	if params.Config != nil && params.Config.Search != nil {
		if params.Config.Search.DefaultRadiusKm > 0 {
			defaultRadius = params.Config.Search.DefaultRadiusKm
		}
		if params.Config.Search.MaxRadiusKm > 0 {
			maxRadius = params.Config.Search.MaxRadiusKm
		}
	}

	return &placeService{
		txManager:       params.TxManager,
		placeRepo:       params.PlaceRepo,
		qrcodeService:   params.QRCodeService,
		defaultRadiusKm: defaultRadius,
		maxRadiusKm:     maxRadius,
		logger:          params.Logger,
	}
}

func (srv *placeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePlace creates a listing. The acting user becomes the owner unless an
// admin names another owner; either way the owner must exist, and every
// supplied amenity id must resolve.
func (srv *placeService) CreatePlace(ctx context.Context, actor policy.Actor, input *usecase.CreatePlaceInput) (*entity.Place, error) {
	ownerID := actor.ID
	if input.OwnerID != nil && *input.OwnerID != actor.ID {
		if !actor.IsAdmin {
			return nil, errors.Wrap(domainerrors.ErrUnauthorizedAction, "only admins may create places for another owner")
		}
		ownerID = *input.OwnerID
	}

	srv.log(ctx).Info("Creating place", slog.String("title", input.Title), slog.Any("ownerID", ownerID))

	place, err := entity.NewPlace(input.Title, input.Description, input.Price, input.Latitude, input.Longitude, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid place fields")
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.UserRepo().FindByID(ctx, ownerID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrOwnerNotFound, "place owner does not exist")
			}

			return errors.Wrap(err, "failed to find place owner")
		}

		for _, amenityID := range input.AmenityIDs {
			if _, err := repos.AmenityRepo().FindByID(ctx, amenityID); err != nil {
				if errors.Is(err, repository.ErrAmenityNotFound) {
					return errors.Wrap(domainerrors.ErrAmenityNotFound, "amenity does not exist")
				}

				return errors.Wrap(err, "failed to find amenity")
			}
			place.AttachAmenity(amenityID)
		}

		if err := repos.PlaceRepo().Create(ctx, place); err != nil {
			return errors.Wrap(err, "failed to create place")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Place creation failed", slog.String("title", input.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute place creation transaction")
	}

	srv.log(ctx).Debug("Place created", slog.Any("placeID", place.ID))

	return place, nil
}

// GetPlace retrieves a place by id.
func (srv *placeService) GetPlace(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	place, err := srv.placeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlaceNotFound, "place not found")
		}

		return nil, errors.Wrap(err, "failed to find place")
	}

	return place, nil
}

// ListPlaces retrieves all places.
func (srv *placeService) ListPlaces(ctx context.Context) ([]*entity.Place, error) {
	places, err := srv.placeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list places")
	}

	return places, nil
}

// ListPlacesByOwner retrieves all places owned by a user.
func (srv *placeService) ListPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Place, error) {
	places, err := srv.placeRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list places by owner")
	}

	return places, nil
}

// SearchNearby returns places within the given radius of a point, closest
// first. The radius falls back to the configured default and is clamped to
// the configured maximum.
func (srv *placeService) SearchNearby(ctx context.Context, input *usecase.NearbySearchInput) ([]*usecase.NearbyPlace, error) {
	latitude, err := entity.ValidateLatitude(input.Latitude)
	if err != nil {
		return nil, errors.Wrap(err, "invalid search latitude")
	}
	longitude, err := entity.ValidateLongitude(input.Longitude)
	if err != nil {
		return nil, errors.Wrap(err, "invalid search longitude")
	}

	radiusKm := input.RadiusKm
	if radiusKm <= 0 {
		radiusKm = srv.defaultRadiusKm
	}
	if radiusKm > srv.maxRadiusKm {
		radiusKm = srv.maxRadiusKm
	}

	places, err := srv.placeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list places for nearby search")
	}

	origin := orb.Point{longitude, latitude}
	nearby := make([]*usecase.NearbyPlace, 0, len(places))
	for _, place := range places {
		distanceKm := geo.Distance(origin, orb.Point{place.Longitude, place.Latitude}) / 1000.0
		if distanceKm <= radiusKm {
			nearby = append(nearby, &usecase.NearbyPlace{Place: place, DistanceKm: distanceKm})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	srv.log(ctx).Debug("Nearby search completed",
		slog.Float64("radiusKm", radiusKm),
		slog.Int("matches", len(nearby)),
	)

	return nearby, nil
}

// UpdatePlace applies a partial update to a place. Owner or admin only;
// owner reassignment is admin only and the new owner must exist.
func (srv *placeService) UpdatePlace(ctx context.Context, actor policy.Actor, id uuid.UUID, input *usecase.UpdatePlaceInput) (*entity.Place, error) {
	srv.log(ctx).Info("Updating place", slog.Any("placeID", id), slog.Any("actorID", actor.ID))

	var updated *entity.Place

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		placeRepo := repos.PlaceRepo()

		place, err := placeRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPlaceNotFound) {
				return errors.Wrap(domainerrors.ErrPlaceNotFound, "place not found")
			}

			return errors.Wrap(err, "failed to find place")
		}

		if decision := policy.Decide(actor, policy.ActionMutatePlace, place.OwnerID); !decision.Allowed {
			srv.log(ctx).Warn("Place update denied", slog.Any("placeID", id), slog.String("reason", decision.Reason))

			return denyError(decision)
		}

		if input.OwnerID != nil && *input.OwnerID != place.OwnerID {
			if !actor.IsAdmin {
				return errors.Wrap(domainerrors.ErrRestrictedField, "only admins may reassign place ownership")
			}
			if _, err := repos.UserRepo().FindByID(ctx, *input.OwnerID); err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return errors.Wrap(domainerrors.ErrOwnerNotFound, "new place owner does not exist")
				}

				return errors.Wrap(err, "failed to find new place owner")
			}
			place.OwnerID = *input.OwnerID
		}

		if err := applyPlaceUpdate(place, input); err != nil {
			return err
		}

		if err := placeRepo.Update(ctx, place); err != nil {
			return errors.Wrap(err, "failed to update place")
		}
		updated = place

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute place update transaction")
	}

	return updated, nil
}

// applyPlaceUpdate re-validates and sets every supplied field.
func applyPlaceUpdate(place *entity.Place, input *usecase.UpdatePlaceInput) error {
	if input.Title != nil {
		title, err := entity.ValidatePlaceTitle(*input.Title)
		if err != nil {
			return errors.Wrap(err, "invalid place title")
		}
		place.Title = title
	}

	if input.Description != nil {
		place.Description = *input.Description
	}

	if input.Price != nil {
		price, err := entity.ValidatePrice(*input.Price)
		if err != nil {
			return errors.Wrap(err, "invalid place price")
		}
		place.Price = price
	}

	if input.Latitude != nil {
		latitude, err := entity.ValidateLatitude(*input.Latitude)
		if err != nil {
			return errors.Wrap(err, "invalid place latitude")
		}
		place.Latitude = latitude
	}

	if input.Longitude != nil {
		longitude, err := entity.ValidateLongitude(*input.Longitude)
		if err != nil {
			return errors.Wrap(err, "invalid place longitude")
		}
		place.Longitude = longitude
	}

	return nil
}

// DeletePlace removes a place and cascades deletion of its reviews inside
// one transaction, so no review is left pointing at a dead place.
func (srv *placeService) DeletePlace(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting place", slog.Any("placeID", id), slog.Any("actorID", actor.ID))

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		placeRepo := repos.PlaceRepo()
		reviewRepo := repos.ReviewRepo()

		place, err := placeRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPlaceNotFound) {
				return errors.Wrap(domainerrors.ErrPlaceNotFound, "place not found")
			}

			return errors.Wrap(err, "failed to find place")
		}

		if decision := policy.Decide(actor, policy.ActionMutatePlace, place.OwnerID); !decision.Allowed {
			return denyError(decision)
		}

		reviews, err := reviewRepo.ListByPlace(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to list place reviews")
		}
		for _, review := range reviews {
			if err := reviewRepo.Delete(ctx, review.ID); err != nil {
				return errors.Wrap(err, "failed to delete place review")
			}
		}

		if err := placeRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete place")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete place", slog.Any("placeID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute place deletion transaction")
	}

	return nil
}

// AttachAmenity adds an amenity to a place's set. Attaching an amenity that
// is already present succeeds without change.
func (srv *placeService) AttachAmenity(ctx context.Context, actor policy.Actor, placeID, amenityID uuid.UUID) (*entity.Place, error) {
	srv.log(ctx).Info("Attaching amenity", slog.Any("placeID", placeID), slog.Any("amenityID", amenityID))

	var updated *entity.Place

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		place, err := srv.loadOwnedPlace(ctx, repos, actor, placeID)
		if err != nil {
			return err
		}

		if _, err := repos.AmenityRepo().FindByID(ctx, amenityID); err != nil {
			if errors.Is(err, repository.ErrAmenityNotFound) {
				return errors.Wrap(domainerrors.ErrAmenityNotFound, "amenity not found")
			}

			return errors.Wrap(err, "failed to find amenity")
		}

		place.AttachAmenity(amenityID)
		if err := repos.PlaceRepo().Update(ctx, place); err != nil {
			return errors.Wrap(err, "failed to update place amenities")
		}
		updated = place

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute amenity attach transaction")
	}

	return updated, nil
}

// DetachAmenity removes an amenity from a place's set.
func (srv *placeService) DetachAmenity(ctx context.Context, actor policy.Actor, placeID, amenityID uuid.UUID) (*entity.Place, error) {
	srv.log(ctx).Info("Detaching amenity", slog.Any("placeID", placeID), slog.Any("amenityID", amenityID))

	var updated *entity.Place

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		place, err := srv.loadOwnedPlace(ctx, repos, actor, placeID)
		if err != nil {
			return err
		}

		if !place.DetachAmenity(amenityID) {
			return errors.Wrap(domainerrors.ErrAmenityNotFound, "amenity not attached to this place")
		}

		if err := repos.PlaceRepo().Update(ctx, place); err != nil {
			return errors.Wrap(err, "failed to update place amenities")
		}
		updated = place

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute amenity detach transaction")
	}

	return updated, nil
}

// loadOwnedPlace fetches a place and checks the actor may mutate it.
func (srv *placeService) loadOwnedPlace(ctx context.Context, repos repository.RepositoryFactory, actor policy.Actor, placeID uuid.UUID) (*entity.Place, error) {
	place, err := repos.PlaceRepo().FindByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlaceNotFound, "place not found")
		}

		return nil, errors.Wrap(err, "failed to find place")
	}

	if decision := policy.Decide(actor, policy.ActionMutatePlace, place.OwnerID); !decision.Allowed {
		return nil, denyError(decision)
	}

	return place, nil
}

// PlaceQR renders a PNG QR code linking to the place's public listing.
func (srv *placeService) PlaceQR(ctx context.Context, placeID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetPlace(ctx, placeID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GeneratePlaceQR(placeID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate place QR", slog.Any("placeID", placeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate place QR code")
	}

	return png, nil
}
