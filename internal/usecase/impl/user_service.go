// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "homestay/internal/delivery/context"
	"homestay/internal/domain/entity"
	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/domain/policy"
	"homestay/internal/domain/repository"
	"homestay/internal/domain/service"
	"homestay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a regular user account from a public sign-up.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Registering user", slog.String("email", input.Email))

	return srv.createUser(ctx, input.FirstName, input.LastName, input.Email, input.Password, false)
}

// CreateUser creates a user on behalf of an admin actor. This is the only
// path that can set the admin flag.
func (srv *userService) CreateUser(ctx context.Context, actor policy.Actor, input *usecase.CreateUserInput) (*entity.User, error) {
	if !actor.IsAdmin {
		return nil, errors.Wrap(domainerrors.ErrAdminRequired, "user creation requires an admin actor")
	}

	srv.log(ctx).Info("Creating user as admin", slog.String("email", input.Email), slog.Bool("isAdmin", input.IsAdmin))

	return srv.createUser(ctx, input.FirstName, input.LastName, input.Email, input.Password, input.IsAdmin)
}

func (srv *userService) createUser(ctx context.Context, firstName, lastName, email, password string, isAdmin bool) (*entity.User, error) {
	user, err := entity.NewUser(firstName, lastName, email, isAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user fields")
	}

	// Hash before the transaction: bcrypt is CPU-bound and must not hold
	// the exclusion scope.
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}
	user.PasswordHash = hash

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, user.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email uniqueness")
		}

		if createErr := userRepo.Create(ctx, user); createErr != nil {
			return errors.Wrap(createErr, "failed to create user")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("User creation failed", slog.String("email", user.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user creation transaction")
	}

	srv.log(ctx).Debug("User created", slog.Any("userID", user.ID))

	return user, nil
}

// GetUser retrieves a user by id.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ListUsers retrieves all users.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser applies a partial update to a user record. Non-admin actors may
// only update their own record and never the restricted fields.
func (srv *userService) UpdateUser(ctx context.Context, actor policy.Actor, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user", slog.Any("userID", id), slog.Any("actorID", actor.ID))

	if decision := policy.DecideUserUpdate(actor, id, input.TouchesRestrictedFields()); !decision.Allowed {
		srv.log(ctx).Warn("User update denied", slog.Any("userID", id), slog.String("reason", decision.Reason))

		return nil, denyError(decision)
	}

	// Hash outside the transaction, same as registration.
	var passwordHash string
	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
		}
		passwordHash = hash
	}

	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := applyUserUpdate(user, input, passwordHash); err != nil {
			return err
		}

		if input.Email != nil && user.Email != "" {
			existing, findErr := userRepo.FindByEmail(ctx, user.Email)
			if findErr == nil && existing.ID != user.ID {
				return errors.Wrap(domainerrors.ErrEmailTaken, "email already registered to another user")
			}
			if findErr != nil && !errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(findErr, "failed to check email uniqueness")
			}
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	return updated, nil
}

// applyUserUpdate re-validates and sets every supplied field. Updates never
// trust prior state; the same validators run as at construction.
func applyUserUpdate(user *entity.User, input *usecase.UpdateUserInput, passwordHash string) error {
	if input.FirstName != nil {
		firstName, err := entity.ValidateFirstName(*input.FirstName)
		if err != nil {
			return errors.Wrap(err, "invalid first name")
		}
		user.FirstName = firstName
	}

	if input.LastName != nil {
		lastName, err := entity.ValidateLastName(*input.LastName)
		if err != nil {
			return errors.Wrap(err, "invalid last name")
		}
		user.LastName = lastName
	}

	if input.Email != nil {
		email, err := entity.ValidateEmail(*input.Email)
		if err != nil {
			return errors.Wrap(err, "invalid email")
		}
		user.Email = email
	}

	if passwordHash != "" {
		user.PasswordHash = passwordHash
	}

	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}

	return nil
}

// DeleteUser removes a user together with every place they own and every
// review they authored, inside one transaction. Admin only.
func (srv *userService) DeleteUser(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	if !actor.IsAdmin {
		return errors.Wrap(domainerrors.ErrAdminRequired, "user deletion requires an admin actor")
	}

	srv.log(ctx).Info("Deleting user", slog.Any("userID", id))

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.UserRepo()
		placeRepo := repos.PlaceRepo()
		reviewRepo := repos.ReviewRepo()

		if _, err := userRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// Authored reviews first, then owned places with their reviews,
		// then the user record itself.
		authored, err := reviewRepo.ListByUser(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to list user reviews")
		}
		for _, review := range authored {
			if err := reviewRepo.Delete(ctx, review.ID); err != nil {
				return errors.Wrap(err, "failed to delete user review")
			}
		}

		places, err := placeRepo.ListByOwner(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to list user places")
		}
		for _, place := range places {
			reviews, err := reviewRepo.ListByPlace(ctx, place.ID)
			if err != nil {
				return errors.Wrap(err, "failed to list place reviews")
			}
			for _, review := range reviews {
				if err := reviewRepo.Delete(ctx, review.ID); err != nil {
					return errors.Wrap(err, "failed to delete place review")
				}
			}
			if err := placeRepo.Delete(ctx, place.ID); err != nil {
				return errors.Wrap(err, "failed to delete user place")
			}
		}

		if err := userRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute user deletion transaction")
	}

	srv.log(ctx).Debug("User deleted", slog.Any("userID", id))

	return nil
}
