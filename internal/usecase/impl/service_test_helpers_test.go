package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"homestay/config"
	"homestay/internal/domain/entity"
	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/domain/policy"
	"homestay/internal/domain/service"
	"homestay/internal/infra/auth"
	"homestay/internal/infra/persistence/memory"
	"homestay/internal/infra/qrcode"
	"homestay/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// serviceFixtures wires every service against a shared in-memory store, so
// tests exercise the same check-then-act paths the real backends run.
type serviceFixtures struct {
	store     *memory.Store
	users     usecase.UserUsecase
	auth      usecase.AuthUsecase
	places    usecase.PlaceUsecase
	amenities usecase.AmenityUsecase
	reviews   usecase.ReviewUsecase
	tokens    service.TokenService
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}
	cfg.Search = &config.SearchConfig{DefaultRadiusKm: 10, MaxRadiusKm: 100}

	return cfg
}

func createTestServices(t *testing.T) serviceFixtures {
	t.Helper()

	cfg := newTestConfig()
	logger := newDiscardLogger()
	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	hasher := auth.NewBcryptHasher(cfg)
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return serviceFixtures{
		store: store,
		users: NewUserService(UserServiceParams{
			TxManager: txManager,
			UserRepo:  store.UserRepo(),
			Hasher:    hasher,
			Logger:    logger,
		}),
		auth: NewAuthService(AuthServiceParams{
			UserRepo:     store.UserRepo(),
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       logger,
		}),
		places: NewPlaceService(PlaceServiceParams{
			TxManager:     txManager,
			PlaceRepo:     store.PlaceRepo(),
			QRCodeService: qrcode.NewQRCodeService(cfg),
			Config:        cfg,
			Logger:        logger,
		}),
		amenities: NewAmenityService(AmenityServiceParams{
			TxManager:   txManager,
			AmenityRepo: store.AmenityRepo(),
			Logger:      logger,
		}),
		reviews: NewReviewService(ReviewServiceParams{
			TxManager:  txManager,
			ReviewRepo: store.ReviewRepo(),
			PlaceRepo:  store.PlaceRepo(),
			Logger:     logger,
		}),
		tokens: tokenService,
	}
}

// registerUser creates a regular account through the public registration path.
func registerUser(t *testing.T, fixtures serviceFixtures, email string) *entity.User {
	t.Helper()

	user, err := fixtures.users.Register(context.Background(), &usecase.RegisterUserInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "Password123!",
	})
	require.NoError(t, err)

	return user
}

// seedAdmin inserts an admin account directly into the store. Admin creation
// normally requires an existing admin actor, so tests bootstrap one here.
func seedAdmin(t *testing.T, fixtures serviceFixtures, email string) *entity.User {
	t.Helper()

	admin, err := entity.NewUser("Admin", "User", email, true)
	require.NoError(t, err)
	admin.PasswordHash = "seeded-hash"
	require.NoError(t, fixtures.store.UserRepo().Create(context.Background(), admin))

	return admin
}

func actorFor(user *entity.User) policy.Actor {
	return policy.Actor{ID: user.ID, IsAdmin: user.IsAdmin}
}

func createPlace(t *testing.T, fixtures serviceFixtures, owner *entity.User, title string, latitude, longitude float64) *entity.Place {
	t.Helper()

	place, err := fixtures.places.CreatePlace(context.Background(), actorFor(owner), &usecase.CreatePlaceInput{
		Title:       title,
		Description: "A cozy stay",
		Price:       120,
		Latitude:    latitude,
		Longitude:   longitude,
	})
	require.NoError(t, err)

	return place
}

// assertErrorCode unwraps to the AppError and checks its business code.
// Validation errors carry per-field details, so they never compare equal to
// the sentinel and must be matched by code.
func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}
