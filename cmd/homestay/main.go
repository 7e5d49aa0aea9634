package main

import (
	"context"
	"log/slog"
	"os"

	"homestay/config"
	"homestay/internal/delivery"
	"homestay/internal/delivery/http"
	"homestay/internal/delivery/http/middleware"
	"homestay/internal/delivery/http/router/handler"
	"homestay/internal/domain/repository"
	"homestay/internal/errors"
	"homestay/internal/infra/auth"
	logs "homestay/internal/infra/log"
	"homestay/internal/infra/persistence/memory"
	"homestay/internal/infra/persistence/postgres"
	"homestay/internal/infra/qrcode"
	"homestay/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newPersistence,
		),
	)
}

type persistenceParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type persistenceResult struct {
	fx.Out

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	PlaceRepo   repository.PlaceRepository
	AmenityRepo repository.AmenityRepository
	ReviewRepo  repository.ReviewRepository
}

// newPersistence selects the storage backend from the configured database
// driver. The in-memory store is the default so the server can run without
// a database.
func newPersistence(params persistenceParams) (persistenceResult, error) {
	switch params.Config.Database.Driver {
	case "", "memory":
		store := memory.NewStore()

		return persistenceResult{
			TxManager:   memory.NewTransactionManager(store),
			UserRepo:    store.UserRepo(),
			PlaceRepo:   store.PlaceRepo(),
			AmenityRepo: store.AmenityRepo(),
			ReviewRepo:  store.ReviewRepo(),
		}, nil
	case "postgres":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return persistenceResult{}, err
		}

		return persistenceResult{
			TxManager:   postgres.NewTransactionManager(db),
			UserRepo:    postgres.NewUserRepository(db),
			PlaceRepo:   postgres.NewPlaceRepository(db),
			AmenityRepo: postgres.NewAmenityRepository(db),
			ReviewRepo:  postgres.NewReviewRepository(db),
		}, nil
	default:
		return persistenceResult{}, errors.Errorf("unknown database driver: %q", params.Config.Database.Driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewPlaceService,
			impl.NewAmenityService,
			impl.NewReviewService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewPlaceHandler,
			handler.NewAmenityHandler,
			handler.NewReviewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
