package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/delivery/http"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/auth"
	"bazaar/internal/infra/cache"
	"bazaar/internal/infra/imageclient"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/persistence/postgres"
	"bazaar/internal/infra/pubsub"
	"bazaar/internal/infra/spatial"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVendorProfileRepository,
			postgres.NewCustomerProfileRepository,
			postgres.NewServiceRepository,
			postgres.NewOperatingHoursRepository,
			postgres.NewBusinessLocationRepository,
			postgres.NewSocialMediaRepository,
			postgres.NewSearchPreferenceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			cache.New,
			spatial.New,
			imageclient.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewViewComposer,
			impl.NewUserService,
			impl.NewVendorService,
			impl.NewCustomerService,
			newSearchService,
		),
	)
}

// newSearchService wires the search usecase with its configured timeouts
func newSearchService(
	cfg *config.Config,
	spatialIndex service.SpatialIndex,
	locationRepo repository.BusinessLocationRepository,
	vendorRepo repository.VendorProfileRepository,
	composer *impl.ViewComposer,
	queryCache service.QueryCache,
	logger *slog.Logger,
) usecase.SearchUsecase {
	var queryTimeout time.Duration
	if cfg.Search != nil {
		queryTimeout = cfg.Search.QueryTimeout
	}

	var cacheTTL time.Duration
	if cfg.Redis != nil {
		cacheTTL = cfg.Redis.QueryTTL
	}

	return impl.NewSearchService(
		spatialIndex,
		locationRepo,
		vendorRepo,
		composer,
		queryCache,
		queryTimeout,
		cacheTTL,
		logger,
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewVendorHandler,
			handler.NewCustomerHandler,
			handler.NewSearchHandler,
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
