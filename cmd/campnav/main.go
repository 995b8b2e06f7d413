package main

import (
	"context"
	"log/slog"
	"os"

	"campnav/config"
	"campnav/internal/delivery"
	"campnav/internal/delivery/api"
	"campnav/internal/delivery/api/middleware"
	"campnav/internal/delivery/api/router/handler"
	"campnav/internal/infra/auth"
	logs "campnav/internal/infra/log"
	"campnav/internal/infra/persistence/postgres"
	"campnav/internal/infra/pubsub"
	"campnav/internal/infra/storage"
	"campnav/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewRoomRepository,
			postgres.NewOrderRepository,
			postgres.NewProductRepository,
			postgres.NewAnnouncementRepository,
			postgres.NewHousekeepingRepository,
			postgres.NewRequestRepository,
			postgres.NewReportRepository,
			postgres.NewActivityRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTSessionService,
			storage.NewBlobStorage,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewFileService,
			impl.NewUserService,
			impl.NewRoomService,
			impl.NewOrderService,
			impl.NewProductService,
			impl.NewAnnouncementService,
			impl.NewHousekeepingService,
			impl.NewRequestService,
			impl.NewReportService,
			impl.NewActivityService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewLoginRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewRoomHandler,
			handler.NewOrderHandler,
			handler.NewProductHandler,
			handler.NewAnnouncementHandler,
			handler.NewHousekeepingHandler,
			handler.NewRequestHandler,
			handler.NewReportHandler,
			handler.NewActivityHandler,
			handler.NewFileHandler,
			handler.NewPageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
