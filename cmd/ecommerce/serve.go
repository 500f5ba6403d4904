package main

import (
	"context"
	"log/slog"
	"os"

	"ecommerce/config"
	"ecommerce/internal/delivery"
	"ecommerce/internal/delivery/http"
	"ecommerce/internal/delivery/http/middleware"
	"ecommerce/internal/delivery/http/router/handler"
	"ecommerce/internal/domain/service"
	"ecommerce/internal/infra/auth"
	logs "ecommerce/internal/infra/log"
	"ecommerce/internal/infra/metrics"
	"ecommerce/internal/infra/persistence/postgres"
	"ecommerce/internal/infra/pubsub"
	"ecommerce/internal/infra/qrcode"
	"ecommerce/internal/infra/storage"
	"ecommerce/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the catalog HTTP API",
		Run: func(cmd *cobra.Command, args []string) {
			newApp().Run()
		},
	}
}

func newApp() *fx.App {
	return fx.New(
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
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRoleRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.NewImageStorage,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeService,
			newCatalogMetrics,
		),
	)
}

// newCatalogMetrics exposes the shared registry to the usecases.
func newCatalogMetrics(m *metrics.Metrics) service.CatalogMetrics {
	return m
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewCategoryService,
			impl.NewProductService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCategoryHandler,
			handler.NewProductHandler,
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
