package main

import (
	"context"

	"ecommerce/config"
	"ecommerce/internal/delivery/worker"
	workerhandler "ecommerce/internal/delivery/worker/handler"
	logs "ecommerce/internal/infra/log"
	"ecommerce/internal/infra/persistence/postgres"
	"ecommerce/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consume catalog events from a Pub/Sub push subscription",
		Run: func(cmd *cobra.Command, args []string) {
			newWorkerApp().Run()
		},
	}
}

func newWorkerApp() *fx.App {
	return fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewProductRepository,
			impl.NewEventService,
			workerhandler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startServer,
		),
	)
}
