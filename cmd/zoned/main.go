package main

import (
	"context"
	"log/slog"
	"os"

	"deliveryzone/config"
	"deliveryzone/internal/delivery"
	"deliveryzone/internal/delivery/graphql"
	"deliveryzone/internal/delivery/http"
	"deliveryzone/internal/delivery/http/middleware"
	"deliveryzone/internal/delivery/http/router/handler"
	"deliveryzone/internal/infra/auth"
	"deliveryzone/internal/infra/cache"
	logs "deliveryzone/internal/infra/log"
	"deliveryzone/internal/infra/metrics"
	"deliveryzone/internal/infra/persistence"
	"deliveryzone/internal/infra/pubsub"
	"deliveryzone/internal/usecase/impl"

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
		),
		persistence.Module,
		cache.Module,
		pubsub.Module,
		metrics.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTVerifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeliveryBoundService,
			impl.NewZoneService,
			impl.NewDiscoveryService,
			impl.NewRestaurantService,
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
			handler.NewDeliveryZoneHandler,
			handler.NewZoneHandler,
			handler.NewDiscoveryHandler,
			handler.NewRestaurantHandler,
			graphql.NewHandler,
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
