// Package router wires the REST and GraphQL routes onto echo.
package router

import (
	"deliveryzone/config"
	"deliveryzone/internal/delivery/graphql"
	"deliveryzone/internal/delivery/http/middleware"
	"deliveryzone/internal/delivery/http/router/handler"
	"deliveryzone/internal/domain/constants"
	"deliveryzone/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeliveryZoneHandler *handler.DeliveryZoneHandler
	ZoneHandler         *handler.ZoneHandler
	DiscoveryHandler    *handler.DiscoveryHandler
	RestaurantHandler   *handler.RestaurantHandler
	GraphQLHandler      *graphql.Handler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Prometheus
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	deliveryZoneHandler *handler.DeliveryZoneHandler
	zoneHandler         *handler.ZoneHandler
	discoveryHandler    *handler.DiscoveryHandler
	restaurantHandler   *handler.RestaurantHandler
	graphQLHandler      *graphql.Handler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Prometheus
	config              *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		deliveryZoneHandler: params.DeliveryZoneHandler,
		zoneHandler:         params.ZoneHandler,
		discoveryHandler:    params.DiscoveryHandler,
		restaurantHandler:   params.RestaurantHandler,
		graphQLHandler:      params.GraphQLHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	apiV1 := e.Group("/api/v1")

	// Public reads
	apiV1.GET("/zones", r.zoneHandler.ListZones)
	apiV1.GET("/restaurants/nearby", r.discoveryHandler.Nearby)
	apiV1.GET("/restaurants/:id/delivery-zone", r.deliveryZoneHandler.GetDeliveryZone)

	// Bound edits need an admin or vendor token
	apiV1.PUT("/restaurants/:id/delivery-zone", r.deliveryZoneHandler.UpdateDeliveryZone,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(constants.RoleAdmin, constants.RoleVendor),
	)

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		adminGroup.POST("/zones", r.zoneHandler.CreateZone)
		adminGroup.PUT("/zones/:id", r.zoneHandler.UpdateZone)
		adminGroup.PATCH("/zones/:id/active", r.zoneHandler.SetZoneActive)
		adminGroup.POST("/restaurants", r.restaurantHandler.CreateRestaurant)
	}

	if r.config.GraphQL.Enabled {
		e.POST("/graphql", r.graphQLHandler.Serve, r.authMiddleware.OptionalAuthenticate)
	}
}
