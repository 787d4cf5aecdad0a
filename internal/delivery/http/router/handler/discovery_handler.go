package handler

import (
	"net/http"

	"deliveryzone/internal/delivery/http/response"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscoveryHandler answers which restaurants deliver to a point.
type DiscoveryHandler struct {
	discoveryUC usecase.DiscoveryUsecase
}

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler.
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	return &DiscoveryHandler{discoveryUC: params.DiscoveryUC}
}

// Nearby handles GET /restaurants/nearby?lat=&lng=&shopType=
func (h *DiscoveryHandler) Nearby(c echo.Context) error {
	var (
		point    geometry.LatLng
		shopType string
	)

	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &point.Lat).
		MustFloat64("lng", &point.Lng).
		String("shopType", &shopType).
		BindError(); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat and lng query parameters are required numbers")
	}

	restaurants, err := h.discoveryUC.NearbyRestaurants(c.Request().Context(), point, shopType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRestaurantResponses(restaurants))
}
