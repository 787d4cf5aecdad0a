// Package handler contains the REST handlers for delivery zones, zones and discovery.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "deliveryzone/internal/delivery/context"
	"deliveryzone/internal/delivery/http/response"
	domainerrors "deliveryzone/internal/domain/errors"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/errors"
	"deliveryzone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeliveryZoneHandler serves a restaurant's location and delivery bound.
type DeliveryZoneHandler struct {
	boundUC usecase.DeliveryBoundUsecase
	logger  *slog.Logger
}

// DeliveryZoneHandlerParams holds dependencies for DeliveryZoneHandler, injected by Fx.
type DeliveryZoneHandlerParams struct {
	fx.In

	BoundUC usecase.DeliveryBoundUsecase
	Logger  *slog.Logger
}

// NewDeliveryZoneHandler is the constructor for DeliveryZoneHandler.
func NewDeliveryZoneHandler(params DeliveryZoneHandlerParams) *DeliveryZoneHandler {
	return &DeliveryZoneHandler{
		boundUC: params.BoundUC,
		logger:  params.Logger,
	}
}

// LatLngRequest is a coordinate in UI order.
type LatLngRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lng *float64 `json:"lng" validate:"required"`
}

// UpdateDeliveryZoneRequest represents the request body for updating a restaurant's delivery bound.
// Range checks on coordinates happen in the use case so they come back as INVALID_GEOMETRY.
type UpdateDeliveryZoneRequest struct {
	Location     LatLngRequest     `json:"location"`
	BoundType    string            `json:"boundType" validate:"required,oneof=point polygon circle radius"`
	Polygon      []geometry.LatLng `json:"polygon"`
	CircleRadius *float64          `json:"circleRadius"`
}

// GetDeliveryZone returns the editor projection of a restaurant's delivery bound.
func (h *DeliveryZoneHandler) GetDeliveryZone(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	info, err := h.boundUC.GetRestaurantDeliveryZoneInfo(c.Request().Context(), restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDeliveryZoneResponse(info))
}

// UpdateDeliveryZone replaces a restaurant's location and delivery bound.
func (h *DeliveryZoneHandler) UpdateDeliveryZone(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	var req UpdateDeliveryZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid delivery zone input", err)
	}

	result, err := h.boundUC.UpdateDeliveryBoundsAndLocation(c.Request().Context(), &usecase.UpdateBoundsInput{
		RestaurantID:       restaurantID,
		Location:           geometry.LatLng{Lat: *req.Location.Lat, Lng: *req.Location.Lng},
		BoundType:          req.BoundType,
		PolygonRing:        req.Polygon,
		CircleRadiusMeters: req.CircleRadius,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !result.Success {
		return h.rejected(c, result)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Delivery bound updated",
		slog.String("restaurantID", restaurantID.String()),
		slog.String("boundType", string(result.Data.BoundType())),
	)

	return response.Success(c, http.StatusOK, &UpdateDeliveryZoneResponse{
		Success:    true,
		Message:    result.Message,
		Restaurant: toRestaurantResponse(result.Data),
	})
}

// rejected renders a failed tagged result with the status of its business code.
func (h *DeliveryZoneHandler) rejected(c echo.Context, result *usecase.UpdateBoundsResult) error {
	status := http.StatusUnprocessableEntity
	if appErr, ok := domainerrors.Lookup(result.Code); ok {
		status = appErr.HTTPCode()
	}

	return response.Error(c, status, result.Code, result.Message, nil)
}
