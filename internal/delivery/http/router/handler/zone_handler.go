package handler

import (
	"net/http"

	"deliveryzone/internal/delivery/http/response"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ZoneHandler holds dependencies for zone listing and administration.
type ZoneHandler struct {
	zoneUC usecase.ZoneUsecase
}

// ZoneHandlerParams holds dependencies for ZoneHandler, injected by Fx.
type ZoneHandlerParams struct {
	fx.In

	ZoneUC usecase.ZoneUsecase
}

// NewZoneHandler is the constructor for ZoneHandler.
func NewZoneHandler(params ZoneHandlerParams) *ZoneHandler {
	return &ZoneHandler{zoneUC: params.ZoneUC}
}

// ZoneRequest represents the request body for creating or replacing a zone
type ZoneRequest struct {
	Name        string            `json:"name" validate:"required,max=200"`
	Description string            `json:"description" validate:"max=2000"`
	Polygon     []geometry.LatLng `json:"polygon" validate:"required,min=3"`
}

// SetZoneActiveRequest represents the request body for toggling a zone
type SetZoneActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// ListZones returns the active zones.
func (h *ZoneHandler) ListZones(c echo.Context) error {
	zones, err := h.zoneUC.ListZones(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toZoneResponses(zones))
}

// CreateZone handles zone creation
func (h *ZoneHandler) CreateZone(c echo.Context) error {
	var req ZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid zone input", err)
	}

	zone, err := h.zoneUC.CreateZone(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toZoneResponse(zone))
}

// UpdateZone replaces a zone's name, description and polygon
func (h *ZoneHandler) UpdateZone(c echo.Context) error {
	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid zone ID")
	}

	var req ZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid zone input", err)
	}

	zone, err := h.zoneUC.UpdateZone(c.Request().Context(), zoneID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toZoneResponse(zone))
}

// SetZoneActive activates or deactivates a zone
func (h *ZoneHandler) SetZoneActive(c echo.Context) error {
	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid zone ID")
	}

	var req SetZoneActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid zone input", err)
	}

	zone, err := h.zoneUC.SetZoneActive(c.Request().Context(), zoneID, *req.IsActive)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toZoneResponse(zone))
}

func (r *ZoneRequest) toInput() *usecase.ZoneInput {
	return &usecase.ZoneInput{
		Name:        r.Name,
		Description: r.Description,
		Polygon:     r.Polygon,
	}
}
