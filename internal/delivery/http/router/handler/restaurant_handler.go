package handler

import (
	"net/http"

	"deliveryzone/internal/delivery/http/response"
	"deliveryzone/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandler registers restaurants for admins.
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
}

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
}

// NewRestaurantHandler is the constructor for RestaurantHandler.
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{restaurantUC: params.RestaurantUC}
}

// CreateRestaurantRequest represents the request body for registering a restaurant
type CreateRestaurantRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Address  string `json:"address" validate:"max=500"`
	ShopType string `json:"shopType" validate:"required,max=50"`
}

// CreateRestaurant registers a restaurant in the unbounded point state.
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	var req CreateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid restaurant input", err)
	}

	restaurant, err := h.restaurantUC.CreateRestaurant(c.Request().Context(), &usecase.CreateRestaurantInput{
		Name:     req.Name,
		Address:  req.Address,
		ShopType: req.ShopType,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toRestaurantResponse(restaurant))
}
