package usecase

import (
	"context"

	"deliveryzone/internal/domain/entity"
)

// CreateRestaurantInput represents the input for registering a restaurant
type CreateRestaurantInput struct {
	Name     string
	Address  string
	ShopType string
}

// RestaurantUsecase defines restaurant registration
type RestaurantUsecase interface {
	// CreateRestaurant registers a restaurant in the unbounded point state with no location.
	CreateRestaurant(ctx context.Context, input *CreateRestaurantInput) (*entity.Restaurant, error)
}
