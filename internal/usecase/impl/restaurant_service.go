package impl

import (
	"context"
	"strings"

	"deliveryzone/internal/domain/entity"
	domainerrors "deliveryzone/internal/domain/errors"
	"deliveryzone/internal/domain/repository"
	"deliveryzone/internal/errors"
	"deliveryzone/internal/usecase"
)

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
}

// NewRestaurantService creates a new restaurant service instance
func NewRestaurantService(restaurantRepo repository.RestaurantRepository) usecase.RestaurantUsecase {
	return &restaurantService{restaurantRepo: restaurantRepo}
}

// CreateRestaurant registers a restaurant with no location and a point bound.
func (s *restaurantService) CreateRestaurant(ctx context.Context, input *usecase.CreateRestaurantInput) (*entity.Restaurant, error) {
	name := strings.TrimSpace(input.Name)
	shopType := strings.TrimSpace(input.ShopType)
	if name == "" || shopType == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and shopType are required")
	}

	restaurant := entity.NewRestaurant(name, strings.TrimSpace(input.Address), shopType)
	if err := s.restaurantRepo.CreateRestaurant(ctx, restaurant); err != nil {
		return nil, errors.Wrap(err, "failed to create restaurant")
	}

	return restaurant, nil
}
