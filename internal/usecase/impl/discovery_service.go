package impl

import (
	"context"

	"deliveryzone/internal/domain/entity"
	domainerrors "deliveryzone/internal/domain/errors"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/domain/repository"
	"deliveryzone/internal/domain/service"
	"deliveryzone/internal/errors"
	"deliveryzone/internal/usecase"
)

type discoveryService struct {
	restaurantRepo repository.RestaurantRepository
	metrics        service.Metrics
}

// NewDiscoveryService creates a new discovery service instance
func NewDiscoveryService(restaurantRepo repository.RestaurantRepository, metrics service.Metrics) usecase.DiscoveryUsecase {
	return &discoveryService{
		restaurantRepo: restaurantRepo,
		metrics:        metrics,
	}
}

// NearbyRestaurants returns restaurants whose delivery area covers point, closest first.
func (s *discoveryService) NearbyRestaurants(ctx context.Context, point geometry.LatLng, shopType string) ([]*entity.Restaurant, error) {
	p := point.Point()
	if geometry.IsUnset(p) {
		return []*entity.Restaurant{}, nil
	}
	if !geometry.ValidPoint(p) {
		return nil, domainerrors.ErrInvalidGeometry.WithDetails("latitude must be within [-90, 90] and longitude within [-180, 180]")
	}

	restaurants, err := s.restaurantRepo.FindRestaurantsIntersecting(ctx, p, repository.RestaurantFilter{ShopType: shopType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants intersecting point")
	}
	s.metrics.NearbySearch(len(restaurants))

	return restaurants, nil
}
