package usecase

import (
	"context"

	"deliveryzone/internal/domain/entity"
	"deliveryzone/internal/domain/geometry"
)

// DiscoveryUsecase answers "which restaurants deliver to this point"
type DiscoveryUsecase interface {
	// NearbyRestaurants returns restaurants delivering to point, closest first.
	// An unset point yields an empty list.
	NearbyRestaurants(ctx context.Context, point geometry.LatLng, shopType string) ([]*entity.Restaurant, error)
}
