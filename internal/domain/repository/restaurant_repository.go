package repository

import (
	"context"

	"deliveryzone/internal/domain/entity"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/errors"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantFilter narrows FindRestaurantsIntersecting. Zero values match everything.
type RestaurantFilter struct {
	ShopType string
}

// BoundUpdate is everything written by one delivery-bound update.
// Area is the ring stored in the spatial index and must come from entity.EffectiveArea.
type BoundUpdate struct {
	RestaurantID uuid.UUID
	Location     geometry.Point
	Bound        entity.DeliveryBound
	Area         geometry.Ring
	ZoneID       *uuid.UUID
}

// RestaurantRepository defines the interface for restaurant delivery-bound persistence.
type RestaurantRepository interface {
	// CreateRestaurant persists a new restaurant.
	CreateRestaurant(ctx context.Context, restaurant *entity.Restaurant) error

	// FindRestaurantByID retrieves a restaurant by its unique ID.
	FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindRestaurantsIntersecting returns active, available restaurants that deliver to point,
	// either through their own delivery area or, for point bounds, through their active zone.
	// Results are ordered by distance from the restaurant location.
	FindRestaurantsIntersecting(ctx context.Context, point geometry.Point, filter RestaurantFilter) ([]*entity.Restaurant, error)

	// ReadDeliveryBoundInfo returns the admin editor projection of a restaurant.
	ReadDeliveryBoundInfo(ctx context.Context, id uuid.UUID) (*entity.DeliveryBoundInfo, error)

	// UpdateDeliveryBound writes location, bound, the cleared sibling bound, the indexed area
	// and the zone reference in a single atomic operation and returns the persisted record.
	UpdateDeliveryBound(ctx context.Context, update BoundUpdate) (*entity.Restaurant, error)

	// RefreshZoneReferences recomputes the zone reference of every restaurant currently
	// pointing at zoneID or located inside it. It returns the number of rows changed.
	RefreshZoneReferences(ctx context.Context, zoneID uuid.UUID) (int64, error)
}
