// Package usecase defines the application's use case contracts.
package usecase

import (
	"context"

	"deliveryzone/internal/domain/entity"
	"deliveryzone/internal/domain/geometry"

	"github.com/google/uuid"
)

// UpdateBoundsInput is a proposed location plus delivery bound for one restaurant.
// Coordinates arrive in UI order (latitude first).
type UpdateBoundsInput struct {
	RestaurantID       uuid.UUID
	Location           geometry.LatLng
	BoundType          string
	PolygonRing        []geometry.LatLng
	CircleRadiusMeters *float64
}

// UpdateBoundsResult is the tagged outcome of an update. Validation failures come back
// with Success=false and never as an error, so forms can render them inline.
type UpdateBoundsResult struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Code    string             `json:"code,omitempty"`
	Data    *entity.Restaurant `json:"-"`
}

// DeliveryBoundUsecase defines the delivery-bound resolution use cases
type DeliveryBoundUsecase interface {
	// UpdateDeliveryBoundsAndLocation validates, resolves the zone and atomically persists
	// a restaurant's location and bound. Only infrastructure failures are returned as errors.
	UpdateDeliveryBoundsAndLocation(ctx context.Context, input *UpdateBoundsInput) (*UpdateBoundsResult, error)

	// GetRestaurantDeliveryZoneInfo returns the editor projection; a missing restaurant is an error.
	GetRestaurantDeliveryZoneInfo(ctx context.Context, restaurantID uuid.UUID) (*entity.DeliveryBoundInfo, error)
}
