package service

import (
	"context"
)

// DeliveryBoundChangedEvent is published after a restaurant's delivery bound is persisted.
// Downstream consumers (search indexers, vendor dashboards) rebuild their caches from it.
type DeliveryBoundChangedEvent struct {
	RequestID    string       `json:"request_id,omitempty"` // For distributed tracing
	RestaurantID string       `json:"restaurant_id"`
	BoundType    string       `json:"bound_type"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	CircleRadius *float64     `json:"circle_radius,omitempty"`
	Polygon      [][2]float64 `json:"polygon,omitempty"` // [lng, lat] pairs
	ZoneID       string       `json:"zone_id,omitempty"`
	OccurredAt   int64        `json:"occurred_at"` // Unix milliseconds
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDeliveryBoundChanged publishes a bound change for async consumers
	PublishDeliveryBoundChanged(ctx context.Context, event *DeliveryBoundChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
