package handler

import (
	"time"

	"deliveryzone/internal/domain/entity"
	"deliveryzone/internal/domain/geometry"

	"github.com/google/uuid"
)

// REST bodies use the UI coordinate order (lat, lng). GeoJSON ordering is kept
// for /graphql, which mirrors the legacy API.

// RestaurantResponse is the public view of a restaurant and its delivery bound.
type RestaurantResponse struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Address      string            `json:"address"`
	ShopType     string            `json:"shopType"`
	IsActive     bool              `json:"isActive"`
	IsAvailable  bool              `json:"isAvailable"`
	Location     *geometry.LatLng  `json:"location,omitempty"`
	BoundType    entity.BoundType  `json:"boundType"`
	Polygon      []geometry.LatLng `json:"polygon,omitempty"`
	CircleRadius *float64          `json:"circleRadius,omitempty"`
	ZoneID       *uuid.UUID        `json:"zoneId,omitempty"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// ZoneResponse is the public view of a zone.
type ZoneResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Polygon     []geometry.LatLng `json:"polygon"`
	IsActive    bool              `json:"isActive"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// DeliveryZoneResponse refills the delivery-bound editor.
// Zoom is a suggested map zoom for circle bounds.
type DeliveryZoneResponse struct {
	Address      string            `json:"address"`
	BoundType    entity.BoundType  `json:"boundType"`
	Location     *geometry.LatLng  `json:"location"`
	Polygon      []geometry.LatLng `json:"polygon"`
	CircleRadius *float64          `json:"circleRadius"`
	Zoom         *int              `json:"zoom,omitempty"`
}

// UpdateDeliveryZoneResponse is the tagged update result. Restaurant is set only on success.
type UpdateDeliveryZoneResponse struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message,omitempty"`
	Restaurant *RestaurantResponse `json:"restaurant,omitempty"`
}

func toLatLngs(ring geometry.Ring) []geometry.LatLng {
	if len(ring) == 0 {
		return nil
	}

	out := make([]geometry.LatLng, 0, len(ring))
	for _, p := range ring {
		out = append(out, geometry.LatLngFromPoint(p))
	}

	return out
}

func toRestaurantResponse(r *entity.Restaurant) *RestaurantResponse {
	resp := &RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		ShopType:    r.ShopType,
		IsActive:    r.IsActive,
		IsAvailable: r.IsAvailable,
		BoundType:   r.BoundType(),
		ZoneID:      r.ZoneID,
		UpdatedAt:   r.UpdatedAt,
	}

	if !geometry.IsUnset(r.Location) {
		loc := geometry.LatLngFromPoint(r.Location)
		resp.Location = &loc
	}

	switch b := r.Bound.(type) {
	case entity.PolygonBound:
		resp.Polygon = toLatLngs(b.Ring())
	case entity.CircleBound:
		radius := b.RadiusMeters()
		resp.CircleRadius = &radius
	}

	return resp
}

func toRestaurantResponses(restaurants []*entity.Restaurant) []*RestaurantResponse {
	out := make([]*RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, toRestaurantResponse(r))
	}

	return out
}

func toZoneResponse(z *entity.Zone) *ZoneResponse {
	return &ZoneResponse{
		ID:          z.ID,
		Name:        z.Name,
		Description: z.Description,
		Polygon:     toLatLngs(z.Polygon),
		IsActive:    z.IsActive,
		CreatedAt:   z.CreatedAt,
		UpdatedAt:   z.UpdatedAt,
	}
}

func toZoneResponses(zones []*entity.Zone) []*ZoneResponse {
	out := make([]*ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, toZoneResponse(z))
	}

	return out
}

func toDeliveryZoneResponse(info *entity.DeliveryBoundInfo) *DeliveryZoneResponse {
	resp := &DeliveryZoneResponse{
		Address:   info.Address,
		BoundType: info.BoundType,
		Polygon:   toLatLngs(info.PolygonBound),
	}

	if info.Location != nil {
		loc := geometry.LatLngFromPoint(*info.Location)
		resp.Location = &loc
	}

	if info.CircleBound != nil {
		radius := info.CircleBound.Radius
		zoom := geometry.ZoomForRadius(radius / 1000)
		resp.CircleRadius = &radius
		resp.Zoom = &zoom
	}

	return resp
}
