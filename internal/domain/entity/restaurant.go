package entity

import (
	"time"

	"deliveryzone/internal/domain/geometry"

	"github.com/google/uuid"
)

// Restaurant is a vendor storefront together with its delivery configuration.
type Restaurant struct {
	ID          uuid.UUID
	Name        string
	Address     string         // Free-text address shown in the admin editor.
	ShopType    string         // e.g. "restaurant", "grocery".
	IsActive    bool           // Set by platform admins.
	IsAvailable bool           // Set by the vendor, e.g. closed for the day.
	Location    geometry.Point // Zero/zero until the vendor sets it.
	Bound       DeliveryBound
	ZoneID      *uuid.UUID // Zone containing Location, recomputed on every bound write.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRestaurant returns a restaurant in the initial unbounded state.
func NewRestaurant(name, address, shopType string) *Restaurant {
	now := time.Now().UTC()

	return &Restaurant{
		ID:          uuid.New(),
		Name:        name,
		Address:     address,
		ShopType:    shopType,
		IsActive:    true,
		IsAvailable: true,
		Bound:       PointBound{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// BoundType returns the discriminator of the current bound, point when none is set.
func (r *Restaurant) BoundType() BoundType {
	if r.Bound == nil {
		return BoundTypePoint
	}

	return r.Bound.Type()
}

// CircleInfo is the circle half of a DeliveryBoundInfo.
type CircleInfo struct {
	Radius float64 `json:"radius"`
}

// DeliveryBoundInfo is the read projection admin tooling uses to refill its editor.
// Exactly the field matching BoundType is set; the other is nil.
type DeliveryBoundInfo struct {
	Address      string          `json:"address"`
	BoundType    BoundType       `json:"boundType"`
	Location     *geometry.Point `json:"location"`
	PolygonBound geometry.Ring   `json:"polygonBound"`
	CircleBound  *CircleInfo     `json:"circleBound"`
}

// DeliveryBoundInfo builds the read projection for r.
func (r *Restaurant) DeliveryBoundInfo() *DeliveryBoundInfo {
	info := &DeliveryBoundInfo{
		Address:   r.Address,
		BoundType: r.BoundType(),
	}

	if !geometry.IsUnset(r.Location) {
		loc := r.Location
		info.Location = &loc
	}

	switch b := r.Bound.(type) {
	case PolygonBound:
		info.PolygonBound = b.Ring()
	case CircleBound:
		info.CircleBound = &CircleInfo{Radius: b.RadiusMeters()}
	}

	return info
}
