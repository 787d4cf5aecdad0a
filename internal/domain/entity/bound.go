package entity

import (
	"math"

	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/errors"
)

// BoundType discriminates which delivery bound a restaurant uses.
type BoundType string

const (
	// BoundTypePoint means no geometric bound: the restaurant delivers only inside its zone.
	BoundTypePoint BoundType = "point"
	// BoundTypePolygon means the restaurant delivers inside its own ring.
	BoundTypePolygon BoundType = "polygon"
	// BoundTypeCircle means the restaurant delivers within a radius of its location.
	BoundTypeCircle BoundType = "circle"

	// boundTypeRadius is accepted from callers as an alias of circle.
	boundTypeRadius BoundType = "radius"
)

var (
	// ErrUnknownBoundType is returned when a bound type string is not recognised.
	ErrUnknownBoundType = errors.New("unknown bound type")
	// ErrInvalidRadius is returned for a non-finite or non-positive radius.
	ErrInvalidRadius = errors.New("radius must be a finite number greater than zero")
)

// ParseBoundType maps caller input to a BoundType, folding "radius" into circle.
func ParseBoundType(s string) (BoundType, error) {
	switch BoundType(s) {
	case BoundTypePoint:
		return BoundTypePoint, nil
	case BoundTypePolygon:
		return BoundTypePolygon, nil
	case BoundTypeCircle, boundTypeRadius:
		return BoundTypeCircle, nil
	default:
		return "", errors.Wrapf(ErrUnknownBoundType, "%q", s)
	}
}

// DeliveryBound is the delivery-area geometry attached to a restaurant.
// It is implemented only by PointBound, PolygonBound and CircleBound.
type DeliveryBound interface {
	Type() BoundType
	sealed()
}

// PointBound is the unbounded state; any match comes from the restaurant's zone.
type PointBound struct{}

// PolygonBound is a restaurant-owned closed ring.
type PolygonBound struct {
	ring geometry.Ring
}

// CircleBound is a radius around the restaurant location.
type CircleBound struct {
	radiusMeters float64
}

// NewPolygonBound wraps a closed ring. The ring must already satisfy geometry.IsValidRing.
func NewPolygonBound(ring geometry.Ring) (PolygonBound, error) {
	if !geometry.IsValidRing(ring) {
		return PolygonBound{}, errors.WithStack(geometry.ErrRingNotClosed)
	}

	return PolygonBound{ring: geometry.CloseRing(ring)}, nil
}

// NewCircleBound validates the radius and returns a circle bound.
func NewCircleBound(radiusMeters float64) (CircleBound, error) {
	if math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) || radiusMeters <= 0 {
		return CircleBound{}, errors.WithStack(ErrInvalidRadius)
	}

	return CircleBound{radiusMeters: radiusMeters}, nil
}

func (PointBound) Type() BoundType   { return BoundTypePoint }
func (PolygonBound) Type() BoundType { return BoundTypePolygon }
func (CircleBound) Type() BoundType  { return BoundTypeCircle }

func (PointBound) sealed()   {}
func (PolygonBound) sealed() {}
func (CircleBound) sealed()  {}

// Ring returns a copy of the bound's ring.
func (b PolygonBound) Ring() geometry.Ring {
	return geometry.CloseRing(b.ring)
}

// RadiusMeters returns the circle radius.
func (b CircleBound) RadiusMeters() float64 {
	return b.radiusMeters
}

// EffectiveArea returns the polygon written to the spatial index for a bound
// anchored at location. PointBound, or a circle without a location, has no area
// of its own and yields nil.
func EffectiveArea(bound DeliveryBound, location geometry.Point, circleVertices int) geometry.Ring {
	switch b := bound.(type) {
	case PolygonBound:
		return b.Ring()
	case CircleBound:
		if geometry.IsUnset(location) {
			return nil
		}
		ring := geometry.PolygonFromCircle(location, b.radiusMeters, circleVertices)
		if len(ring) == 0 {
			return nil
		}

		return ring
	default:
		return nil
	}
}
