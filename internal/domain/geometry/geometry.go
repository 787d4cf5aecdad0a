// Package geometry holds the pure geometric helpers used for delivery areas.
// Every coordinate stored or indexed is longitude first (orb.Point{lng, lat});
// LatLng exists only for the UI boundary where latitude comes first.
package geometry

import (
	"math"

	"deliveryzone/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

const (
	// MetersPerDegreeLat is the equirectangular scale used when expanding a circle.
	MetersPerDegreeLat = 111320.0

	// DefaultCircleVertices is used by PolygonFromCircle when no vertex count is given.
	DefaultCircleVertices = 4

	minRingVertices = 3
)

var (
	// ErrTooFewVertices is returned when a ring has fewer than 3 distinct usable vertices.
	ErrTooFewVertices = errors.New("ring needs at least 3 distinct vertices")
	// ErrDegenerateRing is returned when a ring encloses no area.
	ErrDegenerateRing = errors.New("ring encloses no area")
	// ErrRingNotClosed is returned when a ring is shorter than 4 points or its ends differ.
	ErrRingNotClosed = errors.New("ring is not closed")
)

// Point is a geographic coordinate in (lng, lat) order.
type Point = orb.Point

// Ring is a closed sequence of points describing a polygon's outer boundary.
type Ring = orb.Ring

// LatLng is a coordinate as UI components send it, latitude first.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point converts the UI coordinate into the storage order.
func (ll LatLng) Point() Point {
	return Point{ll.Lng, ll.Lat}
}

// LatLngFromPoint converts a storage coordinate into UI order.
func LatLngFromPoint(p Point) LatLng {
	return LatLng{Lat: p.Lat(), Lng: p.Lon()}
}

// NewPoint builds a point from longitude and latitude.
func NewPoint(lng, lat float64) Point {
	return Point{lng, lat}
}

// IsUnset reports whether p is the zero/zero placeholder used for "no location yet".
func IsUnset(p Point) bool {
	return p[0] == 0 && p[1] == 0
}

// ValidPoint reports whether p is finite and inside WGS84 bounds.
func ValidPoint(p Point) bool {
	lng, lat := p[0], p[1]
	if !isFinite(lng) || !isFinite(lat) {
		return false
	}

	return lng >= -180 && lng <= 180 && lat >= -90 && lat <= 90
}

// PolygonFromCircle approximates a circle as a regular polygon with the given
// number of vertices and returns the closed ring (vertices+1 points). A
// non-positive count means DefaultCircleVertices.
// Invalid input, 1 or 2 vertices, or a ring leaving WGS84 bounds (a center at
// a pole) yields an empty ring.
func PolygonFromCircle(center Point, radiusMeters float64, vertices int) Ring {
	if !ValidPoint(center) || !isFinite(radiusMeters) || radiusMeters <= 0 {
		return Ring{}
	}
	if vertices <= 0 {
		vertices = DefaultCircleVertices
	}
	if vertices < minRingVertices {
		return Ring{}
	}

	latRad := center.Lat() * math.Pi / 180
	latStep := radiusMeters / MetersPerDegreeLat
	lngStep := radiusMeters / (MetersPerDegreeLat * math.Cos(latRad))

	ring := make(Ring, 0, vertices+1)
	for i := range vertices {
		angle := float64(i) * 2 * math.Pi / float64(vertices)
		p := Point{
			center.Lon() + lngStep*math.Sin(angle),
			center.Lat() + latStep*math.Cos(angle),
		}
		if !ValidPoint(p) {
			return Ring{}
		}
		ring = append(ring, p)
	}

	return append(ring, ring[0])
}

// IsValidRing reports whether ring has at least 4 points and is closed by
// exact coordinate equality.
func IsValidRing(ring Ring) bool {
	if len(ring) < minRingVertices+1 {
		return false
	}

	return ring[0] == ring[len(ring)-1]
}

// CloseRing returns ring with its first point appended when it is not closed yet.
func CloseRing(ring Ring) Ring {
	if len(ring) == 0 {
		return Ring{}
	}

	closed := make(Ring, len(ring), len(ring)+1)
	copy(closed, ring)
	if closed[0] != closed[len(closed)-1] {
		closed = append(closed, closed[0])
	}

	return closed
}

// NormalizeRing turns UI vertices into a closed, lng-first ring. Non-finite or
// out-of-range pairs are dropped; an already closed input keeps a single
// closing point.
func NormalizeRing(vertices []LatLng) (Ring, error) {
	cleaned := make(Ring, 0, len(vertices)+1)
	for _, v := range vertices {
		p := v.Point()
		if !ValidPoint(p) {
			continue
		}
		cleaned = append(cleaned, p)
	}

	if len(cleaned) > 1 && cleaned[0] == cleaned[len(cleaned)-1] {
		cleaned = cleaned[:len(cleaned)-1]
	}

	if distinctCount(cleaned) < minRingVertices {
		return nil, errors.WithStack(ErrTooFewVertices)
	}

	ring := CloseRing(cleaned)
	if RingAreaSquareMeters(ring) == 0 {
		return nil, errors.WithStack(ErrDegenerateRing)
	}

	return ring, nil
}

// RingContains reports whether point lies inside ring or on its boundary.
func RingContains(ring Ring, point Point) bool {
	if !IsValidRing(ring) {
		return false
	}

	return planar.RingContains(ring, point)
}

// RingAreaSquareMeters returns the geodesic area enclosed by ring.
func RingAreaSquareMeters(ring Ring) float64 {
	if len(ring) < minRingVertices+1 {
		return 0
	}

	return math.Abs(geo.Area(ring))
}

// DistanceMeters returns the geodesic distance between two points.
func DistanceMeters(a, b Point) float64 {
	return geo.Distance(a, b)
}

// ZoomForRadius maps a delivery radius in kilometres to a map zoom level.
// Larger radii never produce a larger zoom.
func ZoomForRadius(radiusKm float64) int {
	if !isFinite(radiusKm) || radiusKm <= 0 {
		return zoomSteps[0].zoom
	}

	for _, step := range zoomSteps {
		if radiusKm <= step.maxKm {
			return step.zoom
		}
	}

	return minZoom
}

type zoomStep struct {
	maxKm float64
	zoom  int
}

const minZoom = 8

//nolint:gochecknoglobals
var zoomSteps = []zoomStep{
	{maxKm: 0.5, zoom: 16},
	{maxKm: 1, zoom: 15},
	{maxKm: 2, zoom: 14},
	{maxKm: 4, zoom: 13},
	{maxKm: 8, zoom: 12},
	{maxKm: 16, zoom: 11},
	{maxKm: 32, zoom: 10},
	{maxKm: 64, zoom: 9},
}

func distinctCount(points Ring) int {
	seen := make(map[Point]struct{}, len(points))
	for _, p := range points {
		seen[p] = struct{}{}
	}

	return len(seen)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
