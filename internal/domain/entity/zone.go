// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"deliveryzone/internal/domain/geometry"

	"github.com/google/uuid"
)

// Zone is an admin-defined polygonal region restaurants fall back to when they
// have no geometric bound of their own.
type Zone struct {
	ID          uuid.UUID     // The Global Unique Identifier (GUID) for the zone.
	Name        string        // Display name, unique among zones.
	Description string        // Optional free text shown to admins.
	Polygon     geometry.Ring // Closed outer ring, longitude first.
	IsActive    bool          // Inactive zones never match a lookup.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Contains reports whether the zone is active and p lies inside its polygon.
func (z *Zone) Contains(p geometry.Point) bool {
	if z == nil || !z.IsActive || geometry.IsUnset(p) {
		return false
	}

	return geometry.RingContains(z.Polygon, p)
}

// AreaSquareMeters returns the geodesic area of the zone polygon.
func (z *Zone) AreaSquareMeters() float64 {
	return geometry.RingAreaSquareMeters(z.Polygon)
}

// PreferZone reports whether a should win over b when both contain the same point.
// The smaller zone wins; ties fall back to the older zone and then the lower id.
func PreferZone(a, b *Zone) bool {
	areaA, areaB := a.AreaSquareMeters(), b.AreaSquareMeters()
	if areaA != areaB {
		return areaA < areaB
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}

	return a.ID.String() < b.ID.String()
}
