// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"deliveryzone/internal/domain/entity"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for zone persistence.
var (
	// ErrZoneNotFound is returned when a zone is not found.
	ErrZoneNotFound = errors.New("zone not found")
	// ErrZoneNameConflict is returned when another zone already uses the name.
	ErrZoneNameConflict = errors.New("zone name already exists")
)

// ZoneRepository defines the interface for zone-related database operations.
type ZoneRepository interface {
	// FindZoneContaining returns the preferred active zone whose polygon intersects point.
	// It returns (nil, nil) when no zone matches or when point is unset.
	FindZoneContaining(ctx context.Context, point geometry.Point) (*entity.Zone, error)

	// ListActiveZones returns every active zone ordered by name.
	ListActiveZones(ctx context.Context) ([]*entity.Zone, error)

	// CreateZone persists a new zone.
	CreateZone(ctx context.Context, zone *entity.Zone) error

	// FindZoneByID retrieves a zone regardless of its active flag.
	FindZoneByID(ctx context.Context, id uuid.UUID) (*entity.Zone, error)

	// UpdateZone replaces the name, description and polygon of an existing zone.
	UpdateZone(ctx context.Context, zone *entity.Zone) error

	// SetZoneActive toggles the soft-deactivation flag.
	SetZoneActive(ctx context.Context, id uuid.UUID, active bool) error
}
