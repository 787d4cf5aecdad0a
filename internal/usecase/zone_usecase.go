package usecase

import (
	"context"

	"deliveryzone/internal/domain/entity"
	"deliveryzone/internal/domain/geometry"

	"github.com/google/uuid"
)

// ZoneInput represents an admin's zone definition. Polygon vertices are in UI order.
type ZoneInput struct {
	Name        string
	Description string
	Polygon     []geometry.LatLng
}

// ZoneUsecase defines zone listing and administration
type ZoneUsecase interface {
	ListZones(ctx context.Context) ([]*entity.Zone, error)
	CreateZone(ctx context.Context, input *ZoneInput) (*entity.Zone, error)
	UpdateZone(ctx context.Context, zoneID uuid.UUID, input *ZoneInput) (*entity.Zone, error)
	SetZoneActive(ctx context.Context, zoneID uuid.UUID, active bool) (*entity.Zone, error)
}
