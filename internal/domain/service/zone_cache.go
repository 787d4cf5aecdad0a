package service

import (
	"context"

	"deliveryzone/internal/domain/entity"
)

// ZoneCache stores the active zone list served to discovery clients.
// A miss is reported as (nil, false, nil); errors are never fatal to callers.
type ZoneCache interface {
	GetActiveZones(ctx context.Context) ([]*entity.Zone, bool, error)
	SetActiveZones(ctx context.Context, zones []*entity.Zone) error
	InvalidateActiveZones(ctx context.Context) error
}
