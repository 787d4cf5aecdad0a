package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"deliveryzone/internal/domain/entity"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/domain/repository"

	"github.com/google/uuid"
)

// zoneRepository implements the repository.ZoneRepository interface.
type zoneRepository struct {
	store *Store
	lock  bool
}

func (repo *zoneRepository) FindZoneContaining(_ context.Context, point geometry.Point) (*entity.Zone, error) {
	if geometry.IsUnset(point) || !geometry.ValidPoint(point) {
		return nil, nil
	}

	defer repo.store.rlock(repo.lock)()

	best := repo.store.zoneContaining(point)
	if best == nil {
		return nil, nil
	}

	return cloneZone(best), nil
}

func (repo *zoneRepository) ListActiveZones(_ context.Context) ([]*entity.Zone, error) {
	defer repo.store.rlock(repo.lock)()

	zones := make([]*entity.Zone, 0, len(repo.store.zones))
	for _, zone := range repo.store.zones {
		if zone.IsActive {
			zones = append(zones, cloneZone(zone))
		}
	}
	slices.SortFunc(zones, func(a, b *entity.Zone) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return zones, nil
}

func (repo *zoneRepository) CreateZone(_ context.Context, zone *entity.Zone) error {
	defer repo.store.wlock(repo.lock)()

	if repo.store.nameTaken(zone.Name, uuid.Nil) {
		return repository.ErrZoneNameConflict
	}
	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}
	now := time.Now().UTC()
	zone.CreatedAt = now
	zone.UpdatedAt = now

	repo.store.putZone(cloneZone(zone))

	return nil
}

func (repo *zoneRepository) FindZoneByID(_ context.Context, id uuid.UUID) (*entity.Zone, error) {
	defer repo.store.rlock(repo.lock)()

	zone, ok := repo.store.zones[id]
	if !ok {
		return nil, repository.ErrZoneNotFound
	}

	return cloneZone(zone), nil
}

func (repo *zoneRepository) UpdateZone(_ context.Context, zone *entity.Zone) error {
	defer repo.store.wlock(repo.lock)()

	existing, ok := repo.store.zones[zone.ID]
	if !ok {
		return repository.ErrZoneNotFound
	}
	if repo.store.nameTaken(zone.Name, zone.ID) {
		return repository.ErrZoneNameConflict
	}

	updated := cloneZone(existing)
	updated.Name = zone.Name
	updated.Description = zone.Description
	updated.Polygon = geometry.CloseRing(zone.Polygon)
	updated.UpdatedAt = time.Now().UTC()
	repo.store.putZone(updated)

	zone.UpdatedAt = updated.UpdatedAt

	return nil
}

func (repo *zoneRepository) SetZoneActive(_ context.Context, id uuid.UUID, active bool) error {
	defer repo.store.wlock(repo.lock)()

	existing, ok := repo.store.zones[id]
	if !ok {
		return repository.ErrZoneNotFound
	}

	updated := cloneZone(existing)
	updated.IsActive = active
	updated.UpdatedAt = time.Now().UTC()
	repo.store.putZone(updated)

	return nil
}

// zoneContaining returns the preferred active zone containing point. Callers hold the lock.
func (s *Store) zoneContaining(point geometry.Point) *entity.Zone {
	var best *entity.Zone
	for _, entry := range search(s.zoneTree, point) {
		zone := s.zones[entry.id]
		if zone == nil || !zone.IsActive {
			continue
		}
		if best == nil || entity.PreferZone(zone, best) {
			best = zone
		}
	}

	return best
}

func (s *Store) nameTaken(name string, except uuid.UUID) bool {
	for id, zone := range s.zones {
		if id != except && zone.Name == name {
			return true
		}
	}

	return false
}

func cloneZone(z *entity.Zone) *entity.Zone {
	c := *z
	c.Polygon = geometry.CloseRing(z.Polygon)

	return &c
}
