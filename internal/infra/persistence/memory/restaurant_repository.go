package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"deliveryzone/internal/domain/entity"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/domain/repository"

	"github.com/google/uuid"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	store *Store
	lock  bool
}

func (repo *restaurantRepository) CreateRestaurant(_ context.Context, restaurant *entity.Restaurant) error {
	defer repo.store.wlock(repo.lock)()

	if restaurant.ID == uuid.Nil {
		restaurant.ID = uuid.New()
	}
	now := time.Now().UTC()
	restaurant.Bound = entity.PointBound{}
	restaurant.CreatedAt = now
	restaurant.UpdatedAt = now

	repo.store.putRestaurant(cloneRestaurant(restaurant), nil)

	return nil
}

func (repo *restaurantRepository) FindRestaurantByID(_ context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	defer repo.store.rlock(repo.lock)()

	restaurant, ok := repo.store.restaurants[id]
	if !ok {
		return nil, repository.ErrRestaurantNotFound
	}

	return cloneRestaurant(restaurant), nil
}

func (repo *restaurantRepository) FindRestaurantsIntersecting(_ context.Context, point geometry.Point, filter repository.RestaurantFilter) ([]*entity.Restaurant, error) {
	if geometry.IsUnset(point) || !geometry.ValidPoint(point) {
		return []*entity.Restaurant{}, nil
	}

	defer repo.store.rlock(repo.lock)()

	matched := make(map[uuid.UUID]*entity.Restaurant)
	for _, entry := range search(repo.store.areaTree, point) {
		if r := repo.store.restaurants[entry.id]; r != nil {
			matched[r.ID] = r
		}
	}

	zoneHits := make(map[uuid.UUID]struct{})
	for _, entry := range search(repo.store.zoneTree, point) {
		if zone := repo.store.zones[entry.id]; zone != nil && zone.IsActive {
			zoneHits[zone.ID] = struct{}{}
		}
	}
	if len(zoneHits) > 0 {
		for _, r := range repo.store.restaurants {
			if r.BoundType() != entity.BoundTypePoint || r.ZoneID == nil {
				continue
			}
			if _, ok := zoneHits[*r.ZoneID]; ok {
				matched[r.ID] = r
			}
		}
	}

	restaurants := make([]*entity.Restaurant, 0, len(matched))
	for _, r := range matched {
		if !r.IsActive || !r.IsAvailable || geometry.IsUnset(r.Location) {
			continue
		}
		if filter.ShopType != "" && r.ShopType != filter.ShopType {
			continue
		}
		restaurants = append(restaurants, cloneRestaurant(r))
	}

	slices.SortFunc(restaurants, func(a, b *entity.Restaurant) int {
		da, db := geometry.DistanceMeters(a.Location, point), geometry.DistanceMeters(b.Location, point)
		if c := cmp.Compare(da, db); c != 0 {
			return c
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return restaurants, nil
}

func (repo *restaurantRepository) ReadDeliveryBoundInfo(ctx context.Context, id uuid.UUID) (*entity.DeliveryBoundInfo, error) {
	restaurant, err := repo.FindRestaurantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return restaurant.DeliveryBoundInfo(), nil
}

// UpdateDeliveryBound swaps the whole record and its area entry under one write lock.
func (repo *restaurantRepository) UpdateDeliveryBound(_ context.Context, update repository.BoundUpdate) (*entity.Restaurant, error) {
	defer repo.store.wlock(repo.lock)()

	existing, ok := repo.store.restaurants[update.RestaurantID]
	if !ok {
		return nil, repository.ErrRestaurantNotFound
	}

	updated := cloneRestaurant(existing)
	updated.Location = update.Location
	updated.Bound = update.Bound
	if updated.Bound == nil {
		updated.Bound = entity.PointBound{}
	}
	updated.ZoneID = cloneID(update.ZoneID)
	updated.UpdatedAt = time.Now().UTC()

	repo.store.putRestaurant(updated, geometry.CloseRing(update.Area))

	return cloneRestaurant(updated), nil
}

func (repo *restaurantRepository) RefreshZoneReferences(_ context.Context, zoneID uuid.UUID) (int64, error) {
	defer repo.store.wlock(repo.lock)()

	zone := repo.store.zones[zoneID]

	var changed int64
	for _, r := range repo.store.restaurants {
		if geometry.IsUnset(r.Location) {
			continue
		}
		pointsAtZone := r.ZoneID != nil && *r.ZoneID == zoneID
		insideZone := zone != nil && geometry.RingContains(zone.Polygon, r.Location)
		if !pointsAtZone && !insideZone {
			continue
		}

		var next *uuid.UUID
		if best := repo.store.zoneContaining(r.Location); best != nil {
			id := best.ID
			next = &id
		}
		if sameID(r.ZoneID, next) {
			continue
		}

		updated := cloneRestaurant(r)
		updated.ZoneID = next
		updated.UpdatedAt = time.Now().UTC()
		repo.store.restaurants[r.ID] = updated
		changed++
	}

	return changed, nil
}

func cloneRestaurant(r *entity.Restaurant) *entity.Restaurant {
	c := *r
	c.ZoneID = cloneID(r.ZoneID)
	if c.Bound == nil {
		c.Bound = entity.PointBound{}
	}

	return &c
}

func cloneID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id

	return &c
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
