package memory

import (
	"context"
	"sync"
	"testing"

	"deliveryzone/internal/domain/entity"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/domain/repository"
	"deliveryzone/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cairoCenter  = geometry.NewPoint(31.2357, 30.0444)
	centralCairo = geometry.Ring{{31.1, 29.9}, {31.4, 29.9}, {31.4, 30.2}, {31.1, 30.2}, {31.1, 29.9}}
	downtown     = geometry.Ring{{31.2, 30.0}, {31.3, 30.0}, {31.3, 30.1}, {31.2, 30.1}, {31.2, 30.0}}
)

func newZone(t *testing.T, repo repository.ZoneRepository, name string, ring geometry.Ring) *entity.Zone {
	t.Helper()

	zone := &entity.Zone{Name: name, Polygon: ring, IsActive: true}
	require.NoError(t, repo.CreateZone(context.Background(), zone))

	return zone
}

func newRestaurant(t *testing.T, repo repository.RestaurantRepository, name string) *entity.Restaurant {
	t.Helper()

	r := entity.NewRestaurant(name, name+" street", "restaurant")
	require.NoError(t, repo.CreateRestaurant(context.Background(), r))

	return r
}

func TestZoneRepository_FindZoneContaining(t *testing.T) {
	t.Parallel()

	store := NewStore()
	zones := NewZoneRepository(store)
	cairo := newZone(t, zones, "Central Cairo", centralCairo)

	t.Run("point inside central cairo", func(t *testing.T) {
		zone, err := zones.FindZoneContaining(context.Background(), cairoCenter)
		require.NoError(t, err)
		require.NotNil(t, zone)
		assert.Equal(t, cairo.ID, zone.ID)
	})

	t.Run("null island has no zone", func(t *testing.T) {
		zone, err := zones.FindZoneContaining(context.Background(), geometry.NewPoint(0, 0))
		require.NoError(t, err)
		assert.Nil(t, zone)
	})

	t.Run("point outside every zone", func(t *testing.T) {
		zone, err := zones.FindZoneContaining(context.Background(), geometry.NewPoint(29.9187, 31.2001))
		require.NoError(t, err)
		assert.Nil(t, zone)
	})
}

func TestZoneRepository_SmallestZoneWins(t *testing.T) {
	t.Parallel()

	store := NewStore()
	zones := NewZoneRepository(store)
	newZone(t, zones, "Central Cairo", centralCairo)
	inner := newZone(t, zones, "Downtown", downtown)

	zone, err := zones.FindZoneContaining(context.Background(), cairoCenter)
	require.NoError(t, err)
	require.NotNil(t, zone)
	assert.Equal(t, inner.ID, zone.ID)
}

func TestZoneRepository_InactiveZonesAreIgnored(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	zones := NewZoneRepository(store)
	cairo := newZone(t, zones, "Central Cairo", centralCairo)

	require.NoError(t, zones.SetZoneActive(ctx, cairo.ID, false))

	zone, err := zones.FindZoneContaining(ctx, cairoCenter)
	require.NoError(t, err)
	assert.Nil(t, zone)

	active, err := zones.ListActiveZones(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	stored, err := zones.FindZoneByID(ctx, cairo.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestZoneRepository_CRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	zones := NewZoneRepository(store)
	b := newZone(t, zones, "B zone", downtown)
	newZone(t, zones, "A zone", centralCairo)

	err := zones.CreateZone(ctx, &entity.Zone{Name: "B zone", Polygon: downtown, IsActive: true})
	assert.ErrorIs(t, err, repository.ErrZoneNameConflict)

	list, err := zones.ListActiveZones(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A zone", list[0].Name)

	b.Description = "moved"
	b.Polygon = geometry.Ring{{0.1, 0.1}, {0.2, 0.1}, {0.2, 0.2}, {0.1, 0.1}}
	require.NoError(t, zones.UpdateZone(ctx, b))

	zone, err := zones.FindZoneContaining(ctx, cairoCenter)
	require.NoError(t, err)
	assert.Equal(t, "A zone", zone.Name)

	_, err = zones.FindZoneByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrZoneNotFound)
	assert.ErrorIs(t, zones.UpdateZone(ctx, &entity.Zone{ID: uuid.New(), Name: "x"}), repository.ErrZoneNotFound)
	assert.ErrorIs(t, zones.SetZoneActive(ctx, uuid.New(), true), repository.ErrZoneNotFound)
}

func TestRestaurantRepository_BoundRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	restaurants := NewRestaurantRepository(store)
	r := newRestaurant(t, restaurants, "Abou Tarek")

	polygon, err := entity.NewPolygonBound(downtown)
	require.NoError(t, err)
	_, err = restaurants.UpdateDeliveryBound(ctx, repository.BoundUpdate{
		RestaurantID: r.ID,
		Location:     cairoCenter,
		Bound:        polygon,
		Area:         entity.EffectiveArea(polygon, cairoCenter, 64),
	})
	require.NoError(t, err)

	info, err := restaurants.ReadDeliveryBoundInfo(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BoundTypePolygon, info.BoundType)
	assert.True(t, geometry.IsValidRing(info.PolygonBound))
	assert.Nil(t, info.CircleBound)

	circle, err := entity.NewCircleBound(1500)
	require.NoError(t, err)
	updated, err := restaurants.UpdateDeliveryBound(ctx, repository.BoundUpdate{
		RestaurantID: r.ID,
		Location:     cairoCenter,
		Bound:        circle,
		Area:         entity.EffectiveArea(circle, cairoCenter, 64),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BoundTypeCircle, updated.BoundType())

	info, err = restaurants.ReadDeliveryBoundInfo(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BoundTypeCircle, info.BoundType)
	assert.Nil(t, info.PolygonBound)
	require.NotNil(t, info.CircleBound)
	assert.InDelta(t, 1500, info.CircleBound.Radius, 0)
}

func TestRestaurantRepository_UpdateMissing(t *testing.T) {
	t.Parallel()

	restaurants := NewRestaurantRepository(NewStore())
	_, err := restaurants.UpdateDeliveryBound(context.Background(), repository.BoundUpdate{
		RestaurantID: uuid.New(),
		Location:     cairoCenter,
		Bound:        entity.PointBound{},
	})
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)

	_, err = restaurants.ReadDeliveryBoundInfo(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)
}

func TestRestaurantRepository_FindRestaurantsIntersecting(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	restaurants := NewRestaurantRepository(store)
	zones := NewZoneRepository(store)

	// A: 2km circle around downtown Cairo.
	a := newRestaurant(t, restaurants, "A")
	circle, err := entity.NewCircleBound(2000)
	require.NoError(t, err)
	_, err = restaurants.UpdateDeliveryBound(ctx, repository.BoundUpdate{
		RestaurantID: a.ID,
		Location:     cairoCenter,
		Bound:        circle,
		Area:         entity.EffectiveArea(circle, cairoCenter, 64),
	})
	require.NoError(t, err)

	// B: polygon in Giza, away from the customer.
	b := newRestaurant(t, restaurants, "B")
	giza := geometry.Ring{{31.10, 29.95}, {31.15, 29.95}, {31.15, 30.00}, {31.10, 30.00}, {31.10, 29.95}}
	polygon, err := entity.NewPolygonBound(giza)
	require.NoError(t, err)
	_, err = restaurants.UpdateDeliveryBound(ctx, repository.BoundUpdate{
		RestaurantID: b.ID,
		Location:     geometry.NewPoint(31.13, 29.98),
		Bound:        polygon,
		Area:         entity.EffectiveArea(polygon, geometry.NewPoint(31.13, 29.98), 64),
	})
	require.NoError(t, err)

	customer := geometry.NewPoint(31.2400, 30.0500)

	t.Run("circle restaurant only", func(t *testing.T) {
		found, err := restaurants.FindRestaurantsIntersecting(ctx, customer, repository.RestaurantFilter{})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, a.ID, found[0].ID)
	})

	t.Run("shop type filter", func(t *testing.T) {
		found, err := restaurants.FindRestaurantsIntersecting(ctx, customer, repository.RestaurantFilter{ShopType: "grocery"})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("unset point", func(t *testing.T) {
		found, err := restaurants.FindRestaurantsIntersecting(ctx, geometry.NewPoint(0, 0), repository.RestaurantFilter{})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("point bound matches through its zone", func(t *testing.T) {
		zone := newZone(t, zones, "Central Cairo", centralCairo)
		c := newRestaurant(t, restaurants, "C")
		loc := geometry.NewPoint(31.3, 30.1)
		_, err := restaurants.UpdateDeliveryBound(ctx, repository.BoundUpdate{
			RestaurantID: c.ID,
			Location:     loc,
			Bound:        entity.PointBound{},
			ZoneID:       &zone.ID,
		})
		require.NoError(t, err)

		found, err := restaurants.FindRestaurantsIntersecting(ctx, customer, repository.RestaurantFilter{})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, a.ID, found[0].ID, "closest first")
		assert.Equal(t, c.ID, found[1].ID)
	})
}

func TestRestaurantRepository_RefreshZoneReferences(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	restaurants := NewRestaurantRepository(store)
	zones := NewZoneRepository(store)

	outer := newZone(t, zones, "Central Cairo", centralCairo)
	r := newRestaurant(t, restaurants, "R")
	_, err := restaurants.UpdateDeliveryBound(ctx, repository.BoundUpdate{
		RestaurantID: r.ID,
		Location:     cairoCenter,
		Bound:        entity.PointBound{},
		ZoneID:       &outer.ID,
	})
	require.NoError(t, err)

	inner := newZone(t, zones, "Downtown", downtown)
	changed, err := restaurants.RefreshZoneReferences(ctx, inner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	got, err := restaurants.FindRestaurantByID(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ZoneID)
	assert.Equal(t, inner.ID, *got.ZoneID)

	require.NoError(t, zones.SetZoneActive(ctx, inner.ID, false))
	require.NoError(t, zones.SetZoneActive(ctx, outer.ID, false))
	changed, err = restaurants.RefreshZoneReferences(ctx, inner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	got, err = restaurants.FindRestaurantByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ZoneID)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	tm := NewTransactionManager(store)
	zones := NewZoneRepository(store)

	errBoom := errors.New("boom")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewZoneRepository().CreateZone(ctx, &entity.Zone{Name: "Central Cairo", Polygon: centralCairo, IsActive: true}); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	zone, err := zones.FindZoneContaining(ctx, cairoCenter)
	require.NoError(t, err)
	assert.Nil(t, zone)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewZoneRepository().CreateZone(ctx, &entity.Zone{Name: "Central Cairo", Polygon: centralCairo, IsActive: true})
	})
	require.NoError(t, err)

	zone, err = zones.FindZoneContaining(ctx, cairoCenter)
	require.NoError(t, err)
	assert.NotNil(t, zone)
}

func TestRestaurantRepository_NoTornReads(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	restaurants := NewRestaurantRepository(store)
	r := newRestaurant(t, restaurants, "R")

	polygon, err := entity.NewPolygonBound(downtown)
	require.NoError(t, err)
	circle, err := entity.NewCircleBound(1500)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 200 {
			var bound entity.DeliveryBound = polygon
			if i%2 == 0 {
				bound = circle
			}
			_, err := restaurants.UpdateDeliveryBound(ctx, repository.BoundUpdate{
				RestaurantID: r.ID,
				Location:     cairoCenter,
				Bound:        bound,
				Area:         entity.EffectiveArea(bound, cairoCenter, 16),
			})
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			info, err := restaurants.ReadDeliveryBoundInfo(ctx, r.ID)
			if !assert.NoError(t, err) {
				return
			}
			switch info.BoundType {
			case entity.BoundTypePolygon:
				assert.Nil(t, info.CircleBound)
				assert.NotNil(t, info.PolygonBound)
			case entity.BoundTypeCircle:
				assert.Nil(t, info.PolygonBound)
				assert.NotNil(t, info.CircleBound)
			}
		}
	}()
	wg.Wait()
}
