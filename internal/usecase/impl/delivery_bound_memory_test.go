package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"deliveryzone/config"
	"deliveryzone/internal/domain/entity"
	domainerrors "deliveryzone/internal/domain/errors"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/domain/repository"
	"deliveryzone/internal/infra/persistence/memory"
	mockService "deliveryzone/internal/mocks/service"
	"deliveryzone/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storeFixtures wires the services against the in-memory store.
type storeFixtures struct {
	bounds      usecase.DeliveryBoundUsecase
	discovery   usecase.DiscoveryUsecase
	restaurants usecase.RestaurantUsecase
	zones       repository.ZoneRepository
}

func createStoreFixtures(t *testing.T) storeFixtures {
	store := memory.NewStore()
	zoneRepo := memory.NewZoneRepository(store)
	restaurantRepo := memory.NewRestaurantRepository(store)

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishDeliveryBoundChanged(mock.Anything, mock.Anything).Return(nil).Maybe()

	metrics := mockService.NewMockMetrics(t)
	metrics.EXPECT().BoundUpdated(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().ZoneLookup(mock.Anything).Maybe()
	metrics.EXPECT().NearbySearch(mock.Anything).Maybe()

	cfg := &config.Config{}
	cfg.DeliveryZone.MaxRadiusMeters = 50000
	cfg.DeliveryZone.CircleIndexVertices = 64

	return storeFixtures{
		bounds: NewDeliveryBoundService(DeliveryBoundServiceParams{
			ZoneRepo:       zoneRepo,
			RestaurantRepo: restaurantRepo,
			Publisher:      publisher,
			Metrics:        metrics,
			Config:         cfg,
			Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		discovery:   NewDiscoveryService(restaurantRepo, metrics),
		restaurants: NewRestaurantService(restaurantRepo),
		zones:       zoneRepo,
	}
}

func (f storeFixtures) createRestaurant(t *testing.T, name string) *entity.Restaurant {
	t.Helper()

	restaurant, err := f.restaurants.CreateRestaurant(context.Background(), &usecase.CreateRestaurantInput{
		Name:     name,
		Address:  name + " street",
		ShopType: "restaurant",
	})
	require.NoError(t, err)

	return restaurant
}

func TestDeliveryBounds_PolygonThenCircleRoundTrip(t *testing.T) {
	fx := createStoreFixtures(t)
	ctx := context.Background()
	restaurant := fx.createRestaurant(t, "Koshary Corner")

	polygon := []geometry.LatLng{
		{Lat: 30.00, Lng: 31.20},
		{Lat: 30.00, Lng: 31.30},
		{Lat: 30.10, Lng: 31.30},
		{Lat: 30.10, Lng: 31.20},
	}

	result, err := fx.bounds.UpdateDeliveryBoundsAndLocation(ctx, &usecase.UpdateBoundsInput{
		RestaurantID: restaurant.ID,
		Location:     cairoLocation,
		BoundType:    "polygon",
		PolygonRing:  polygon,
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)

	info, err := fx.bounds.GetRestaurantDeliveryZoneInfo(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BoundTypePolygon, info.BoundType)
	require.Len(t, info.PolygonBound, 5)
	assert.Equal(t, info.PolygonBound[0], info.PolygonBound[4])
	assert.Nil(t, info.CircleBound)
	require.NotNil(t, info.Location)
	assert.Equal(t, cairoLocation.Point(), *info.Location)

	result, err = fx.bounds.UpdateDeliveryBoundsAndLocation(ctx, &usecase.UpdateBoundsInput{
		RestaurantID:       restaurant.ID,
		Location:           cairoLocation,
		BoundType:          "circle",
		CircleRadiusMeters: radius(1500),
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)

	info, err = fx.bounds.GetRestaurantDeliveryZoneInfo(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BoundTypeCircle, info.BoundType)
	require.NotNil(t, info.CircleBound)
	assert.Equal(t, 1500.0, info.CircleBound.Radius)
	assert.Nil(t, info.PolygonBound)
}

func TestDeliveryBounds_PointRequiresZone(t *testing.T) {
	fx := createStoreFixtures(t)
	ctx := context.Background()
	restaurant := fx.createRestaurant(t, "Nile Grill")

	input := &usecase.UpdateBoundsInput{
		RestaurantID: restaurant.ID,
		Location:     cairoLocation,
		BoundType:    "point",
	}

	result, err := fx.bounds.UpdateDeliveryBoundsAndLocation(ctx, input)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, domainerrors.ErrNoDeliveryAreaDefined.ErrorCode(), result.Code)

	zone := &entity.Zone{Name: "Central Cairo", Polygon: cairoZone.Polygon, IsActive: true}
	require.NoError(t, fx.zones.CreateZone(ctx, zone))

	result, err = fx.bounds.UpdateDeliveryBoundsAndLocation(ctx, input)
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)
	require.NotNil(t, result.Data.ZoneID)
	assert.Equal(t, zone.ID, *result.Data.ZoneID)

	nearby, err := fx.discovery.NearbyRestaurants(ctx, geometry.LatLng{Lat: 30.05, Lng: 31.24}, "")
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, restaurant.ID, nearby[0].ID)
}

func TestDeliveryBounds_UnknownRestaurant(t *testing.T) {
	fx := createStoreFixtures(t)

	result, err := fx.bounds.UpdateDeliveryBoundsAndLocation(context.Background(), &usecase.UpdateBoundsInput{
		RestaurantID:       uuid.New(),
		Location:           cairoLocation,
		BoundType:          "circle",
		CircleRadiusMeters: radius(500),
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, domainerrors.ErrRestaurantNotFound.ErrorCode(), result.Code)

	_, err = fx.bounds.GetRestaurantDeliveryZoneInfo(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestDiscovery_NearbyCircleButNotDistantPolygon(t *testing.T) {
	fx := createStoreFixtures(t)
	ctx := context.Background()

	a := fx.createRestaurant(t, "A")
	b := fx.createRestaurant(t, "B")

	result, err := fx.bounds.UpdateDeliveryBoundsAndLocation(ctx, &usecase.UpdateBoundsInput{
		RestaurantID:       a.ID,
		Location:           cairoLocation,
		BoundType:          "circle",
		CircleRadiusMeters: radius(2000),
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)

	// Giza, well west of downtown Cairo.
	result, err = fx.bounds.UpdateDeliveryBoundsAndLocation(ctx, &usecase.UpdateBoundsInput{
		RestaurantID: b.ID,
		Location:     geometry.LatLng{Lat: 29.99, Lng: 31.15},
		BoundType:    "polygon",
		PolygonRing: []geometry.LatLng{
			{Lat: 29.97, Lng: 31.12},
			{Lat: 29.97, Lng: 31.17},
			{Lat: 30.01, Lng: 31.17},
			{Lat: 30.01, Lng: 31.12},
		},
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)

	nearby, err := fx.discovery.NearbyRestaurants(ctx, geometry.LatLng{Lat: 30.045, Lng: 31.236}, "")
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(nearby))
	for _, r := range nearby {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, a.ID)
	assert.NotContains(t, ids, b.ID)
}

func TestDiscovery_UnsetAndInvalidPoints(t *testing.T) {
	fx := createStoreFixtures(t)

	nearby, err := fx.discovery.NearbyRestaurants(context.Background(), geometry.LatLng{}, "")
	require.NoError(t, err)
	assert.Empty(t, nearby)

	_, err = fx.discovery.NearbyRestaurants(context.Background(), geometry.LatLng{Lat: 100, Lng: 31}, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGeometry)
}
