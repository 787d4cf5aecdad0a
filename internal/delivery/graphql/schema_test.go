package graphql

import (
	"context"
	"io"
	"log/slog"
	"testing"

	deliverycontext "deliveryzone/internal/delivery/context"
	"deliveryzone/internal/domain/constants"
	"deliveryzone/internal/domain/entity"
	domainerrors "deliveryzone/internal/domain/errors"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/domain/service"
	"deliveryzone/internal/errors"
	mockusecase "deliveryzone/internal/mocks/usecase"
	"deliveryzone/internal/usecase"

	"github.com/google/uuid"
	gql "github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var restaurantID = uuid.MustParse("6f1d3c2a-9a57-4a43-9d39-2d6d0b7a4c11")

type schemaFixtures struct {
	schema      gql.Schema
	boundUC     *mockusecase.MockDeliveryBoundUsecase
	zoneUC      *mockusecase.MockZoneUsecase
	discoveryUC *mockusecase.MockDiscoveryUsecase
}

func newSchemaFixtures(t *testing.T) *schemaFixtures {
	t.Helper()

	f := &schemaFixtures{
		boundUC:     mockusecase.NewMockDeliveryBoundUsecase(t),
		zoneUC:      mockusecase.NewMockZoneUsecase(t),
		discoveryUC: mockusecase.NewMockDiscoveryUsecase(t),
	}

	schema, err := NewSchema(NewResolver(f.boundUC, f.zoneUC, f.discoveryUC, slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	f.schema = schema

	return f
}

func (f *schemaFixtures) run(ctx context.Context, query string, variables map[string]any) *gql.Result {
	return gql.Do(gql.Params{
		Schema:         f.schema,
		RequestString:  query,
		VariableValues: variables,
		Context:        ctx,
	})
}

func vendorContext() context.Context {
	return deliverycontext.WithClaims(context.Background(), &service.Claims{
		Roles: []string{constants.RoleVendor},
		Type:  "access",
	})
}

func field(t *testing.T, result *gql.Result, name string) map[string]any {
	t.Helper()

	require.Empty(t, result.Errors)
	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	value, ok := data[name].(map[string]any)
	require.True(t, ok, "field %s is %v", name, data[name])

	return value
}

func errorCode(t *testing.T, result *gql.Result) string {
	t.Helper()

	require.NotEmpty(t, result.Errors)
	code, _ := result.Errors[0].Extensions["code"].(string)

	return code
}

func TestSchema_GetRestaurantDeliveryZoneInfo(t *testing.T) {
	t.Parallel()

	const query = `query($id: ID!) {
		getRestaurantDeliveryZoneInfo(id: $id) {
			boundType
			deliveryBounds { coordinates }
			location { coordinates }
			circleBounds { radius }
			address
		}
	}`

	t.Run("polygon bound in GeoJSON order", func(t *testing.T) {
		t.Parallel()

		f := newSchemaFixtures(t)
		loc := geometry.NewPoint(31.25, 30.02)
		f.boundUC.EXPECT().GetRestaurantDeliveryZoneInfo(mock.Anything, restaurantID).Return(&entity.DeliveryBoundInfo{
			Address:      "Downtown",
			BoundType:    entity.BoundTypePolygon,
			Location:     &loc,
			PolygonBound: geometry.Ring{{31.2, 30}, {31.3, 30}, {31.3, 30.1}, {31.2, 30}},
		}, nil)

		info := field(t, f.run(context.Background(), query, map[string]any{"id": restaurantID.String()}), "getRestaurantDeliveryZoneInfo")

		assert.Equal(t, "polygon", info["boundType"])
		assert.Equal(t, "Downtown", info["address"])
		assert.Nil(t, info["circleBounds"])
		assert.Equal(t, []any{31.25, 30.02}, info["location"].(map[string]any)["coordinates"])

		rings := info["deliveryBounds"].(map[string]any)["coordinates"].([]any)
		require.Len(t, rings, 1)
		outer := rings[0].([]any)
		require.Len(t, outer, 4)
		assert.Equal(t, []any{31.2, 30.0}, outer[0])
	})

	t.Run("circle bound", func(t *testing.T) {
		t.Parallel()

		f := newSchemaFixtures(t)
		f.boundUC.EXPECT().GetRestaurantDeliveryZoneInfo(mock.Anything, restaurantID).Return(&entity.DeliveryBoundInfo{
			BoundType:   entity.BoundTypeCircle,
			CircleBound: &entity.CircleInfo{Radius: 750},
		}, nil)

		info := field(t, f.run(context.Background(), query, map[string]any{"id": restaurantID.String()}), "getRestaurantDeliveryZoneInfo")

		assert.Equal(t, map[string]any{"radius": 750.0}, info["circleBounds"])
		assert.Nil(t, info["deliveryBounds"])
		assert.Nil(t, info["location"])
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		f := newSchemaFixtures(t)
		f.boundUC.EXPECT().GetRestaurantDeliveryZoneInfo(mock.Anything, restaurantID).Return(nil, domainerrors.ErrRestaurantNotFound)

		result := f.run(context.Background(), query, map[string]any{"id": restaurantID.String()})

		assert.Equal(t, "RESTAURANT_NOT_FOUND", errorCode(t, result))
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()

		f := newSchemaFixtures(t)
		result := f.run(context.Background(), query, map[string]any{"id": "42"})

		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, result))
	})
}

func TestSchema_Zones(t *testing.T) {
	t.Parallel()

	f := newSchemaFixtures(t)
	zone := &entity.Zone{
		ID:       uuid.MustParse("0b7a2d4e-2f1c-4a4b-8f6a-5a6d2f7c9e01"),
		Name:     "Zamalek",
		Polygon:  geometry.Ring{{31.21, 30.05}, {31.23, 30.05}, {31.23, 30.07}, {31.21, 30.05}},
		IsActive: true,
	}
	f.zoneUC.EXPECT().ListZones(mock.Anything).Return([]*entity.Zone{zone}, nil)

	result := f.run(context.Background(), `{ zones { _id title isActive location { coordinates } } }`, nil)
	require.Empty(t, result.Errors)

	zones := result.Data.(map[string]any)["zones"].([]any)
	require.Len(t, zones, 1)
	got := zones[0].(map[string]any)
	assert.Equal(t, zone.ID.String(), got["_id"])
	assert.Equal(t, "Zamalek", got["title"])
	assert.Equal(t, true, got["isActive"])
}

func TestSchema_NearByRestaurants(t *testing.T) {
	t.Parallel()

	f := newSchemaFixtures(t)
	circle, err := entity.NewCircleBound(2000)
	require.NoError(t, err)
	restaurant := entity.NewRestaurant("A", "", "grocery")
	restaurant.Location = geometry.NewPoint(31.2357, 30.0444)
	restaurant.Bound = circle

	f.discoveryUC.EXPECT().
		NearbyRestaurants(mock.Anything, geometry.LatLng{Lat: 30.0444, Lng: 31.2357}, "grocery").
		Return([]*entity.Restaurant{restaurant}, nil)

	result := f.run(context.Background(),
		`{ nearByRestaurants(latitude: 30.0444, longitude: 31.2357, shopType: "grocery") { _id name boundType circleBounds { radius } } }`, nil)
	require.Empty(t, result.Errors)

	restaurants := result.Data.(map[string]any)["nearByRestaurants"].([]any)
	require.Len(t, restaurants, 1)
	got := restaurants[0].(map[string]any)
	assert.Equal(t, restaurant.ID.String(), got["_id"])
	assert.Equal(t, "circle", got["boundType"])
}

func TestSchema_UpdateDeliveryBoundsAndLocation(t *testing.T) {
	t.Parallel()

	const literalMutation = `mutation {
		updateDeliveryBoundsAndLocation(
			id: "6f1d3c2a-9a57-4a43-9d39-2d6d0b7a4c11",
			location: {latitude: 30.02, longitude: 31.25},
			boundType: "polygon",
			bounds: [[31.2, 30], [31.3, 30], [31.3, 30.1]]
		) { success message code data { _id boundType deliveryBounds { coordinates } } }
	}`

	const variableMutation = `mutation($id: ID!, $location: LocationInput!, $boundType: String!, $bounds: Coordinates, $circleRadius: Float) {
		updateDeliveryBoundsAndLocation(id: $id, location: $location, boundType: $boundType, bounds: $bounds, circleRadius: $circleRadius) {
			success message code
		}
	}`

	t.Run("anonymous caller", func(t *testing.T) {
		t.Parallel()

		f := newSchemaFixtures(t)
		result := f.run(context.Background(), literalMutation, nil)

		assert.Equal(t, "UNAUTHENTICATED", errorCode(t, result))
	})

	t.Run("caller without role", func(t *testing.T) {
		t.Parallel()

		f := newSchemaFixtures(t)
		ctx := deliverycontext.WithClaims(context.Background(), &service.Claims{Roles: []string{"customer"}})
		result := f.run(ctx, literalMutation, nil)

		assert.Equal(t, "FORBIDDEN", errorCode(t, result))
	})

	t.Run("single ring literal", func(t *testing.T) {
		t.Parallel()

		f := newSchemaFixtures(t)
		bound, err := entity.NewPolygonBound(geometry.Ring{{31.2, 30}, {31.3, 30}, {31.3, 30.1}, {31.2, 30}})
		require.NoError(t, err)
		restaurant := entity.NewRestaurant("B", "", "restaurant")
		restaurant.ID = restaurantID
		restaurant.Location = geometry.NewPoint(31.25, 30.02)
		restaurant.Bound = bound

		f.boundUC.EXPECT().
			UpdateDeliveryBoundsAndLocation(mock.Anything, &usecase.UpdateBoundsInput{
				RestaurantID: restaurantID,
				Location:     geometry.LatLng{Lat: 30.02, Lng: 31.25},
				BoundType:    "polygon",
				PolygonRing:  []geometry.LatLng{{Lat: 30, Lng: 31.2}, {Lat: 30, Lng: 31.3}, {Lat: 30.1, Lng: 31.3}},
			}).
			Return(&usecase.UpdateBoundsResult{Success: true, Message: "Delivery bounds and location updated", Data: restaurant}, nil)

		got := field(t, f.run(vendorContext(), literalMutation, nil), "updateDeliveryBoundsAndLocation")

		assert.Equal(t, true, got["success"])
		assert.Nil(t, got["code"])
		data := got["data"].(map[string]any)
		assert.Equal(t, restaurantID.String(), data["_id"])
		assert.Len(t, data["deliveryBounds"].(map[string]any)["coordinates"].([]any)[0], 4)
	})

	t.Run("polygon variables use the outer ring", func(t *testing.T) {
		t.Parallel()

		f := newSchemaFixtures(t)
		f.boundUC.EXPECT().
			UpdateDeliveryBoundsAndLocation(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateBoundsInput) bool {
				return len(in.PolygonRing) == 4 && in.PolygonRing[1] == geometry.LatLng{Lat: 30, Lng: 31.3}
			})).
			Return(&usecase.UpdateBoundsResult{Success: true}, nil)

		result := f.run(vendorContext(), variableMutation, map[string]any{
			"id":        restaurantID.String(),
			"location":  map[string]any{"latitude": 30.02, "longitude": 31.25},
			"boundType": "polygon",
			"bounds":    []any{[]any{[]any{31.2, 30.0}, []any{31.3, 30.0}, []any{31.3, 30.1}, []any{31.2, 30.0}}},
		})

		assert.Equal(t, true, field(t, result, "updateDeliveryBoundsAndLocation")["success"])
	})

	t.Run("circle radius", func(t *testing.T) {
		t.Parallel()

		f := newSchemaFixtures(t)
		f.boundUC.EXPECT().
			UpdateDeliveryBoundsAndLocation(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateBoundsInput) bool {
				return in.BoundType == "radius" && in.CircleRadiusMeters != nil && *in.CircleRadiusMeters == 1200 && in.PolygonRing == nil
			})).
			Return(&usecase.UpdateBoundsResult{Success: true}, nil)

		result := f.run(vendorContext(), variableMutation, map[string]any{
			"id":           restaurantID.String(),
			"location":     map[string]any{"latitude": 30.02, "longitude": 31.25},
			"boundType":    "radius",
			"circleRadius": 1200,
		})

		assert.Equal(t, true, field(t, result, "updateDeliveryBoundsAndLocation")["success"])
	})

	t.Run("point outside every zone", func(t *testing.T) {
		t.Parallel()

		f := newSchemaFixtures(t)
		f.boundUC.EXPECT().UpdateDeliveryBoundsAndLocation(mock.Anything, mock.Anything).Return(&usecase.UpdateBoundsResult{
			Success: false,
			Message: domainerrors.ErrNoDeliveryAreaDefined.Message(),
			Code:    domainerrors.ErrNoDeliveryAreaDefined.ErrorCode(),
		}, nil)

		result := f.run(vendorContext(), variableMutation, map[string]any{
			"id":        restaurantID.String(),
			"location":  map[string]any{"latitude": 1, "longitude": 1},
			"boundType": "point",
		})

		got := field(t, result, "updateDeliveryBoundsAndLocation")
		assert.Equal(t, false, got["success"])
		assert.Equal(t, "NO_DELIVERY_AREA_DEFINED", got["code"])
		assert.Equal(t, noZoneMessage, got["message"])
	})

	t.Run("store failure is not leaked", func(t *testing.T) {
		t.Parallel()

		f := newSchemaFixtures(t)
		f.boundUC.EXPECT().UpdateDeliveryBoundsAndLocation(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("pq: too many connections"), "update"))

		result := f.run(vendorContext(), literalMutation, nil)

		assert.Equal(t, "INTERNAL_ERROR", errorCode(t, result))
		assert.NotContains(t, result.Errors[0].Message, "too many connections")
	})

	t.Run("bounds must be numbers", func(t *testing.T) {
		t.Parallel()

		f := newSchemaFixtures(t)
		result := f.run(vendorContext(), `mutation {
			updateDeliveryBoundsAndLocation(
				id: "6f1d3c2a-9a57-4a43-9d39-2d6d0b7a4c11",
				location: {latitude: 30, longitude: 31},
				boundType: "polygon",
				bounds: [["east", 30]]
			) { success }
		}`, nil)

		assert.NotEmpty(t, result.Errors)
	})
}

func TestBoundsToRing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  any
		want []geometry.LatLng
	}{
		{name: "nil", raw: nil, want: nil},
		{name: "empty", raw: []any{}, want: nil},
		{
			name: "single ring",
			raw:  []any{[]any{31.0, 30.0}, []any{31.1, 30.0}},
			want: []geometry.LatLng{{Lat: 30, Lng: 31}, {Lat: 30, Lng: 31.1}},
		},
		{
			name: "polygon keeps outer ring",
			raw:  []any{[]any{[]any{31.0, 30.0}}, []any{[]any{1.0, 1.0}}},
			want: []geometry.LatLng{{Lat: 30, Lng: 31}},
		},
		{
			name: "short pairs are skipped",
			raw:  []any{[]any{31.0}, []any{31.1, 30.0}},
			want: []geometry.LatLng{{Lat: 30, Lng: 31.1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, boundsToRing(tt.raw))
		})
	}
}
