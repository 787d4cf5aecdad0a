package handler

import (
	"net/http"
	"testing"
	"time"

	"deliveryzone/internal/domain/entity"
	domainerrors "deliveryzone/internal/domain/errors"
	"deliveryzone/internal/domain/geometry"
	mockusecase "deliveryzone/internal/mocks/usecase"
	"deliveryzone/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var downtownZone = &entity.Zone{
	ID:        uuid.MustParse("0b7a2d4e-2f1c-4a4b-8f6a-5a6d2f7c9e01"),
	Name:      "Downtown",
	Polygon:   geometry.Ring{{31.1, 29.9}, {31.4, 29.9}, {31.4, 30.2}, {31.1, 29.9}},
	IsActive:  true,
	CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
}

const zoneBody = `{"name":"Downtown","polygon":[{"lat":29.9,"lng":31.1},{"lat":29.9,"lng":31.4},{"lat":30.2,"lng":31.4}]}`

func newZoneHandler(t *testing.T) (*ZoneHandler, *mockusecase.MockZoneUsecase) {
	t.Helper()

	zoneUC := mockusecase.NewMockZoneUsecase(t)

	return NewZoneHandler(ZoneHandlerParams{ZoneUC: zoneUC}), zoneUC
}

func TestZoneHandler_ListZones(t *testing.T) {
	t.Parallel()

	h, zoneUC := newZoneHandler(t)
	zoneUC.EXPECT().ListZones(mock.Anything).Return([]*entity.Zone{downtownZone}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/zones", "")
	require.NoError(t, h.ListZones(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	zones := decodeBody(t, rec)["data"].([]any)
	require.Len(t, zones, 1)
	zone := zones[0].(map[string]any)
	assert.Equal(t, "Downtown", zone["name"])
	assert.Equal(t, map[string]any{"lat": 29.9, "lng": 31.1}, zone["polygon"].([]any)[0])
}

func TestZoneHandler_CreateZone(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		h, zoneUC := newZoneHandler(t)
		zoneUC.EXPECT().
			CreateZone(mock.Anything, mock.MatchedBy(func(in *usecase.ZoneInput) bool {
				return in.Name == "Downtown" && len(in.Polygon) == 3 && in.Polygon[0] == geometry.LatLng{Lat: 29.9, Lng: 31.1}
			})).
			Return(downtownZone, nil)

		c, rec := newTestContext(http.MethodPost, "/", zoneBody)
		require.NoError(t, h.CreateZone(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("name conflict", func(t *testing.T) {
		t.Parallel()

		h, zoneUC := newZoneHandler(t)
		zoneUC.EXPECT().CreateZone(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrZoneNameConflict)

		c, rec := newTestContext(http.MethodPost, "/", zoneBody)
		require.NoError(t, h.CreateZone(c))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ZONE_NAME_CONFLICT", errorCode(t, rec))
	})

	t.Run("too few vertices", func(t *testing.T) {
		t.Parallel()

		h, _ := newZoneHandler(t)
		c, rec := newTestContext(http.MethodPost, "/", `{"name":"Tiny","polygon":[{"lat":1,"lng":1}]}`)
		require.NoError(t, h.CreateZone(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
	})

	t.Run("invalid geometry from use case", func(t *testing.T) {
		t.Parallel()

		h, zoneUC := newZoneHandler(t)
		zoneUC.EXPECT().CreateZone(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidGeometry.WithDetails("ring encloses no area"))

		c, rec := newTestContext(http.MethodPost, "/", zoneBody)
		require.NoError(t, h.CreateZone(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errInfo := decodeBody(t, rec)["error"].(map[string]any)
		assert.Equal(t, "INVALID_GEOMETRY", errInfo["code"])
		assert.Equal(t, "ring encloses no area", errInfo["details"])
	})
}

func TestZoneHandler_UpdateZone(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		h, zoneUC := newZoneHandler(t)
		zoneUC.EXPECT().UpdateZone(mock.Anything, downtownZone.ID, mock.Anything).Return(nil, domainerrors.ErrZoneNotFound)

		c, rec := newTestContext(http.MethodPut, "/", zoneBody, "id", downtownZone.ID.String())
		require.NoError(t, h.UpdateZone(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		h, _ := newZoneHandler(t)
		c, rec := newTestContext(http.MethodPut, "/", zoneBody, "id", "zone-1")
		require.NoError(t, h.UpdateZone(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestZoneHandler_SetZoneActive(t *testing.T) {
	t.Parallel()

	t.Run("deactivate", func(t *testing.T) {
		t.Parallel()

		h, zoneUC := newZoneHandler(t)
		inactive := *downtownZone
		inactive.IsActive = false
		zoneUC.EXPECT().SetZoneActive(mock.Anything, downtownZone.ID, false).Return(&inactive, nil)

		c, rec := newTestContext(http.MethodPatch, "/", `{"isActive":false}`, "id", downtownZone.ID.String())
		require.NoError(t, h.SetZoneActive(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, decodeBody(t, rec)["data"].(map[string]any)["isActive"])
	})

	t.Run("missing flag", func(t *testing.T) {
		t.Parallel()

		h, _ := newZoneHandler(t)
		c, rec := newTestContext(http.MethodPatch, "/", `{}`, "id", downtownZone.ID.String())
		require.NoError(t, h.SetZoneActive(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
