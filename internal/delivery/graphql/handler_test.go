package graphql

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"deliveryzone/internal/domain/entity"
	mockusecase "deliveryzone/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*Handler, *mockusecase.MockZoneUsecase) {
	t.Helper()

	zoneUC := mockusecase.NewMockZoneUsecase(t)
	h, err := NewHandler(HandlerParams{
		BoundUC:     mockusecase.NewMockDeliveryBoundUsecase(t),
		ZoneUC:      zoneUC,
		DiscoveryUC: mockusecase.NewMockDiscoveryUsecase(t),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return h, zoneUC
}

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Serve(echo.New().NewContext(req, rec)))

	return rec
}

func TestHandler_Serve(t *testing.T) {
	t.Parallel()

	t.Run("executes query", func(t *testing.T) {
		t.Parallel()

		h, zoneUC := newTestHandler(t)
		zoneUC.EXPECT().ListZones(mock.Anything).Return([]*entity.Zone{}, nil)

		rec := post(t, h, `{"query":"query Zones { zones { _id } }","operationName":"Zones"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"zones":[]}}`, rec.Body.String())
	})

	t.Run("syntax error is a graphql error", func(t *testing.T) {
		t.Parallel()

		h, _ := newTestHandler(t)
		rec := post(t, h, `{"query":"{ zones { "}`)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Errors []map[string]any `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Errors)
	})

	t.Run("empty query", func(t *testing.T) {
		t.Parallel()

		h, _ := newTestHandler(t)
		rec := post(t, h, `{"variables":{}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
