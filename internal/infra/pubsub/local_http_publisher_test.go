package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"deliveryzone/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishDeliveryBoundChanged(t *testing.T) {
	t.Parallel()

	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	radius := 1500.0
	event := &service.DeliveryBoundChangedEvent{
		RequestID:    "req-1",
		RestaurantID: "c1f7a1a4-1b7e-4a36-8d4f-1c1b7b0c5e10",
		BoundType:    "circle",
		Latitude:     30.0444,
		Longitude:    31.2357,
		CircleRadius: &radius,
		OccurredAt:   1700000000000,
	}

	require.NoError(t, publisher.PublishDeliveryBoundChanged(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, event.RestaurantID, received.Message.OrderingKey)
	assert.Equal(t, "circle", received.Message.Attributes["bound_type"])
	assert.Equal(t, "delivery_bound_changed", received.Message.Attributes["event_type"])
	assert.NotContains(t, received.Message.Attributes, "zone_id")
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.DeliveryBoundChangedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishDeliveryBoundChanged(context.Background(), &service.DeliveryBoundChangedEvent{RestaurantID: "r1", BoundType: "point"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
