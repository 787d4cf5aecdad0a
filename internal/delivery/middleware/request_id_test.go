package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"deliveryzone/config"
	deliverycontext "deliveryzone/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "reuses caller id", incoming: "req-123", keep: true},
		{name: "generates when missing", incoming: "", keep: false},
		{name: "replaces oversized id", incoming: strings.Repeat("x", deliverycontext.MaxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

			e := echo.New()
			var seenInContext string
			e.GET("/", func(c echo.Context) error {
				ctx := c.Request().Context()
				seenInContext = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLoggerOrDefault(ctx, nil).Info("inside handler")

				return c.NoContent(http.StatusNoContent)
			}, m.Process)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, seenInContext)
			assert.Contains(t, logs.String(), `"request_id":"`+got+`"`)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				require.NoError(t, err)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	t.Parallel()

	for _, debug := range []bool{true, false} {
		var logs bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&logs, nil))
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		e.GET("/zones", func(c echo.Context) error {
			return c.NoContent(http.StatusTeapot)
		}, NewLoggerMiddleware(logger, cfg).Handle)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/zones?active=true", nil))

		if debug {
			assert.Contains(t, logs.String(), `"msg":"HTTP Request"`)
			assert.Contains(t, logs.String(), `"status":418`)
			assert.Contains(t, logs.String(), `"level":"WARN"`)
			assert.Contains(t, logs.String(), `"query":"active=true"`)
		} else {
			assert.Empty(t, logs.String())
		}
	}
}
