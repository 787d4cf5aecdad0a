// Package metrics exposes Prometheus collectors for delivery-zone operations and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"deliveryzone/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "deliveryzone"

// Prometheus implements service.Metrics on its own registry.
type Prometheus struct {
	registry *prometheus.Registry

	boundUpdates        *prometheus.CounterVec
	zoneLookups         *prometheus.CounterVec
	nearbyResults       prometheus.Histogram
	zoneCacheRequests   *prometheus.CounterVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewPrometheus registers all collectors, including Go runtime and process collectors, on a fresh registry.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		boundUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bounds",
			Name:      "updates_total",
			Help:      "Delivery bound update attempts by bound type and outcome",
		}, []string{"bound_type", "outcome"}),
		zoneLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "zones",
			Name:      "lookups_total",
			Help:      "Zone containment lookups by result",
		}, []string{"result"}),
		nearbyResults: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "discovery",
			Name:      "nearby_results",
			Help:      "Number of restaurants returned per nearby search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		zoneCacheRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "zone_requests_total",
			Help:      "Active zone cache reads by result",
		}, []string{"result"}),
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "path"}),
	}
}

func (p *Prometheus) BoundUpdated(boundType, outcome string) {
	p.boundUpdates.WithLabelValues(boundType, outcome).Inc()
}

func (p *Prometheus) ZoneLookup(found bool) {
	p.zoneLookups.WithLabelValues(hitLabel(found, "found", "none")).Inc()
}

func (p *Prometheus) NearbySearch(results int) {
	p.nearbyResults.Observe(float64(results))
}

func (p *Prometheus) ZoneCacheAccess(hit bool) {
	p.zoneCacheRequests.WithLabelValues(hitLabel(hit, "hit", "miss")).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Middleware records request count and latency labelled by route pattern.
func (p *Prometheus) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let the error handler write the final status before it is recorded.
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			p.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
			p.httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

func hitLabel(ok bool, yes, no string) string {
	if ok {
		return yes
	}

	return no
}

// Module provides the Prometheus metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewPrometheus,
		func(p *Prometheus) service.Metrics { return p },
	),
)
