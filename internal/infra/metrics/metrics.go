// Package metrics owns the Prometheus registry and the service's collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"ecommerce/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const namespace = "ecommerce"

// Metrics holds a private registry so tests and multiple apps never collide on the default one.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	purchases      *prometheus.CounterVec
	unitsSold      prometheus.Counter
	events         *prometheus.CounterVec
}

// Params defines the dependencies for Metrics
type Params struct {
	fx.In

	DB *gorm.DB `optional:"true"`
}

// New builds the registry with runtime, process and connection pool collectors.
func New(params Params) (*Metrics, error) {
	m := newMetrics()

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if params.DB != nil {
		sqlDB, err := params.DB.DB()
		if err != nil {
			return nil, err
		}
		m.registry.MustRegister(collectors.NewDBStatsCollector(sqlDB, namespace))
	}

	return m, nil
}

func newMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latency of HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		purchases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "purchases_total",
				Help:      "Purchase attempts by outcome",
			},
			[]string{"outcome"},
		),
		unitsSold: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "units_sold_total",
				Help:      "Units removed from stock by successful purchases",
			},
		),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "product_events_total",
				Help:      "Published product events by type and result",
			},
			[]string{"type", "result"},
		),
	}

	m.registry.MustRegister(m.requestsTotal, m.requestLatency, m.purchases, m.unitsSold, m.events)

	return m
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// RecordPurchase implements service.CatalogMetrics.
func (m *Metrics) RecordPurchase(outcome service.PurchaseOutcome, quantity int) {
	m.purchases.WithLabelValues(string(outcome)).Inc()
	if outcome == service.PurchaseSucceeded && quantity > 0 {
		m.unitsSold.Add(float64(quantity))
	}
}

// RecordEventPublished implements service.CatalogMetrics.
func (m *Metrics) RecordEventPublished(eventType service.ProductEventType, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.events.WithLabelValues(string(eventType), result).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Module provides Metrics as both the concrete type and service.CatalogMetrics.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		func(m *Metrics) service.CatalogMetrics { return m },
	),
)
