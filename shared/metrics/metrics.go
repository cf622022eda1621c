package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gymroom"

// Metrics holds the collectors for screen outcomes and backend calls.
type Metrics struct {
	registry *prometheus.Registry

	BookingsTotal   *prometheus.CounterVec
	FetchesTotal    *prometheus.CounterVec
	BackendDuration *prometheus.HistogramVec
	Notifications   *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		BookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking submissions by outcome kind",
		}, []string{"outcome"}),

		FetchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "room_fetches_total",
			Help:      "Room detail and list fetches by screen and outcome kind",
		}, []string{"screen", "outcome"}),

		BackendDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of requests to the gym backend",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),

		Notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notifications shown to users by level",
		}, []string{"level"}),
	}
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Outcome labels an error by its failure kind, "ok" for nil.
func Outcome(kind string, err error) string {
	if err == nil {
		return "ok"
	}

	if kind == "" {
		return "error"
	}

	return kind
}
