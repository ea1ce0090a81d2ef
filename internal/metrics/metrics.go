// Package metrics exposes the planner's Prometheus collectors on a dedicated registry.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is served on /metrics.
	Registry = prometheus.NewRegistry()

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Placements counts placement attempts by outcome.
	Placements = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "planner_placements_total", Help: "Pallet placement attempts by outcome."},
		[]string{"outcome"},
	)
	// PlacedPallets counts slots occupied by successful placements.
	PlacedPallets = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "planner_placed_pallets_total", Help: "Slots occupied by successful placements."},
	)
	Evictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "planner_evictions_total", Help: "Slot evictions by outcome."},
		[]string{"outcome"},
	)
	ShapeChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "planner_shape_changes_total", Help: "Slot shape changes by target shape and outcome."},
		[]string{"shape", "outcome"},
	)
	// PersistenceFailures counts mutations that succeeded in memory but were not saved.
	PersistenceFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "planner_persistence_failures_total", Help: "Mutations that could not be persisted."},
		[]string{"operation"},
	)

	RouteDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planner_route_duration_seconds",
			Help:    "Route computation time in seconds.",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"kind"},
	)
	RoutePasses = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "planner_route_two_opt_passes",
			Help:    "2-opt passes per optimized route.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
	RouteCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "planner_route_cache_total", Help: "Route cache lookups by result."},
		[]string{"result"},
	)
)

const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeNoSpace  = "insufficient_space"
	OutcomeError    = "error"
)

var regOnce sync.Once

// RegisterDefault registers every collector plus the Go and process collectors. Safe to call repeatedly.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(
			HTTPRequests,
			HTTPDuration,
			Placements,
			PlacedPallets,
			Evictions,
			ShapeChanges,
			PersistenceFailures,
			RouteDuration,
			RoutePasses,
			RouteCache,
		)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
