// Package metrics holds the Prometheus collectors of the catalog service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// gRPC
	GRPCRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_grpc_requests_total",
			Help: "Total number of gRPC requests by method and status code",
		},
		[]string{"method", "code"},
	)

	GRPCPanics = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_grpc_panics_total",
			Help: "Handler panics recovered by the gRPC server, by method",
		},
		[]string{"method"},
	)

	GRPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_grpc_request_duration_seconds",
			Help:    "Duration of gRPC requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Read side
	FeedCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_feed_candidates",
			Help:    "Number of de-duplicated candidates per feed request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	RelatedTierHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_related_tier_hits_total",
			Help: "Recommendations accepted per cascade tier",
		},
		[]string{"tier"}, // "direct", "main_category", "category", "top_sellers"
	)

	PriceResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_price_resolutions_total",
			Help: "Per-currency price resolutions by source",
		},
		[]string{"source"}, // "main", "manual", "converted"
	)

	// Write side
	VariantsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_variants_generated_total",
			Help: "Variants created from parameter combinations",
		},
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_circuit_breaker_requests_total",
			Help: "Requests through a circuit breaker by result",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)
)

// RecordGRPCRequest records one finished unary call.
func RecordGRPCRequest(method, code string, duration time.Duration) {
	GRPCRequests.WithLabelValues(method, code).Inc()
	GRPCRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}
