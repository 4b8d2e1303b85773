// Package observability provides Prometheus metrics for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "outfind_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "outfind_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// FeedRequestsTotal counts feed compositions by result.
	FeedRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "outfind_feed_requests_total",
		Help: "Total number of feed composition requests by result",
	}, []string{"result"})

	// OutfitGenerationsTotal counts outfit generations by result.
	OutfitGenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "outfind_outfit_generations_total",
		Help: "Total number of outfit generation requests by result",
	}, []string{"result"})

	// OutfitEmptySlots counts requested categories with no eligible item.
	OutfitEmptySlots = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outfind_outfit_empty_slots_total",
		Help: "Total number of requested outfit categories with no eligible item",
	})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		ObserveQuery(operation, table, start)
	}
}
