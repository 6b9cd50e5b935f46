// Package metrics wires Prometheus collectors into the layout engine's
// observability hooks, so a compute() call and its cache lookups show up
// on the default registry without pkg/layout ever importing Prometheus
// directly.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/reactome-tools/reaction-layout/pkg/observability"
)

var (
	computeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reaction_layout_compute_total",
			Help: "Total number of layout compute() calls, by outcome",
		},
		[]string{"outcome"},
	)

	computeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reaction_layout_compute_duration_seconds",
			Help:    "Wall-clock duration of a full layout compute() call",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	stepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reaction_layout_compute_step_duration_seconds",
			Help:    "Wall-clock duration of one compute() phase",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"phase"},
	)

	entityCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reaction_layout_entity_count",
			Help:    "Number of participants passed into one compute() call",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
		},
	)

	cacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reaction_layout_cache_events_total",
			Help: "Cache hits, misses, and sets, by key type",
		},
		[]string{"key_type", "event"},
	)

	cacheSetBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reaction_layout_cache_set_bytes",
			Help:    "Size in bytes of values written to the cache",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		},
		[]string{"key_type"},
	)
)

func init() {
	prometheus.MustRegister(computeTotal, computeDuration, stepDuration, entityCount, cacheEvents, cacheSetBytes)
}

// Register installs Prometheus-backed hooks as the active
// observability.LayoutHooks and observability.CacheHooks.
func Register() {
	observability.SetLayoutHooks(layoutHooks{})
	observability.SetCacheHooks(cacheHooks{})
}

type layoutHooks struct{}

func (layoutHooks) OnComputeStart(_ context.Context, _ string, entities int) {
	entityCount.Observe(float64(entities))
}

func (layoutHooks) OnComputeStep(_ context.Context, _ string, phase string, d time.Duration) {
	stepDuration.WithLabelValues(phase).Observe(d.Seconds())
}

func (layoutHooks) OnComputeComplete(_ context.Context, _ string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	computeTotal.WithLabelValues(outcome).Inc()
	computeDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

type cacheHooks struct{}

func (cacheHooks) OnCacheHit(_ context.Context, keyType string) {
	cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (cacheHooks) OnCacheMiss(_ context.Context, keyType string) {
	cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (cacheHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	cacheEvents.WithLabelValues(keyType, "set").Inc()
	cacheSetBytes.WithLabelValues(keyType).Observe(float64(size))
}
