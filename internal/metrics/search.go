package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Search and autocomplete Prometheus metrics.
var (
	CodecOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skysearch",
			Name:      "codec_operations_total",
			Help:      "Search token encode/decode operations",
		},
		[]string{"op", "status"}, // op: "encode" / "decode"
	)

	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skysearch",
			Name:      "provider_requests_total",
			Help:      "Suggestion provider calls by outcome",
		},
		[]string{"provider", "status"}, // "ok" / "error" / "timeout" / "canceled"
	)

	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "skysearch",
			Name:      "provider_request_duration_seconds",
			Help:      "Suggestion provider call duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"provider"},
	)

	SuggestionCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skysearch",
			Name:      "suggestion_cache_total",
			Help:      "Suggestion cache hits and misses",
		},
		[]string{"cache", "result"}, // result: "hit" / "miss"
	)

	PreferenceSessionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skysearch",
			Name:      "preference_session_lookups_total",
			Help:      "Simple-mode session lookups served from memory or the store",
		},
		[]string{"cache", "result"}, // result: "hit" / "miss"
	)

	CatalogRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skysearch",
			Name:      "catalog_requests_total",
			Help:      "Requests to the equipment and user catalog",
		},
		[]string{"endpoint", "status"},
	)

	CatalogRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "skysearch",
			Name:      "catalog_request_duration_seconds",
			Help:      "Catalog request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"endpoint"},
	)
)

var registerSearchOnce sync.Once

// RegisterSearchMetrics registers the search metrics with the default registry.
func RegisterSearchMetrics() {
	registerSearchOnce.Do(func() {
		prometheus.MustRegister(CodecOperationsTotal)
		prometheus.MustRegister(ProviderRequestsTotal)
		prometheus.MustRegister(ProviderRequestDuration)
		prometheus.MustRegister(SuggestionCacheTotal)
		prometheus.MustRegister(PreferenceSessionsTotal)
		prometheus.MustRegister(CatalogRequestsTotal)
		prometheus.MustRegister(CatalogRequestDuration)
	})
}
