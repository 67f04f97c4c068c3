package metrics

import "github.com/prometheus/client_golang/prometheus"

// Intent extraction and search Prometheus metrics.
var (
	IntentRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookdex",
			Name:      "intent_requests_total",
			Help:      "Total number of intent extraction requests",
		},
		[]string{"model", "status"},
	)

	IntentRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bookdex",
			Name:      "intent_request_duration_seconds",
			Help:      "Intent extraction request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"model"},
	)

	IntentFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookdex",
			Name:      "intent_fallbacks_total",
			Help:      "Intent extractions degraded to a fallback record",
		},
		[]string{"reason"}, // "no_credential" / "rate_limited" / "provider_error" / "bad_response"
	)

	IntentCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookdex",
			Name:      "intent_cache_total",
			Help:      "Intent cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "bookdex",
			Name:      "search_duration_seconds",
			Help:      "Similarity search duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	SearchFilterFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookdex",
			Name:      "search_filter_fallbacks_total",
			Help:      "Author filters that matched no rows and fell back to the full catalog",
		},
	)
)

var intentMetricsRegistered bool

// RegisterIntentMetrics registers intent and search metrics. Must be called once from main.
func RegisterIntentMetrics() {
	if intentMetricsRegistered {
		return
	}
	prometheus.MustRegister(IntentRequestsTotal)
	prometheus.MustRegister(IntentRequestDuration)
	prometheus.MustRegister(IntentFallbacksTotal)
	prometheus.MustRegister(IntentCacheTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchFilterFallbacksTotal)
	intentMetricsRegistered = true
}
