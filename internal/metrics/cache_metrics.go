package metrics

import "github.com/prometheus/client_golang/prometheus"

// Cache metrics
var (
	CacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "table_cache_lookups_total",
		Help:      "Total number of market table cache lookups by result",
	}, []string{"result"})

	CacheEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "table_cache_entries",
		Help:      "Number of market tables currently cached",
	})
)

// RecordCacheLookup records a cache hit or miss.
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookupsTotal.WithLabelValues(result).Inc()
}

// UpdateCacheEntries updates the cached entries gauge.
func UpdateCacheEntries(count int) {
	CacheEntries.Set(float64(count))
}
