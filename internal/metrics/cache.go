package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var lineageCacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "blockinsight7000",
	Subsystem: "lineage_cache",
	Name:      "lookups_total",
	Help:      "Count of memoized lookups by cache and result.",
}, []string{"cache", "result"})

// Cache tracks hit ratios of the lineage memoizing caches.
type Cache struct{}

// NewCache creates a Cache metrics collector.
func NewCache() *Cache {
	return &Cache{}
}

// ObserveCacheLookup records a single cache lookup.
func (Cache) ObserveCacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	lineageCacheLookupsTotal.WithLabelValues(cache, result).Inc()
}
