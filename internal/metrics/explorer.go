package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	explorerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "lineage_explorer",
		Name:      "requests_total",
		Help:      "Count of explorer operations.",
	}, []string{"operation", "status"})
	explorerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "lineage_explorer",
		Name:      "request_duration_seconds",
		Help:      "Duration of explorer operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "status"})
	explorerGraphSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "lineage_explorer",
		Name:      "graph_transactions",
		Help:      "Number of transactions returned in a lineage graph.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
)

// Explorer tracks metrics for the lineage explorer operations.
type Explorer struct{}

// NewExplorer creates an Explorer metrics collector.
func NewExplorer() *Explorer {
	return &Explorer{}
}

// ObserveRequest records duration and status of an explorer operation.
func (Explorer) ObserveRequest(operation string, err error, started time.Time) {
	status := "success"
	switch {
	case errors.Is(err, model.ErrStoreUnavailable):
		status = "unavailable"
	case err != nil:
		status = "error"
	}

	explorerRequestsTotal.WithLabelValues(operation, status).Inc()
	explorerRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// ObserveGraphSize records how many transactions a graph response carried.
func (Explorer) ObserveGraphSize(size int) {
	explorerGraphSize.Observe(float64(size))
}
