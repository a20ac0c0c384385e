package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "store_repository",
		Name:      "operations_total",
		Help:      "Count of store repository operations.",
	}, []string{"operation", "backend", "status"})
	storeRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "store_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of store repository operations.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "backend", "status"})
)

// StoreRepository tracks metrics for lookups against one store backend.
type StoreRepository struct {
	backend string
}

// NewStoreRepository creates a StoreRepository metrics collector for the named backend.
func NewStoreRepository(backend string) *StoreRepository {
	if backend == "" {
		backend = "unknown"
	}
	return &StoreRepository{backend: backend}
}

// Observe records duration and status of a repository operation.
func (m StoreRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	switch {
	case errors.Is(err, model.ErrStoreUnavailable):
		status = "unavailable"
	case err != nil:
		status = "error"
	}

	storeRepositoryRequestsTotal.WithLabelValues(operation, m.backend, status).Inc()
	storeRepositoryRequestDuration.WithLabelValues(operation, m.backend, status).Observe(time.Since(started).Seconds())
}
