package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	lru "github.com/hashicorp/golang-lru/v2"
)

// OutputResolver returns the outputs of a transaction in output index order.
// Inputs reference outputs by position, so callers index into the returned slice directly.
type OutputResolver struct {
	store   Store
	metrics CacheMetrics
	cache   *lru.Cache[uint64, []model.OutputRecord]
}

// NewOutputResolver constructs an OutputResolver caching the outputs of at most size transactions.
func NewOutputResolver(store Store, metrics CacheMetrics, size int) (*OutputResolver, error) {
	if store == nil {
		return nil, errors.New("output resolver store is required")
	}
	if metrics == nil {
		return nil, errors.New("output resolver metrics is required")
	}
	if size <= 0 {
		size = defaultOutputCacheSize
	}

	cache, err := lru.New[uint64, []model.OutputRecord](size)
	if err != nil {
		return nil, fmt.Errorf("init outputs cache: %w", err)
	}
	return &OutputResolver{store: store, metrics: metrics, cache: cache}, nil
}

// OutputsOf returns the outputs of the transaction stored under value, or an empty slice when it has none.
// The returned slice is shared with the cache and must not be modified.
func (r *OutputResolver) OutputsOf(ctx context.Context, value uint64) ([]model.OutputRecord, error) {
	if outputs, ok := r.cache.Get(value); ok {
		r.metrics.ObserveCacheLookup(outputsCache, true)
		return outputs, nil
	}
	r.metrics.ObserveCacheLookup(outputsCache, false)

	outputs, err := r.store.OutputsByValue(ctx, value)
	if err != nil {
		return nil, fmt.Errorf("query outputs for tx value %d: %w", value, err)
	}
	if len(outputs) == 0 {
		return []model.OutputRecord{}, nil
	}

	r.cache.Add(value, outputs)
	return outputs, nil
}
