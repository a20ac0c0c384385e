package service

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Translator maps external transaction hashes to the store's compact values and back.
// Both directions are memoized independently; only positive answers are cached.
type Translator struct {
	store   Store
	metrics CacheMetrics
	values  *lru.Cache[string, uint64]
	hashes  *lru.Cache[uint64, string]
}

// NewTranslator constructs a Translator holding at most size entries per direction.
func NewTranslator(store Store, metrics CacheMetrics, size int) (*Translator, error) {
	if store == nil {
		return nil, errors.New("translator store is required")
	}
	if metrics == nil {
		return nil, errors.New("translator metrics is required")
	}
	if size <= 0 {
		size = defaultTranslatorCacheSize
	}

	values, err := lru.New[string, uint64](size)
	if err != nil {
		return nil, fmt.Errorf("init hash cache: %w", err)
	}
	hashes, err := lru.New[uint64, string](size)
	if err != nil {
		return nil, fmt.Errorf("init value cache: %w", err)
	}

	return &Translator{
		store:   store,
		metrics: metrics,
		values:  values,
		hashes:  hashes,
	}, nil
}

// HashToValue returns the internal value of hash. found is false when the hash is not indexed.
func (t *Translator) HashToValue(ctx context.Context, hash string) (value uint64, found bool, err error) {
	if value, ok := t.values.Get(hash); ok {
		t.metrics.ObserveCacheLookup(translatorValuesCache, true)
		return value, true, nil
	}
	t.metrics.ObserveCacheLookup(translatorValuesCache, false)

	value, found, err = t.store.TxValueByHash(ctx, hash)
	if err != nil {
		return 0, false, fmt.Errorf("lookup value of tx %s: %w", hash, err)
	}
	if !found {
		return 0, false, nil
	}

	t.values.Add(hash, value)
	t.hashes.Add(value, hash)
	return value, true, nil
}

// ValueToHash returns the hash of the transaction stored under value. found is false when value is unknown.
func (t *Translator) ValueToHash(ctx context.Context, value uint64) (hash string, found bool, err error) {
	if hash, ok := t.hashes.Get(value); ok {
		t.metrics.ObserveCacheLookup(translatorHashesCache, true)
		return hash, true, nil
	}
	t.metrics.ObserveCacheLookup(translatorHashesCache, false)

	hash, found, err = t.store.TxHashByValue(ctx, value)
	if err != nil {
		return "", false, fmt.Errorf("lookup hash of tx value %d: %w", value, err)
	}
	if !found {
		return "", false, nil
	}

	t.hashes.Add(value, hash)
	t.values.Add(hash, value)
	return hash, true, nil
}
