package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// TxValueByHash returns the internal value assigned to hash.
func (r *Repository) TxValueByHash(ctx context.Context, hash string) (value uint64, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("tx_value_by_hash", err, start)
	}()

	err = r.db.QueryRowContext(ctx, txValueByHashQuery, hash).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query tx value by hash: %w", unavailable(err))
	}
	return value, true, nil
}

// TxHashByValue returns the transaction hash stored under value.
func (r *Repository) TxHashByValue(ctx context.Context, value uint64) (hash string, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("tx_hash_by_value", err, start)
	}()

	err = r.db.QueryRowContext(ctx, txHashByValueQuery, value).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query tx hash by value: %w", unavailable(err))
	}
	return hash, true, nil
}
