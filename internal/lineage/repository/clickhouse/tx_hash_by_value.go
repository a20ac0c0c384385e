package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const txHashByValueQuery = `
SELECT hash
FROM lineage_tx_map
WHERE val = ?
LIMIT 1`

// TxHashByValue returns the transaction hash stored under value.
func (r *Repository) TxHashByValue(ctx context.Context, value uint64) (hash string, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("tx_hash_by_value", err, start)
	}()

	rows, err := r.conn.Query(ctx, txHashByValueQuery, value)
	if err != nil {
		return "", false, fmt.Errorf("query tx hash by value: %w", unavailable(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			hash, found, err = "", false, fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return "", false, fmt.Errorf("iterate tx hash by value: %w", unavailable(err))
		}
		return "", false, nil
	}
	if err = rows.Scan(&hash); err != nil {
		return "", false, fmt.Errorf("scan tx hash: %w", err)
	}
	return hash, true, nil
}
