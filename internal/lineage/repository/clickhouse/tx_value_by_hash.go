package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const txValueByHashQuery = `
SELECT val
FROM lineage_tx_map
WHERE hash = CAST(? AS FixedString(64))
LIMIT 1`

// TxValueByHash returns the internal value assigned to hash.
func (r *Repository) TxValueByHash(ctx context.Context, hash string) (value uint64, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("tx_value_by_hash", err, start)
	}()

	rows, err := r.conn.Query(ctx, txValueByHashQuery, hash)
	if err != nil {
		return 0, false, fmt.Errorf("query tx value by hash: %w", unavailable(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			value, found, err = 0, false, fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, false, fmt.Errorf("iterate tx value by hash: %w", unavailable(err))
		}
		return 0, false, nil
	}
	if err = rows.Scan(&value); err != nil {
		return 0, false, fmt.Errorf("scan tx value: %w", err)
	}
	return value, true, nil
}
