package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const coinbaseValueByHeightQuery = `
SELECT tx_val
FROM lineage_tx
WHERE block_height = ? AND is_coinbase
ORDER BY tx_val ASC
LIMIT 1`

// CoinbaseValueByHeight returns the value of the coinbase transaction mined at height.
func (r *Repository) CoinbaseValueByHeight(ctx context.Context, height uint64) (value uint64, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("coinbase_value_by_height", err, start)
	}()

	rows, err := r.conn.Query(ctx, coinbaseValueByHeightQuery, height)
	if err != nil {
		return 0, false, fmt.Errorf("query coinbase by height: %w", unavailable(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			value, found, err = 0, false, fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, false, fmt.Errorf("iterate coinbase by height: %w", unavailable(err))
		}
		return 0, false, nil
	}
	if err = rows.Scan(&value); err != nil {
		return 0, false, fmt.Errorf("scan coinbase value: %w", err)
	}
	return value, true, nil
}
