package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
)

const spendersByPrevHashQuery = `
SELECT
	tx_val,
	prev_index
FROM lineage_input FINAL
WHERE prev_hash = CAST(? AS FixedString(64))
ORDER BY tx_val ASC, input_index ASC`

// SpendersByPrevHash returns every input that spends an output of prevHash.
func (r *Repository) SpendersByPrevHash(ctx context.Context, prevHash string) (spenders []model.SpenderRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("spenders_by_prev_hash", err, start)
	}()

	rows, err := r.conn.Query(ctx, spendersByPrevHashQuery, prevHash)
	if err != nil {
		return nil, fmt.Errorf("query spenders: %w", unavailable(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			spenders, err = nil, fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var s model.SpenderRecord
		if err = rows.Scan(&s.TxValue, &s.PrevIndex); err != nil {
			return nil, fmt.Errorf("scan spender: %w", err)
		}
		spenders = append(spenders, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate spenders: %w", unavailable(err))
	}
	return spenders, nil
}
