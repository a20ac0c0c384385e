package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
)

// FINAL collapses rows re-inserted by the ingester before the background merge does.
const inputsByValueQuery = `
SELECT
	tx_val,
	prev_hash,
	prev_index
FROM lineage_input FINAL
WHERE tx_val = ?
ORDER BY input_index ASC`

// InputsByValue returns the inputs of the transaction stored under value in input order.
func (r *Repository) InputsByValue(ctx context.Context, value uint64) (inputs []model.InputRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("inputs_by_value", err, start)
	}()

	rows, err := r.conn.Query(ctx, inputsByValueQuery, value)
	if err != nil {
		return nil, fmt.Errorf("query inputs: %w", unavailable(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			inputs, err = nil, fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var in model.InputRecord
		if err = rows.Scan(&in.TxValue, &in.PrevHash, &in.PrevIndex); err != nil {
			return nil, fmt.Errorf("scan input: %w", err)
		}
		inputs = append(inputs, in)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inputs: %w", unavailable(err))
	}
	return inputs, nil
}
