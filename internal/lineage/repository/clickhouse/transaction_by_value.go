package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
)

const transactionByValueQuery = `
SELECT
	tx_val,
	n_inputs,
	n_outputs,
	block_height,
	is_coinbase
FROM lineage_tx
WHERE tx_val = ?
LIMIT 1`

// TransactionByValue returns the metadata row of the transaction stored under value.
func (r *Repository) TransactionByValue(ctx context.Context, value uint64) (rec model.TxRecord, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transaction_by_value", err, start)
	}()

	rows, err := r.conn.Query(ctx, transactionByValueQuery, value)
	if err != nil {
		return model.TxRecord{}, false, fmt.Errorf("query transaction: %w", unavailable(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			rec, found, err = model.TxRecord{}, false, fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.TxRecord{}, false, fmt.Errorf("iterate transaction: %w", unavailable(err))
		}
		return model.TxRecord{}, false, nil
	}
	if err = rows.Scan(
		&rec.Value,
		&rec.InputCount,
		&rec.OutputCount,
		&rec.BlockHeight,
		&rec.IsCoinbase,
	); err != nil {
		return model.TxRecord{}, false, fmt.Errorf("scan transaction: %w", err)
	}
	return rec, true, nil
}
