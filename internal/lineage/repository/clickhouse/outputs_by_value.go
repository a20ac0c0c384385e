package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	"github.com/goodnatureofminers/blockinsight7000-lineage/pkg/safe"
)

const outputsByValueQuery = `
SELECT
	tx_val,
	value,
	addresses,
	script_hex
FROM lineage_output FINAL
WHERE tx_val = ?
ORDER BY output_index ASC`

// OutputsByValue returns the outputs of the transaction stored under value in output index order.
func (r *Repository) OutputsByValue(ctx context.Context, value uint64) (outputs []model.OutputRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("outputs_by_value", err, start)
	}()

	rows, err := r.conn.Query(ctx, outputsByValueQuery, value)
	if err != nil {
		return nil, fmt.Errorf("query outputs: %w", unavailable(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			outputs, err = nil, fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			txValue   uint64
			amount    uint64
			addresses []string
			scriptHex string
		)
		if err = rows.Scan(&txValue, &amount, &addresses, &scriptHex); err != nil {
			return nil, fmt.Errorf("scan output: %w", err)
		}

		signed, convErr := safe.Int64(amount)
		if convErr != nil {
			return nil, fmt.Errorf("convert output value of tx value %d: %w", txValue, convErr)
		}
		outputs = append(outputs, model.OutputRecord{
			TxValue: txValue,
			Value:   signed,
			Address: r.decoder.receiver(addresses, scriptHex),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outputs: %w", unavailable(err))
	}
	return outputs, nil
}
