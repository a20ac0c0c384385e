package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	"github.com/goodnatureofminers/blockinsight7000-lineage/pkg/safe"
)

// TransactionByValue returns the metadata row of the transaction stored under value.
func (r *Repository) TransactionByValue(ctx context.Context, value uint64) (rec model.TxRecord, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transaction_by_value", err, start)
	}()

	var nInputs, nOutputs int64
	err = r.db.QueryRowContext(ctx, transactionByValueQuery, value).Scan(
		&rec.Value,
		&nInputs,
		&nOutputs,
		&rec.BlockHeight,
		&rec.IsCoinbase,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TxRecord{}, false, nil
	}
	if err != nil {
		return model.TxRecord{}, false, fmt.Errorf("query transaction: %w", unavailable(err))
	}
	if rec.InputCount, err = safe.Uint32(nInputs); err != nil {
		return model.TxRecord{}, false, fmt.Errorf("transaction n_inputs: %w", err)
	}
	if rec.OutputCount, err = safe.Uint32(nOutputs); err != nil {
		return model.TxRecord{}, false, fmt.Errorf("transaction n_outputs: %w", err)
	}
	return rec, true, nil
}

// CoinbaseValueByHeight returns the value of the coinbase transaction mined at height.
func (r *Repository) CoinbaseValueByHeight(ctx context.Context, height uint64) (value uint64, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("coinbase_value_by_height", err, start)
	}()

	err = r.db.QueryRowContext(ctx, coinbaseValueByHeightQuery, height).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query coinbase by height: %w", unavailable(err))
	}
	return value, true, nil
}

// BlockHeightRange returns the lowest and highest indexed block heights.
func (r *Repository) BlockHeightRange(ctx context.Context) (status model.StoreStatus, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("block_height_range", err, start)
	}()

	var minHeight, maxHeight sql.NullInt64
	if err = r.db.QueryRowContext(ctx, blockHeightRangeQuery).Scan(&minHeight, &maxHeight); err != nil {
		return model.StoreStatus{}, fmt.Errorf("query block height range: %w", unavailable(err))
	}
	if !minHeight.Valid || !maxHeight.Valid {
		return model.StoreStatus{Empty: true}, nil
	}
	if status.MinBlockHeight, err = safe.Uint64(minHeight.Int64); err != nil {
		return model.StoreStatus{}, fmt.Errorf("min block height: %w", err)
	}
	if status.MaxBlockHeight, err = safe.Uint64(maxHeight.Int64); err != nil {
		return model.StoreStatus{}, fmt.Errorf("max block height: %w", err)
	}
	return status, nil
}
