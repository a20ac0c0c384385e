package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
)

const blockHeightRangeQuery = `
SELECT
	toUInt64(min(block_height)) AS min_height,
	toUInt64(max(block_height)) AS max_height,
	count() AS cnt
FROM lineage_tx`

// BlockHeightRange returns the lowest and highest indexed block heights.
func (r *Repository) BlockHeightRange(ctx context.Context) (status model.StoreStatus, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("block_height_range", err, start)
	}()

	rows, err := r.conn.Query(ctx, blockHeightRangeQuery)
	if err != nil {
		return model.StoreStatus{}, fmt.Errorf("query block height range: %w", unavailable(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			status, err = model.StoreStatus{}, fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.StoreStatus{}, fmt.Errorf("iterate block height range: %w", unavailable(err))
		}
		return model.StoreStatus{}, errors.New("block height range not found")
	}

	var count uint64
	if err = rows.Scan(&status.MinBlockHeight, &status.MaxBlockHeight, &count); err != nil {
		return model.StoreStatus{}, fmt.Errorf("scan block height range: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.StoreStatus{}, fmt.Errorf("iterate block height range: %w", unavailable(err))
	}
	if count == 0 {
		return model.StoreStatus{Empty: true}, nil
	}
	return status, nil
}
