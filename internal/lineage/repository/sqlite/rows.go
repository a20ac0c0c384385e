package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	"github.com/goodnatureofminers/blockinsight7000-lineage/pkg/safe"
	"go.uber.org/zap"
)

// InputsByValue returns the inputs of the transaction stored under value in input order.
func (r *Repository) InputsByValue(ctx context.Context, value uint64) (inputs []model.InputRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("inputs_by_value", err, start)
	}()

	rows, err := r.db.QueryContext(ctx, inputsByValueQuery, value)
	if err != nil {
		return nil, fmt.Errorf("query inputs: %w", unavailable(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			in        model.InputRecord
			prevIndex int64
		)
		if err = rows.Scan(&in.TxValue, &in.PrevHash, &prevIndex); err != nil {
			return nil, fmt.Errorf("scan input: %w", err)
		}
		if in.PrevIndex, err = safe.Uint32(prevIndex); err != nil {
			return nil, fmt.Errorf("input prev_index: %w", err)
		}
		inputs = append(inputs, in)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inputs: %w", unavailable(err))
	}
	return inputs, nil
}

// SpendersByPrevHash returns every input that spends an output of prevHash.
func (r *Repository) SpendersByPrevHash(ctx context.Context, prevHash string) (spenders []model.SpenderRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("spenders_by_prev_hash", err, start)
	}()

	rows, err := r.db.QueryContext(ctx, spendersByPrevHashQuery, prevHash)
	if err != nil {
		return nil, fmt.Errorf("query spenders: %w", unavailable(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			s         model.SpenderRecord
			prevIndex int64
		)
		if err = rows.Scan(&s.TxValue, &prevIndex); err != nil {
			return nil, fmt.Errorf("scan spender: %w", err)
		}
		if s.PrevIndex, err = safe.Uint32(prevIndex); err != nil {
			return nil, fmt.Errorf("spender prev_index: %w", err)
		}
		spenders = append(spenders, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate spenders: %w", unavailable(err))
	}
	return spenders, nil
}

// OutputsByValue returns the outputs of the transaction stored under value in output index order.
func (r *Repository) OutputsByValue(ctx context.Context, value uint64) (outputs []model.OutputRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("outputs_by_value", err, start)
	}()

	rows, err := r.db.QueryContext(ctx, outputsByValueQuery, value)
	if err != nil {
		return nil, fmt.Errorf("query outputs: %w", unavailable(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			out     model.OutputRecord
			address sql.NullString
		)
		if err = rows.Scan(&out.TxValue, &out.Value, &address); err != nil {
			return nil, fmt.Errorf("scan output: %w", err)
		}
		addr, perr := receiver(address.String)
		if perr != nil {
			r.logger.Warn("unparsable output address",
				zap.Uint64("tx_val", out.TxValue),
				zap.String("address", address.String),
				zap.Error(perr),
			)
		}
		out.Address = addr
		outputs = append(outputs, out)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outputs: %w", unavailable(err))
	}
	return outputs, nil
}
