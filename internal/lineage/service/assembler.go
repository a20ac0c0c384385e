package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	"go.uber.org/zap"
)

// Assembler rebuilds a complete transaction from the stored rows: its outputs with the transactions that
// spent them, its inputs with the outputs they consumed, and the fee.
type Assembler struct {
	store      Store
	translator *Translator
	outputs    *OutputResolver
	logger     *zap.Logger
}

// NewAssembler constructs an Assembler.
func NewAssembler(store Store, translator *Translator, outputs *OutputResolver, logger *zap.Logger) (*Assembler, error) {
	if store == nil {
		return nil, errors.New("assembler store is required")
	}
	if translator == nil {
		return nil, errors.New("assembler translator is required")
	}
	if outputs == nil {
		return nil, errors.New("assembler output resolver is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{
		store:      store,
		translator: translator,
		outputs:    outputs,
		logger:     logger,
	}, nil
}

// Assemble returns the transaction identified by hash, or nil when the hash is not indexed.
// Incomplete upstream data yields a partial record and a warning, never an error.
func (a *Assembler) Assemble(ctx context.Context, hash string) (*model.Transaction, error) {
	value, found, err := a.translator.HashToValue(ctx, hash)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	record, found, err := a.store.TransactionByValue(ctx, value)
	if err != nil {
		return nil, fmt.Errorf("query tx %s: %w", hash, err)
	}
	if !found {
		return nil, nil
	}

	logger := a.logger.With(zap.String("tx_hash", hash), zap.Uint64("tx_val", value))

	outputs, err := a.assembleOutputs(ctx, hash, value)
	if err != nil {
		return nil, err
	}
	if len(outputs) != int(record.OutputCount) {
		logger.Warn("output count mismatch",
			zap.Int("got", len(outputs)),
			zap.Uint32("want", record.OutputCount),
		)
	}

	tx := &model.Transaction{
		Hash:        hash,
		BlockHeight: record.BlockHeight,
		Outputs:     outputs,
	}

	if record.IsCoinbase {
		tx.Inputs = []model.Input{{
			PrevTxHash:    "",
			SenderAddress: model.CoinbaseAddress,
			Amount:        tx.OutputSum(),
		}}
	} else {
		tx.Inputs, err = a.assembleInputs(ctx, value, logger)
		if err != nil {
			return nil, err
		}
	}
	if len(tx.Inputs) != int(record.InputCount) {
		logger.Warn("input count mismatch",
			zap.Int("got", len(tx.Inputs)),
			zap.Uint32("want", record.InputCount),
		)
	}

	if !record.IsCoinbase {
		tx.Fees = tx.InputSum() - tx.OutputSum()
	}
	logger.Debug("transaction assembled",
		zap.Int("inputs", len(tx.Inputs)),
		zap.Int("outputs", len(tx.Outputs)),
		zap.Stringer("fees", btcutil.Amount(tx.Fees)),
	)
	return tx, nil
}

func (a *Assembler) assembleOutputs(ctx context.Context, hash string, value uint64) ([]model.Output, error) {
	spenders, err := a.store.SpendersByPrevHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("query spenders of tx %s: %w", hash, err)
	}
	spentBy := make(map[uint32]uint64, len(spenders))
	for _, s := range spenders {
		spentBy[s.PrevIndex] = s.TxValue
	}

	records, err := a.outputs.OutputsOf(ctx, value)
	if err != nil {
		return nil, err
	}

	outputs := make([]model.Output, 0, len(records))
	for idx, rec := range records {
		// Zero value outputs are data carriers (OP_RETURN) rather than payments.
		if rec.Value == 0 {
			continue
		}

		next := ""
		if spender, ok := spentBy[uint32(idx)]; ok {
			nextHash, found, err := a.translator.ValueToHash(ctx, spender)
			if err != nil {
				return nil, err
			}
			if found {
				next = nextHash
			}
		}

		outputs = append(outputs, model.Output{
			ReceiverAddress: rec.Address,
			Amount:          rec.Value,
			NextTxHash:      next,
		})
	}
	return outputs, nil
}

func (a *Assembler) assembleInputs(ctx context.Context, value uint64, logger *zap.Logger) ([]model.Input, error) {
	rows, err := a.store.InputsByValue(ctx, value)
	if err != nil {
		return nil, fmt.Errorf("query inputs of tx value %d: %w", value, err)
	}

	inputs := make([]model.Input, 0, len(rows))
	for _, row := range rows {
		prevValue, found, err := a.translator.HashToValue(ctx, row.PrevHash)
		if err != nil {
			return nil, err
		}
		if !found {
			logger.Debug("skip input with unindexed previous tx", zap.String("prev_hash", row.PrevHash))
			continue
		}

		prevOutputs, err := a.outputs.OutputsOf(ctx, prevValue)
		if err != nil {
			return nil, err
		}
		if int(row.PrevIndex) >= len(prevOutputs) {
			logger.Debug("skip input referencing missing output",
				zap.String("prev_hash", row.PrevHash),
				zap.Uint32("prev_index", row.PrevIndex),
				zap.Int("prev_outputs", len(prevOutputs)),
			)
			continue
		}

		prev := prevOutputs[row.PrevIndex]
		inputs = append(inputs, model.Input{
			PrevTxHash:    row.PrevHash,
			SenderAddress: prev.Address,
			Amount:        prev.Value,
		})
	}
	return inputs, nil
}
