package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	"github.com/goodnatureofminers/blockinsight7000-lineage/pkg/workerpool"
	"go.uber.org/zap"
)

// GraphExpander collects the neighbourhood of a transaction: one hop back across its inputs and
// outputDepth hops forward across spent outputs.
//
// A transaction reachable through several paths is assembled once per path and appears once per path in
// the result.
type GraphExpander struct {
	source  TransactionSource
	workers int
	logger  *zap.Logger
}

// NewGraphExpander constructs a GraphExpander assembling each frontier with at most workers goroutines.
func NewGraphExpander(source TransactionSource, workers int, logger *zap.Logger) (*GraphExpander, error) {
	if source == nil {
		return nil, errors.New("graph expander transaction source is required")
	}
	if workers <= 0 {
		workers = defaultExpandWorkers
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GraphExpander{source: source, workers: workers, logger: logger}, nil
}

// Expand returns root, its funding transactions and every spending transaction up to outputDepth hops
// away, in that order. outputDepth below 1 is treated as 1.
func (e *GraphExpander) Expand(ctx context.Context, root *model.Transaction, outputDepth int) ([]*model.Transaction, error) {
	if root == nil {
		return nil, nil
	}
	if outputDepth < 1 {
		outputDepth = 1
	}

	txs := []*model.Transaction{root}

	funding, err := e.assembleAll(ctx, prevHashes(root))
	if err != nil {
		return nil, fmt.Errorf("expand inputs of %s: %w", root.Hash, err)
	}
	txs = append(txs, funding...)

	frontier, err := e.assembleAll(ctx, nextHashes(root))
	if err != nil {
		return nil, fmt.Errorf("expand outputs of %s: %w", root.Hash, err)
	}
	txs = append(txs, frontier...)

	for level := 1; level < outputDepth && len(frontier) > 0; level++ {
		var hashes []string
		for _, tx := range frontier {
			hashes = append(hashes, nextHashes(tx)...)
		}

		frontier, err = e.assembleAll(ctx, hashes)
		if err != nil {
			return nil, fmt.Errorf("expand outputs of %s at depth %d: %w", root.Hash, level+1, err)
		}
		txs = append(txs, frontier...)
	}

	e.logger.Debug("graph expanded",
		zap.String("tx_hash", root.Hash),
		zap.Int("output_depth", outputDepth),
		zap.Int("transactions", len(txs)),
	)
	return txs, nil
}

// assembleAll assembles hashes in order, dropping the ones the store cannot resolve.
func (e *GraphExpander) assembleAll(ctx context.Context, hashes []string) ([]*model.Transaction, error) {
	assembled, err := workerpool.Map(ctx, e.workers, hashes, e.source.Assemble)
	if err != nil {
		return nil, err
	}

	txs := make([]*model.Transaction, 0, len(assembled))
	for i, tx := range assembled {
		if tx == nil {
			e.logger.Debug("neighbour not found", zap.String("tx_hash", hashes[i]))
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func prevHashes(tx *model.Transaction) []string {
	hashes := make([]string, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		if in.PrevTxHash != "" {
			hashes = append(hashes, in.PrevTxHash)
		}
	}
	return hashes
}

func nextHashes(tx *model.Transaction) []string {
	hashes := make([]string, 0, len(tx.Outputs))
	for _, out := range tx.Outputs {
		if out.NextTxHash != "" {
			hashes = append(hashes, out.NextTxHash)
		}
	}
	return hashes
}
