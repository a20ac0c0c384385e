// Package service reconstructs transaction lineage from the locally indexed store.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	"go.uber.org/zap"
)

// Config tunes cache capacities and graph expansion. Zero values fall back to defaults.
type Config struct {
	TranslatorCacheSize int
	OutputCacheSize     int
	ReputationCacheSize int
	OutputDepth         int
	ExpandWorkers       int
}

// Explorer is the entry point used by the transport layer.
type Explorer struct {
	store       Store
	translator  *Translator
	assembler   *Assembler
	expander    *GraphExpander
	classifier  *AddressClassifier
	metrics     ExplorerMetrics
	outputDepth int
	logger      *zap.Logger
}

// Dependencies groups the collaborators of NewExplorer.
type Dependencies struct {
	Store             Store
	Oracle            ReputationOracle
	CacheMetrics      CacheMetrics
	ClassifierMetrics ClassifierMetrics
	ExplorerMetrics   ExplorerMetrics
	Logger            *zap.Logger
}

// NewExplorer wires the translator, output resolver, assembler, graph expander and classifier.
func NewExplorer(deps Dependencies, cfg Config) (*Explorer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.ExplorerMetrics == nil {
		return nil, errors.New("explorer metrics is required")
	}

	translator, err := NewTranslator(deps.Store, deps.CacheMetrics, cfg.TranslatorCacheSize)
	if err != nil {
		return nil, err
	}
	outputs, err := NewOutputResolver(deps.Store, deps.CacheMetrics, cfg.OutputCacheSize)
	if err != nil {
		return nil, err
	}
	assembler, err := NewAssembler(deps.Store, translator, outputs, logger.Named("assembler"))
	if err != nil {
		return nil, err
	}
	expander, err := NewGraphExpander(assembler, cfg.ExpandWorkers, logger.Named("expander"))
	if err != nil {
		return nil, err
	}
	classifier, err := NewAddressClassifier(
		deps.Oracle,
		deps.CacheMetrics,
		deps.ClassifierMetrics,
		cfg.ReputationCacheSize,
		logger.Named("classifier"),
	)
	if err != nil {
		return nil, err
	}

	depth := cfg.OutputDepth
	if depth <= 0 {
		depth = defaultOutputDepth
	}

	return &Explorer{
		store:       deps.Store,
		translator:  translator,
		assembler:   assembler,
		expander:    expander,
		classifier:  classifier,
		metrics:     deps.ExplorerMetrics,
		outputDepth: depth,
		logger:      logger,
	}, nil
}

// GetTransaction returns the assembled transaction, or nil when hash is malformed or not indexed.
func (e *Explorer) GetTransaction(ctx context.Context, hash string) (tx *model.Transaction, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveRequest("get_transaction", err, started)
	}()

	hash, ok := normalizeHash(hash)
	if !ok {
		return nil, nil
	}
	return e.assembler.Assemble(ctx, hash)
}

// GetTransactionGraph returns the lineage graph around hash, or nil when hash is malformed or not indexed.
func (e *Explorer) GetTransactionGraph(ctx context.Context, hash string) (graph *model.Graph, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveRequest("get_transaction_graph", err, started)
	}()

	hash, ok := normalizeHash(hash)
	if !ok {
		return nil, nil
	}
	root, err := e.assembler.Assemble(ctx, hash)
	if err != nil || root == nil {
		return nil, err
	}
	return e.buildGraph(ctx, root)
}

// GetBlockRewardGraph returns the lineage graph of the coinbase transaction mined at height,
// or nil when that block is not indexed.
func (e *Explorer) GetBlockRewardGraph(ctx context.Context, height uint64) (graph *model.Graph, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveRequest("get_block_reward_graph", err, started)
	}()

	value, found, err := e.store.CoinbaseValueByHeight(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("query coinbase at height %d: %w", height, err)
	}
	if !found {
		return nil, nil
	}
	hash, found, err := e.translator.ValueToHash(ctx, value)
	if err != nil {
		return nil, err
	}
	if !found {
		e.logger.Warn("coinbase value has no hash", zap.Uint64("height", height), zap.Uint64("tx_val", value))
		return nil, nil
	}

	root, err := e.assembler.Assemble(ctx, hash)
	if err != nil || root == nil {
		return nil, err
	}
	return e.buildGraph(ctx, root)
}

// StoreStatus reports the indexed block range. It returns model.ErrStoreUnavailable while the store is locked.
func (e *Explorer) StoreStatus(ctx context.Context) (status model.StoreStatus, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveRequest("store_status", err, started)
	}()

	status, err = e.store.BlockHeightRange(ctx)
	if err != nil {
		return model.StoreStatus{}, fmt.Errorf("query block height range: %w", err)
	}
	return status, nil
}

func (e *Explorer) buildGraph(ctx context.Context, root *model.Transaction) (*model.Graph, error) {
	txs, err := e.expander.Expand(ctx, root, e.outputDepth)
	if err != nil {
		return nil, err
	}
	blacklist, whitelist, err := e.classifier.Classify(ctx, txs)
	if err != nil {
		return nil, fmt.Errorf("classify addresses: %w", err)
	}
	e.metrics.ObserveGraphSize(len(txs))

	return &model.Graph{
		Transactions: txs,
		Blacklist:    blacklist,
		Whitelist:    whitelist,
	}, nil
}

// normalizeHash lowercases hash and reports whether it is a 64 character hex transaction id.
func normalizeHash(hash string) (string, bool) {
	hash = strings.ToLower(strings.TrimSpace(hash))
	if len(hash) != chainhash.MaxHashStringSize {
		return "", false
	}
	if _, err := chainhash.NewHashFromStr(hash); err != nil {
		return "", false
	}
	return hash, true
}
