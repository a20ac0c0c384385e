package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the read-only query surface over the transaction, input, output and tx_map tables.
	// Absence is reported through the bool result or an empty slice, never through an error.
	Store interface {
		TxValueByHash(ctx context.Context, hash string) (uint64, bool, error)
		TxHashByValue(ctx context.Context, value uint64) (string, bool, error)
		TransactionByValue(ctx context.Context, value uint64) (model.TxRecord, bool, error)
		InputsByValue(ctx context.Context, value uint64) ([]model.InputRecord, error)
		SpendersByPrevHash(ctx context.Context, prevHash string) ([]model.SpenderRecord, error)
		OutputsByValue(ctx context.Context, value uint64) ([]model.OutputRecord, error)
		CoinbaseValueByHeight(ctx context.Context, height uint64) (uint64, bool, error)
		BlockHeightRange(ctx context.Context) (model.StoreStatus, error)
	}
	ReputationOracle interface {
		Reputation(ctx context.Context, address string) (model.Reputation, error)
	}
	TransactionSource interface {
		Assemble(ctx context.Context, hash string) (*model.Transaction, error)
	}
	CacheMetrics interface {
		ObserveCacheLookup(cache string, hit bool)
	}
	ClassifierMetrics interface {
		ObserveVerdict(verdict model.Reputation, err error)
	}
	ExplorerMetrics interface {
		ObserveRequest(operation string, err error, started time.Time)
		ObserveGraphSize(size int)
	}
)
