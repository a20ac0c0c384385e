// Package transport exposes gRPC/HTTP handlers.
package transport

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
)

// Explorer answers lineage queries.
type Explorer interface {
	GetTransaction(ctx context.Context, hash string) (*model.Transaction, error)
	GetTransactionGraph(ctx context.Context, hash string) (*model.Graph, error)
	GetBlockRewardGraph(ctx context.Context, height uint64) (*model.Graph, error)
	StoreStatus(ctx context.Context) (model.StoreStatus, error)
}
