package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/repository/sqlite"
	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/service"
	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/metrics"
	"go.uber.org/zap"
)

type lineageStore interface {
	service.Store
	Ping(ctx context.Context) error
	Close() error
}

func openStore(backend string, logger *zap.Logger) (lineageStore, error) {
	switch backend {
	case "clickhouse":
		if config.ClickhouseDSN == "" {
			return nil, errors.New("--clickhouse-dsn is required for the clickhouse store")
		}
		repo, err := clickhouse.NewRepository(config.ClickhouseDSN, config.Network, metrics.NewStoreRepository(backend))
		if err != nil {
			return nil, fmt.Errorf("open clickhouse store: %w", err)
		}
		return repo, nil
	case "sqlite":
		dsn := sqlite.FileDSN(config.SQLitePath, config.SQLiteBusyTimeout)
		repo, err := sqlite.NewRepository(dsn, metrics.NewStoreRepository(backend), logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store %q", backend)
	}
}
