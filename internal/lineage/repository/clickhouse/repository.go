// Package clickhouse serves lineage lookups from the lineage_* tables in ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Repository implements the lineage store on top of ClickHouse.
type Repository struct {
	conn    Conn
	metrics Metrics
	decoder *addressDecoder
}

// NewRepository opens a connection pool for dsn. network selects the chain parameters used to decode
// receiver addresses from output scripts when none were stored.
func NewRepository(dsn string, network string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("clickhouse metrics is required")
	}

	decoder, err := newAddressDecoder(network)
	if err != nil {
		return nil, err
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics, decoder: decoder}, nil
}

// Ping checks that the server is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping clickhouse: %w", unavailable(err))
	}
	return nil
}

// Close releases the connection pool.
func (r *Repository) Close() error {
	return r.conn.Close()
}
