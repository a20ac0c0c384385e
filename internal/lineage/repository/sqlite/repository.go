// Package sqlite serves lineage lookups from a tx.db SQLite file with the tx, input, output and
// tx_map tables.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const driverName = "sqlite3"

// Repository implements the lineage store on top of SQLite.
type Repository struct {
	db      *sql.DB
	metrics Metrics
	logger  *zap.Logger
}

// FileDSN returns a read-only DSN for the database at path. Readers wait up to busyTimeout for the
// ingester to release its write lock before reporting the store as unavailable.
func FileDSN(path string, busyTimeout time.Duration) string {
	params := url.Values{}
	params.Set("mode", "ro")
	params.Set("_busy_timeout", strconv.FormatInt(busyTimeout.Milliseconds(), 10))
	return "file:" + path + "?" + params.Encode()
}

// NewRepository opens the database described by dsn.
func NewRepository(dsn string, metrics Metrics, logger *zap.Logger) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("sqlite dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("sqlite metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db, metrics: metrics, logger: logger}, nil
}

// Ping checks that the database file can be opened.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite: %w", unavailable(err))
	}
	return nil
}

// Close releases the connection pool.
func (r *Repository) Close() error {
	return r.db.Close()
}
