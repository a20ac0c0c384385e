package reputation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	"go.uber.org/zap"
)

// Oracle kinds accepted by New.
const (
	KindRandom = "random"
	KindStatic = "static"
	KindHTTP   = "http"
)

// Oracle answers the reputation of one address.
type Oracle interface {
	Reputation(ctx context.Context, address string) (model.Reputation, error)
}

// Config selects and configures an oracle.
type Config struct {
	Kind     string
	Seed     uint64
	ListFile string
	URL      string
	RPS      int
	Timeout  time.Duration
}

// New builds the oracle named by cfg.Kind.
func New(cfg Config, metrics Metrics, logger *zap.Logger) (Oracle, error) {
	var (
		oracle Oracle
		err    error
	)
	switch strings.ToLower(cfg.Kind) {
	case "", KindRandom:
		oracle, err = NewRandomOracle(cfg.Seed, metrics)
	case KindStatic:
		oracle, err = LoadStaticOracle(cfg.ListFile, metrics)
	case KindHTTP:
		oracle, err = NewHTTPOracle(HTTPConfig{BaseURL: cfg.URL, RPS: cfg.RPS, Timeout: cfg.Timeout}, metrics, logger)
	default:
		return nil, fmt.Errorf("unknown reputation oracle %q", cfg.Kind)
	}
	if err != nil {
		return nil, err
	}
	return oracle, nil
}
