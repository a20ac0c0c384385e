package reputation

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
)

// RandomOracle is a stand-in for a real reputation service: one address in four is trusted,
// one in four untrusted and the rest neutral.
type RandomOracle struct {
	mu      sync.Mutex
	rng     *rand.Rand
	metrics Metrics
}

// NewRandomOracle constructs a RandomOracle. The same seed yields the same verdict sequence.
func NewRandomOracle(seed uint64, metrics Metrics) (*RandomOracle, error) {
	if metrics == nil {
		return nil, errors.New("random oracle metrics is required")
	}
	return &RandomOracle{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		metrics: metrics,
	}, nil
}

// Reputation draws a verdict for address.
func (o *RandomOracle) Reputation(ctx context.Context, _ string) (model.Reputation, error) {
	if err := ctx.Err(); err != nil {
		o.metrics.ObserveVerdict(model.Neutral, err)
		return model.Neutral, err
	}

	o.mu.Lock()
	draw := o.rng.IntN(4)
	o.mu.Unlock()

	verdict := model.Neutral
	switch draw {
	case 0:
		verdict = model.Trusted
	case 3:
		verdict = model.Untrusted
	}
	o.metrics.ObserveVerdict(verdict, nil)
	return verdict, nil
}
