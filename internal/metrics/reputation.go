package metrics

import (
	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var reputationVerdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "blockinsight7000",
	Subsystem: "reputation_oracle",
	Name:      "verdicts_total",
	Help:      "Count of reputation oracle verdicts.",
}, []string{"oracle", "verdict"})

// Reputation tracks verdicts returned by a reputation oracle.
type Reputation struct {
	oracle string
}

// NewReputation creates a Reputation metrics collector labelled with the oracle name.
func NewReputation(oracle string) *Reputation {
	if oracle == "" {
		oracle = "unknown"
	}
	return &Reputation{oracle: oracle}
}

// ObserveVerdict records one oracle answer; failed calls are counted under the "error" verdict.
func (m Reputation) ObserveVerdict(verdict model.Reputation, err error) {
	label := string(verdict)
	if err != nil {
		label = "error"
	}
	if label == "" {
		label = "unknown"
	}
	reputationVerdictsTotal.WithLabelValues(m.oracle, label).Inc()
}
