package reputation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	"gopkg.in/yaml.v3"
)

// ListFile is the on-disk layout of a static reputation list.
type ListFile struct {
	Whitelist []string `yaml:"whitelist"`
	Blacklist []string `yaml:"blacklist"`
}

// StaticOracle answers from fixed lists. An address listed on both sides is untrusted.
type StaticOracle struct {
	verdicts map[string]model.Reputation
	metrics  Metrics
}

// NewStaticOracle constructs a StaticOracle from the given lists.
func NewStaticOracle(whitelist, blacklist []string, metrics Metrics) (*StaticOracle, error) {
	if metrics == nil {
		return nil, errors.New("static oracle metrics is required")
	}

	verdicts := make(map[string]model.Reputation, len(whitelist)+len(blacklist))
	for _, address := range whitelist {
		if address = strings.TrimSpace(address); address != "" {
			verdicts[address] = model.Trusted
		}
	}
	for _, address := range blacklist {
		if address = strings.TrimSpace(address); address != "" {
			verdicts[address] = model.Untrusted
		}
	}
	return &StaticOracle{verdicts: verdicts, metrics: metrics}, nil
}

// LoadStaticOracle reads a YAML ListFile from path.
func LoadStaticOracle(path string, metrics Metrics) (*StaticOracle, error) {
	if path == "" {
		return nil, errors.New("reputation list path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reputation list %s: %w", path, err)
	}

	var lists ListFile
	if err := yaml.Unmarshal(data, &lists); err != nil {
		return nil, fmt.Errorf("parse reputation list %s: %w", path, err)
	}
	return NewStaticOracle(lists.Whitelist, lists.Blacklist, metrics)
}

// Reputation returns the listed verdict of address, or neutral when it is not listed.
func (o *StaticOracle) Reputation(_ context.Context, address string) (model.Reputation, error) {
	verdict, ok := o.verdicts[address]
	if !ok {
		verdict = model.Neutral
	}
	o.metrics.ObserveVerdict(verdict, nil)
	return verdict, nil
}
