package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// AddressClassifier splits the participants of a transaction set into blacklisted and whitelisted
// addresses using the reputation oracle.
type AddressClassifier struct {
	oracle       ReputationOracle
	cacheMetrics CacheMetrics
	metrics      ClassifierMetrics
	verdicts     *lru.Cache[string, model.Reputation]
	logger       *zap.Logger
}

// NewAddressClassifier constructs an AddressClassifier remembering at most size verdicts.
func NewAddressClassifier(
	oracle ReputationOracle,
	cacheMetrics CacheMetrics,
	metrics ClassifierMetrics,
	size int,
	logger *zap.Logger,
) (*AddressClassifier, error) {
	if oracle == nil {
		return nil, errors.New("classifier reputation oracle is required")
	}
	if cacheMetrics == nil || metrics == nil {
		return nil, errors.New("classifier metrics is required")
	}
	if size <= 0 {
		size = defaultReputationCacheSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	verdicts, err := lru.New[string, model.Reputation](size)
	if err != nil {
		return nil, fmt.Errorf("init reputation cache: %w", err)
	}
	return &AddressClassifier{
		oracle:       oracle,
		cacheMetrics: cacheMetrics,
		metrics:      metrics,
		verdicts:     verdicts,
		logger:       logger,
	}, nil
}

// Classify returns the untrusted and trusted addresses among all senders and receivers of txs, each in
// first-seen order. Neutral addresses, the coinbase marker and empty addresses are left out.
// An oracle failure counts as neutral for that address and is not remembered.
func (c *AddressClassifier) Classify(ctx context.Context, txs []*model.Transaction) (blacklist, whitelist []string, err error) {
	blacklist = make([]string, 0)
	whitelist = make([]string, 0)

	for _, address := range participants(txs) {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		switch c.reputation(ctx, address) {
		case model.Untrusted:
			blacklist = append(blacklist, address)
		case model.Trusted:
			whitelist = append(whitelist, address)
		}
	}
	return blacklist, whitelist, nil
}

func (c *AddressClassifier) reputation(ctx context.Context, address string) model.Reputation {
	if verdict, ok := c.verdicts.Get(address); ok {
		c.cacheMetrics.ObserveCacheLookup(reputationCache, true)
		return verdict
	}
	c.cacheMetrics.ObserveCacheLookup(reputationCache, false)

	verdict, err := c.oracle.Reputation(ctx, address)
	c.metrics.ObserveVerdict(verdict, err)
	if err != nil {
		c.logger.Warn("reputation lookup failed", zap.String("address", address), zap.Error(err))
		return model.Neutral
	}

	c.verdicts.Add(address, verdict)
	return verdict
}

func participants(txs []*model.Transaction) []string {
	seen := make(map[string]struct{})
	var addresses []string
	add := func(address string) {
		if address == "" || address == model.CoinbaseAddress {
			return
		}
		if _, ok := seen[address]; ok {
			return
		}
		seen[address] = struct{}{}
		addresses = append(addresses, address)
	}

	for _, tx := range txs {
		for _, in := range tx.Inputs {
			add(in.SenderAddress)
		}
		for _, out := range tx.Outputs {
			add(out.ReceiverAddress)
		}
	}
	return addresses
}
