// Package reputation provides address reputation oracles used to classify lineage participants.
package reputation

import (
	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveVerdict(verdict model.Reputation, err error)
	}
)
