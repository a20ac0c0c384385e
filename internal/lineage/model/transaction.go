// Package model defines the lineage domain: assembled transactions, the rows they are built from and
// the graph payload returned to clients.
package model

// CoinbaseAddress is the sender of the synthetic input attached to block reward transactions.
const CoinbaseAddress = "COINBASE"

// Transaction is a transaction reassembled from the store. It is built per request and never persisted.
type Transaction struct {
	Hash        string   `json:"hash"`
	BlockHeight uint64   `json:"block_height"`
	Inputs      []Input  `json:"inputs"`
	Outputs     []Output `json:"outputs"`
	Fees        int64    `json:"fees"`
}

// Input is a spent output that funded the transaction.
// PrevTxHash is empty only for the synthetic coinbase input.
type Input struct {
	PrevTxHash    string `json:"prev_tx_hash"`
	SenderAddress string `json:"sender_address"`
	Amount        int64  `json:"amount"`
}

// Output is a payment produced by the transaction. NextTxHash is empty while the output is unspent.
type Output struct {
	ReceiverAddress string `json:"receiver_address"`
	Amount          int64  `json:"amount"`
	NextTxHash      string `json:"next_tx_hash"`
}

// IsCoinbase reports whether the transaction carries the synthetic block reward input.
func (t *Transaction) IsCoinbase() bool {
	return len(t.Inputs) == 1 && t.Inputs[0].PrevTxHash == "" && t.Inputs[0].SenderAddress == CoinbaseAddress
}

// InputSum returns the total amount of all inputs.
func (t *Transaction) InputSum() int64 {
	var sum int64
	for _, in := range t.Inputs {
		sum += in.Amount
	}
	return sum
}

// OutputSum returns the total amount of all outputs.
func (t *Transaction) OutputSum() int64 {
	var sum int64
	for _, out := range t.Outputs {
		sum += out.Amount
	}
	return sum
}

// Graph is the flattened neighbourhood of a transaction together with the classified participants.
type Graph struct {
	Transactions []*Transaction `json:"txns"`
	Blacklist    []string       `json:"blacklist"`
	Whitelist    []string       `json:"whitelist"`
}
