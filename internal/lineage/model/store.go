package model

// TxRecord is a row of the transaction metadata table.
type TxRecord struct {
	Value       uint64
	InputCount  uint32
	OutputCount uint32
	BlockHeight uint64
	IsCoinbase  bool
}

// InputRecord is a row of the inputs table: the transaction Value spends output PrevIndex of PrevHash.
type InputRecord struct {
	TxValue   uint64
	PrevHash  string
	PrevIndex uint32
}

// SpenderRecord links an output index of some transaction to the transaction that spent it.
type SpenderRecord struct {
	TxValue   uint64
	PrevIndex uint32
}

// OutputRecord is a row of the outputs table with its receiver address already resolved.
type OutputRecord struct {
	TxValue uint64
	Value   int64
	Address string
}

// StoreStatus describes the block range currently indexed by the store.
type StoreStatus struct {
	MinBlockHeight uint64 `json:"min_block_height"`
	MaxBlockHeight uint64 `json:"max_block_height"`
	Empty          bool   `json:"empty"`
}
