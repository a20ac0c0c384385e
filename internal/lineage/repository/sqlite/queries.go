package sqlite

const (
	txValueByHashQuery = `
SELECT val
FROM tx_map
WHERE hash = ?
LIMIT 1`

	txHashByValueQuery = `
SELECT hash
FROM tx_map
WHERE val = ?
LIMIT 1`

	transactionByValueQuery = `
SELECT tx_val, n_inputs, n_outputs, block_height, is_coinbase
FROM tx
WHERE tx_val = ?
LIMIT 1`

	inputsByValueQuery = `
SELECT tx_val, prev_hash, prev_index
FROM input
WHERE tx_val = ?
ORDER BY rowid ASC`

	spendersByPrevHashQuery = `
SELECT tx_val, prev_index
FROM input
WHERE prev_hash = ?
ORDER BY rowid ASC`

	outputsByValueQuery = `
SELECT tx_val, value, address
FROM output
WHERE tx_val = ?
ORDER BY rowid ASC`

	coinbaseValueByHeightQuery = `
SELECT tx_val
FROM tx
WHERE is_coinbase = 1 AND block_height = ?
ORDER BY rowid ASC
LIMIT 1`

	blockHeightRangeQuery = `
SELECT MIN(block_height), MAX(block_height)
FROM tx`
)
