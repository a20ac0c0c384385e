package clickhouse

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// addressDecoder picks the receiver of an output, falling back to the locking script when the
// ingester stored no address.
type addressDecoder struct {
	params *chaincfg.Params
}

func newAddressDecoder(network string) (*addressDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &addressDecoder{params: params}, nil
}

// receiver returns the first stored address, or the first address encoded in scriptHex.
// Non-standard and unparsable scripts have no receiver.
func (d *addressDecoder) receiver(addresses []string, scriptHex string) string {
	if len(addresses) > 0 {
		return addresses[0]
	}
	if scriptHex == "" {
		return ""
	}

	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return ""
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(script, d.params)
	if err != nil || len(addrs) == 0 {
		return ""
	}
	return addrs[0].EncodeAddress()
}

func chainParamsForNetwork(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(network) {
	case "", "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
