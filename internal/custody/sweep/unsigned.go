package sweep

import (
	"encoding/json"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/models"
)

// unsignedEVMTx is the sweep transaction persisted on a planned job for EVM
// chains. Quantity fields carry 0x-prefixed hex per the JSON-RPC convention.
type unsignedEVMTx struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Value    string `json:"value"`
	Gas      string `json:"gas"`
	GasPrice string `json:"gasPrice"`
	Nonce    string `json:"nonce"`
	ChainID  int64  `json:"chainId"`
}

// unsignedXRPLPayment is the sweep transaction persisted on a planned job
// for XRPL chains, amounts in drops.
type unsignedXRPLPayment struct {
	TransactionType string `json:"TransactionType"`
	Account         string `json:"Account"`
	Destination     string `json:"Destination"`
	Amount          string `json:"Amount"`
	Fee             string `json:"Fee"`
	Sequence        uint32 `json:"Sequence"`
}

func hexQuantity(v *big.Int) string {
	return "0x" + v.Text(16)
}

func hexUint(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

func parseHexQuantity(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimPrefix(s, "0x"), 16)
	if !ok {
		return nil, errors.Errorf("malformed hex quantity %q", s)
	}

	return v, nil
}

func parseHexUint(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "malformed hex quantity %q", s)
	}

	return v, nil
}

func buildUnsignedTx(chain *models.Chain, from string, to string, amount *big.Int, feeRate *big.Int, gasLimit int64, sequence uint64) (string, error) {
	var payload interface{}

	switch chain.ChainType {
	case models.ChainTypeEVM:
		payload = &unsignedEVMTx{
			From:     from,
			To:       to,
			Value:    hexQuantity(amount),
			Gas:      hexUint(uint64(gasLimit)),
			GasPrice: hexQuantity(feeRate),
			Nonce:    hexUint(sequence),
			ChainID:  int64(chain.ChainID),
		}
	case models.ChainTypeXRPL:
		payload = &unsignedXRPLPayment{
			TransactionType: "Payment",
			Account:         from,
			Destination:     to,
			Amount:          amount.String(),
			Fee:             feeRate.String(),
			Sequence:        uint32(sequence),
		}
	default:
		return "", errors.Errorf("unsupported chain type %q", chain.ChainType)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode unsigned transaction")
	}

	return string(raw), nil
}
