package gateway

import (
	"context"
	"math/big"
)

// TransactionMeta describes what a chain currently knows about a transaction.
type TransactionMeta struct {
	// Found is false while the transaction is unknown to the queried nodes.
	Found bool
	// Included is true once the transaction sits in a block/validated ledger.
	// A found but not yet included transaction (XRPL submitted, unvalidated)
	// has no final outcome and must be treated as still pending.
	Included bool
	// BlockNumber is the block the transaction was included in; 0 while pending.
	BlockNumber int64
	// Confirmations counts blocks since inclusion, including the containing block.
	Confirmations int64
	// Succeeded is only meaningful once Included is true.
	// A transaction can be included and still have failed (reverted, tec-class result).
	Succeeded bool
}

// Gateway is the read/write access to a single chain. Implementations classify
// their failures via cerr so callers can decide about retries without
// inspecting provider-specific error strings.
type Gateway interface {
	// GetBalance returns the spendable balance of the address in base units.
	GetBalance(ctx context.Context, address string) (*big.Int, error)

	// SuggestFeeRate returns the current fee rate in base units
	// (wei per gas on EVM chains, drops per transaction on XRPL).
	SuggestFeeRate(ctx context.Context) (*big.Int, error)

	// GetAccountSequence returns the next usable nonce (EVM) or the current
	// account sequence (XRPL) for the address.
	GetAccountSequence(ctx context.Context, address string) (uint64, error)

	// GetTransactionMeta looks up inclusion state and confirmation depth.
	GetTransactionMeta(ctx context.Context, txHash string) (*TransactionMeta, error)

	// Broadcast submits a signed raw transaction, returning its hash.
	Broadcast(ctx context.Context, rawTx []byte) (string, error)

	// Close releases any held connections.
	Close()
}
