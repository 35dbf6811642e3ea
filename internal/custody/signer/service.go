package signer

import (
	"context"

	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/custody/keycustody"
)

// ErrVaultLocked is returned when signing is attempted before the keystore
// has been unlocked.
var ErrVaultLocked = errors.New("key vault is locked")

// SignEVMRequest describes a native-coin transfer on an EVM chain.
type SignEVMRequest struct {
	ChainID        int64
	To             string // recipient, 0x-prefixed hex
	Value          string // wei, base-10 string
	GasLimit       uint64
	GasPrice       string // wei, base-10 string
	Nonce          uint64
	FromAddress    string // must match the key at DerivationPath
	DerivationPath string
}

// SignXRPLRequest describes an XRP payment.
type SignXRPLRequest struct {
	To                 string // classic r-address
	DestinationTag     *uint32
	Amount             string // drops, base-10 string
	Fee                string // drops, base-10 string
	Sequence           uint32
	LastLedgerSequence uint32 // 0 to omit
	FromAddress        string // must match the key at DerivationPath
	DerivationPath     string
}

// SignedTransaction is a chain-agnostic signed payload ready for broadcast.
type SignedTransaction struct {
	RawTransaction []byte
	TxHash         string
}

// Service signs transactions with keys derived from the unlocked vault. Keys
// only ever live on the stack of a single call.
type Service interface {
	SignEVMTransaction(ctx context.Context, req *SignEVMRequest) (*SignedTransaction, error)
	SignXRPLPayment(ctx context.Context, req *SignXRPLRequest) (*SignedTransaction, error)
}

type service struct {
	vault *keycustody.Vault
}

//nolint:ireturn
func NewService(vault *keycustody.Vault) Service {
	return &service{
		vault: vault,
	}
}
