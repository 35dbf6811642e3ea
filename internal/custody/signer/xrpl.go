package signer

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/custody/keycustody"
)

// SignXRPLPayment builds, signs and serializes a native XRP payment in the
// XRPL canonical binary format.
func (s *service) SignXRPLPayment(_ context.Context, req *SignXRPLRequest) (*SignedTransaction, error) {
	seed := s.vault.Seed()
	if seed == nil {
		return nil, ErrVaultLocked
	}
	defer zero(seed)

	privateKey, pubKey, err := keycustody.DeriveXRPLKeyPair(seed, req.DerivationPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key pair")
	}
	defer zero(privateKey)

	if derived := keycustody.XRPLAddressFromPubKey(pubKey); derived != req.FromAddress {
		return nil, errors.New("from address does not match derived key")
	}

	payment, err := newXRPLPayment(req, pubKey)
	if err != nil {
		return nil, err
	}

	priv, _ := btcec.PrivKeyFromBytes(privateKey)

	// XRPL signatures are DER-encoded ECDSA over SHA512Half, low-S enforced
	signature := btcecdsa.Sign(priv, payment.signingHash())
	payment.txnSignature = signature.Serialize()

	signedBlob := payment.serialize()

	return &SignedTransaction{
		RawTransaction: signedBlob,
		TxHash:         strings.ToUpper(hex.EncodeToString(txID(signedBlob))),
	}, nil
}
