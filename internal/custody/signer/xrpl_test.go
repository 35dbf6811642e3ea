package signer

import (
	"context"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/custody/keycustody"
)

func testXRPLSender(t *testing.T) (string, []byte) {
	t.Helper()

	vault := keycustody.NewVault()
	vault.SetMnemonic([]byte(testMnemonic), "")
	defer vault.Clear()

	seed := vault.Seed()
	require.NotNil(t, seed)

	privateKey, pubKey, err := keycustody.DeriveXRPLKeyPair(seed, keycustody.XRPLPathForIndex(0))
	require.NoError(t, err)
	defer func() {
		for i := range privateKey {
			privateKey[i] = 0
		}
	}()

	return keycustody.XRPLAddressFromPubKey(pubKey), pubKey
}

func TestSignXRPLPayment(t *testing.T) {
	svc := newTestService(t)
	from, pubKey := testXRPLSender(t)

	tag := uint32(884921)

	signed, err := svc.SignXRPLPayment(context.Background(), &SignXRPLRequest{
		To:                 "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		DestinationTag:     &tag,
		Amount:             "25000000",
		Fee:                "12",
		Sequence:           42,
		LastLedgerSequence: 90000200,
		FromAddress:        from,
		DerivationPath:     keycustody.XRPLPathForIndex(0),
	})
	require.NoError(t, err)
	require.NotEmpty(t, signed.RawTransaction)
	assert.Len(t, signed.TxHash, 64)

	// TransactionType Payment is always the first field
	assert.Equal(t, []byte{0x12, 0x00, 0x00}, signed.RawTransaction[:3])

	// rebuild the unsigned payload and check the embedded signature over it
	payment, err := newXRPLPayment(&SignXRPLRequest{
		To:                 "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		DestinationTag:     &tag,
		Amount:             "25000000",
		Fee:                "12",
		Sequence:           42,
		LastLedgerSequence: 90000200,
		FromAddress:        from,
	}, pubKey)
	require.NoError(t, err)

	unsigned := payment.serialize()

	// the signature is spliced in directly before the two trailing
	// AccountID fields (Account and Destination, 22 bytes each)
	sigStart := len(unsigned) - 44
	require.Equal(t, byte(0x74), signed.RawTransaction[sigStart]) // TxnSignature field ID

	sigLen := int(signed.RawTransaction[sigStart+1])
	sigDER := signed.RawTransaction[sigStart+2 : sigStart+2+sigLen]

	signature, err := btcecdsa.ParseDERSignature(sigDER)
	require.NoError(t, err)

	parsedPub, err := btcec.ParsePubKey(pubKey)
	require.NoError(t, err)

	assert.True(t, signature.Verify(payment.signingHash(), parsedPub))

	// the signed blob equals the unsigned one with the signature spliced in
	assert.Equal(t, unsigned[:sigStart], signed.RawTransaction[:sigStart])
}

func TestSignXRPLPaymentOmitsOptionalFields(t *testing.T) {
	svc := newTestService(t)
	from, _ := testXRPLSender(t)

	withTag := uint32(1)

	tagged, err := svc.SignXRPLPayment(context.Background(), &SignXRPLRequest{
		To:             "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		DestinationTag: &withTag,
		Amount:         "1000000",
		Fee:            "10",
		Sequence:       1,
		FromAddress:    from,
		DerivationPath: keycustody.XRPLPathForIndex(0),
	})
	require.NoError(t, err)

	untagged, err := svc.SignXRPLPayment(context.Background(), &SignXRPLRequest{
		To:             "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		Amount:         "1000000",
		Fee:            "10",
		Sequence:       1,
		FromAddress:    from,
		DerivationPath: keycustody.XRPLPathForIndex(0),
	})
	require.NoError(t, err)

	// the DestinationTag field (0x2E + 4 bytes) is only present when set
	assert.Greater(t, len(tagged.RawTransaction), len(untagged.RawTransaction))
	assert.Contains(t, string(tagged.RawTransaction), string([]byte{0x2E, 0x00, 0x00, 0x00, 0x01}))
	assert.NotContains(t, string(untagged.RawTransaction), string([]byte{0x2E, 0x00, 0x00, 0x00, 0x01}))
}

func TestSignXRPLPaymentRejectsBadInputs(t *testing.T) {
	svc := newTestService(t)
	from, _ := testXRPLSender(t)

	for name, req := range map[string]*SignXRPLRequest{
		"invalid destination": {
			To: "0xdeadbeef", Amount: "1", Fee: "10", Sequence: 1,
			FromAddress: from, DerivationPath: keycustody.XRPLPathForIndex(0),
		},
		"negative amount": {
			To: "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", Amount: "-5", Fee: "10", Sequence: 1,
			FromAddress: from, DerivationPath: keycustody.XRPLPathForIndex(0),
		},
		"amount exceeds supply": {
			To: "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", Amount: "999999999999999999999", Fee: "10", Sequence: 1,
			FromAddress: from, DerivationPath: keycustody.XRPLPathForIndex(0),
		},
		"mismatched sender": {
			To: "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", Amount: "1", Fee: "10", Sequence: 1,
			FromAddress: "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", DerivationPath: keycustody.XRPLPathForIndex(0),
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.SignXRPLPayment(context.Background(), req)
			assert.Error(t, err)
		})
	}
}
