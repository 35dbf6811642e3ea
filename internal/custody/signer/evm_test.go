package signer

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/custody/keycustody"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// address at m/44'/60'/0'/0/0 for the test mnemonic
const testEVMAddress = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"

func newTestService(t *testing.T) Service {
	t.Helper()

	vault := keycustody.NewVault()
	vault.SetMnemonic([]byte(testMnemonic), "")
	t.Cleanup(vault.Clear)

	return NewService(vault)
}

func TestSignEVMTransaction(t *testing.T) {
	svc := newTestService(t)

	signed, err := svc.SignEVMTransaction(context.Background(), &SignEVMRequest{
		ChainID:        1,
		To:             "0x000000000000000000000000000000000000dEaD",
		Value:          "1000000000000000000",
		GasLimit:       21000,
		GasPrice:       "20000000000",
		Nonce:          7,
		FromAddress:    testEVMAddress,
		DerivationPath: "m/44'/60'/0'/0/0",
	})
	require.NoError(t, err)
	require.NotEmpty(t, signed.RawTransaction)

	var tx types.Transaction
	require.NoError(t, tx.UnmarshalBinary(signed.RawTransaction))

	assert.Equal(t, uint64(7), tx.Nonce())
	assert.Equal(t, uint64(21000), tx.Gas())
	assert.Equal(t, "20000000000", tx.GasPrice().String())
	assert.Equal(t, "1000000000000000000", tx.Value().String())
	assert.Equal(t, "0x000000000000000000000000000000000000dEaD", tx.To().Hex())
	assert.Equal(t, tx.Hash().Hex(), signed.TxHash)

	sender, err := types.Sender(types.NewEIP155Signer(big.NewInt(1)), &tx)
	require.NoError(t, err)
	assert.Equal(t, testEVMAddress, sender.Hex())
}

func TestSignEVMTransactionRejectsMismatchedSender(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SignEVMTransaction(context.Background(), &SignEVMRequest{
		ChainID:        1,
		To:             "0x000000000000000000000000000000000000dEaD",
		Value:          "1",
		GasLimit:       21000,
		GasPrice:       "1000000000",
		Nonce:          0,
		FromAddress:    "0x000000000000000000000000000000000000dEaD",
		DerivationPath: "m/44'/60'/0'/0/0",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestSignEVMTransactionRejectsBadInputs(t *testing.T) {
	svc := newTestService(t)

	for name, req := range map[string]*SignEVMRequest{
		"invalid recipient": {
			ChainID: 1, To: "not-an-address", Value: "1", GasPrice: "1",
			FromAddress: testEVMAddress, DerivationPath: "m/44'/60'/0'/0/0",
		},
		"invalid value": {
			ChainID: 1, To: testEVMAddress, Value: "1.5", GasPrice: "1",
			FromAddress: testEVMAddress, DerivationPath: "m/44'/60'/0'/0/0",
		},
		"invalid gas price": {
			ChainID: 1, To: testEVMAddress, Value: "1", GasPrice: "",
			FromAddress: testEVMAddress, DerivationPath: "m/44'/60'/0'/0/0",
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.SignEVMTransaction(context.Background(), req)
			assert.Error(t, err)
		})
	}
}

func TestSignEVMTransactionRequiresUnlockedVault(t *testing.T) {
	svc := NewService(keycustody.NewVault())

	_, err := svc.SignEVMTransaction(context.Background(), &SignEVMRequest{
		ChainID: 1, To: testEVMAddress, Value: "1", GasPrice: "1",
		FromAddress: testEVMAddress, DerivationPath: "m/44'/60'/0'/0/0",
	})
	require.Error(t, err)
	assert.Equal(t, ErrVaultLocked, err)
}
