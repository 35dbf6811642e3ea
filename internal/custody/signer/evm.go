package signer

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/custody/keycustody"
)

// SignEVMTransaction builds and signs a legacy (EIP-155 replay protected)
// native transfer. Sweeps and withdrawals only ever move the native coin, so
// a single gas price covers the fee model on every supported EVM chain.
func (s *service) SignEVMTransaction(_ context.Context, req *SignEVMRequest) (*SignedTransaction, error) {
	if !common.IsHexAddress(req.To) {
		return nil, errors.Errorf("invalid recipient address %q", req.To)
	}

	value, ok := new(big.Int).SetString(req.Value, 10)
	if !ok {
		return nil, errors.New("invalid value format")
	}

	gasPrice, ok := new(big.Int).SetString(req.GasPrice, 10)
	if !ok {
		return nil, errors.New("invalid gas price format")
	}

	seed := s.vault.Seed()
	if seed == nil {
		return nil, ErrVaultLocked
	}
	defer zero(seed)

	privateKey, err := keycustody.DeriveEVMPrivateKey(seed, req.DerivationPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive private key")
	}
	defer zero(privateKey)

	ecdsaKey, err := ethcrypto.ToECDSA(privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert private key to ECDSA")
	}

	derivedAddress := ethcrypto.PubkeyToAddress(ecdsaKey.PublicKey)
	if derivedAddress != common.HexToAddress(req.FromAddress) {
		return nil, errors.New("from address does not match derived key")
	}

	toAddress := common.HexToAddress(req.To)

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    req.Nonce,
		GasPrice: gasPrice,
		Gas:      req.GasLimit,
		To:       &toAddress,
		Value:    value,
	})

	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(big.NewInt(req.ChainID)), ecdsaKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}

	rawTx, err := signedTx.MarshalBinary()
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal transaction")
	}

	return &SignedTransaction{
		RawTransaction: rawTx,
		TxHash:         signedTx.Hash().Hex(),
	}, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
