package fixtures

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"

	"github.com/tesserex/custody/internal/models"
)

// Insertable models can be part of the test fixture set.
type Insertable interface {
	Insert(ctx context.Context, exec boil.ContextExecutor, columns boil.Columns) error
}

// FixtureMap is the test seed: two chains (one per chain family), an
// aggregation wallet and a hot wallet on each, plus a user with deposit
// addresses and a funded balance. IDs are stable so tests can reference them.
type FixtureMap struct {
	ChainSepolia *models.Chain
	ChainXRPL    *models.Chain

	AdminWalletSepolia *models.AdminWallet
	AdminWalletXRPL    *models.AdminWallet

	HotWalletSepolia *models.HotWallet
	HotWalletXRPL    *models.HotWallet

	User1                   string
	User1DepositAddressEVM  *models.DepositAddress
	User1DepositAddressXRPL *models.DepositAddress
	User1BalanceSepolia     *models.UserBalance
}

func Fixtures() FixtureMap {
	f := FixtureMap{
		User1: "11b13d29-5c4e-420e-b991-a631d3938776",
	}

	f.ChainSepolia = &models.Chain{
		ChainID:               11155111,
		Name:                  "Ethereum Sepolia",
		ChainType:             models.ChainTypeEVM,
		NativeSymbol:          "ETH",
		NativeDecimals:        18,
		RPCUrls:               "http://127.0.0.1:8545",
		RequiredConfirmations: 12,
		SweepGasLimit:         21000,
		MaxWithdrawAmount:     "0",
		IsActive:              true,
	}

	f.ChainXRPL = &models.Chain{
		ChainID:               2,
		Name:                  "XRPL Testnet",
		ChainType:             models.ChainTypeXRPL,
		NativeSymbol:          "XRP",
		NativeDecimals:        6,
		RPCUrls:               "http://127.0.0.1:5005",
		RequiredConfirmations: 1,
		SweepGasLimit:         0,
		MaxWithdrawAmount:     "0",
		IsActive:              true,
	}

	f.AdminWalletSepolia = &models.AdminWallet{
		ID:       "0f2bdfd5-7b3a-4f79-ae09-5e81e4a4c931",
		ChainID:  f.ChainSepolia.ChainID,
		Address:  "0xaB5801a7D398351b8bE11C439e05C5B3259aeC9B",
		IsActive: true,
	}

	f.AdminWalletXRPL = &models.AdminWallet{
		ID:       "48721677-0b28-4a5c-868e-89dc15439f9e",
		ChainID:  f.ChainXRPL.ChainID,
		Address:  "raDZVbjyFnUWD5C125AyA2Yq5dAbjPcVzk",
		IsActive: true,
	}

	f.HotWalletSepolia = &models.HotWallet{
		ID:             "97a6a0d4-4df9-4b86-9ef0-33e0e9a88b06",
		ChainID:        f.ChainSepolia.ChainID,
		Address:        "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		DerivationPath: "m/44'/60'/1'/0/0",
		NextNonce:      0,
		MinBalance:     "1000000000000000000",
		IsActive:       true,
	}

	f.HotWalletXRPL = &models.HotWallet{
		ID:             "615dba76-4f31-42a7-97ef-7b25ef09622e",
		ChainID:        f.ChainXRPL.ChainID,
		Address:        "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
		DerivationPath: "m/44'/144'/1'/0/0",
		NextNonce:      0,
		MinBalance:     "20000000",
		IsActive:       true,
	}

	f.User1DepositAddressEVM = &models.DepositAddress{
		ID:             "f0a9f29d-07f6-4e21-b9e0-4a0f26b7b1ed",
		UserID:         f.User1,
		ChainID:        f.ChainSepolia.ChainID,
		Address:        "0x02f0256cBbBA395cD1bf7Ac0d9Fd86b8B3a0c1B2",
		DerivationPath: "m/44'/60'/0'/0/0",
		IsActive:       true,
	}

	f.User1DepositAddressXRPL = &models.DepositAddress{
		ID:             "8d23fcb8-56e6-4f02-9d54-cbb1f5e11b1c",
		UserID:         f.User1,
		ChainID:        f.ChainXRPL.ChainID,
		Address:        "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
		DerivationPath: "m/44'/144'/0'/0/0",
		DestinationTag: null.Int64From(1001),
		IsActive:       true,
	}

	f.User1BalanceSepolia = &models.UserBalance{
		ID:        "0e2f0b0a-2f38-49a0-9b6e-6fbc1a1c7dfb",
		UserID:    f.User1,
		ChainID:   f.ChainSepolia.ChainID,
		Available: "5000000000000000000",
		Frozen:    "0",
	}

	return f
}

// Inserts returns the fixtures in foreign key dependency order.
func Inserts() []Insertable {
	f := Fixtures()

	return []Insertable{
		f.ChainSepolia,
		f.ChainXRPL,
		f.AdminWalletSepolia,
		f.AdminWalletXRPL,
		f.HotWalletSepolia,
		f.HotWalletXRPL,
		f.User1DepositAddressEVM,
		f.User1DepositAddressXRPL,
		f.User1BalanceSepolia,
	}
}
