package hotwallet

import (
	"context"
	"database/sql"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/custody/keycustody"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/util"
)

var (
	// ErrVaultLocked is returned when wallet creation is attempted before the
	// keystore has been unlocked.
	ErrVaultLocked = errors.New("key vault is locked")

	// ErrNoActiveHotWallet is returned when a chain has no active hot wallet
	// to pay withdrawals from.
	ErrNoActiveHotWallet = errors.New("no active hot wallet for chain")
)

// Service manages the hot wallets that fund user withdrawals.
type Service interface {
	// CreateHotWallet derives a fresh hot wallet address for the chain and
	// persists it.
	CreateHotWallet(ctx context.Context, chainID int, minBalance string) (*models.HotWallet, error)

	// GetActiveHotWallet returns the active hot wallet for the chain.
	GetActiveHotWallet(ctx context.Context, chainID int) (*models.HotWallet, error)

	// ListHotWallets returns all hot wallets, ordered by chain.
	ListHotWallets(ctx context.Context) (models.HotWalletSlice, error)

	// GetNextNonce hands out the wallet's next transaction nonce exactly
	// once, serialized through a row lock.
	GetNextNonce(ctx context.Context, hotWalletID string) (int64, error)
}

type service struct {
	db           *sql.DB
	chainService chains.Service
	vault        *keycustody.Vault
}

//nolint:ireturn
func NewService(db *sql.DB, chainService chains.Service, vault *keycustody.Vault) Service {
	return &service{
		db:           db,
		chainService: chainService,
		vault:        vault,
	}
}

func (s *service) CreateHotWallet(ctx context.Context, chainID int, minBalance string) (*models.HotWallet, error) {
	log := util.LogFromContext(ctx)

	chain, err := s.chainService.GetActiveChain(ctx, chainID)
	if err != nil {
		return nil, err
	}

	seed := s.vault.Seed()
	if seed == nil {
		return nil, ErrVaultLocked
	}
	defer zeroBytes(seed)

	count, err := models.HotWallets(
		models.HotWalletWhere.ChainID.EQ(chainID),
	).Count(ctx, s.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count hot wallets")
	}

	var path, address string

	switch chain.ChainType {
	case models.ChainTypeEVM:
		path = keycustody.EVMHotWalletPathForIndex(count)
		address, err = keycustody.DeriveEVMAddress(seed, path)
	case models.ChainTypeXRPL:
		path = keycustody.XRPLHotWalletPathForIndex(count)
		address, err = keycustody.DeriveXRPLAddress(seed, path)
	default:
		return nil, errors.Errorf("unsupported chain type %q", chain.ChainType)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive hot wallet address")
	}

	wallet := &models.HotWallet{
		ID:             uuid.New().String(),
		ChainID:        chainID,
		Address:        address,
		DerivationPath: path,
		NextNonce:      0,
		MinBalance:     minBalance,
		IsActive:       true,
	}

	if err := wallet.Insert(ctx, s.db, boil.Infer()); err != nil {
		return nil, errors.Wrap(err, "failed to insert hot wallet")
	}

	log.Info().
		Str("hot_wallet_id", wallet.ID).
		Int("chain_id", chainID).
		Str("address", address).
		Msg("Created hot wallet")

	return wallet, nil
}

func (s *service) GetActiveHotWallet(ctx context.Context, chainID int) (*models.HotWallet, error) {
	wallet, err := models.HotWallets(
		models.HotWalletWhere.ChainID.EQ(chainID),
		models.HotWalletWhere.IsActive.EQ(true),
		qm.OrderBy(models.HotWalletColumns.CreatedAt+" ASC"),
	).One(ctx, s.db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActiveHotWallet
		}
		return nil, errors.Wrap(err, "failed to load hot wallet")
	}

	return wallet, nil
}

func (s *service) ListHotWallets(ctx context.Context) (models.HotWalletSlice, error) {
	wallets, err := models.HotWallets(
		qm.OrderBy(models.HotWalletColumns.ChainID+" ASC, "+models.HotWalletColumns.CreatedAt+" ASC"),
	).All(ctx, s.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hot wallets")
	}

	return wallets, nil
}

func (s *service) GetNextNonce(ctx context.Context, hotWalletID string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	wallet, err := models.HotWallets(
		models.HotWalletWhere.ID.EQ(hotWalletID),
		qm.For("UPDATE"),
	).One(ctx, tx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to lock hot wallet")
	}

	nonce := wallet.NextNonce
	wallet.NextNonce = nonce + 1

	if _, err := wallet.Update(ctx, tx, boil.Whitelist(
		models.HotWalletColumns.NextNonce,
		models.HotWalletColumns.UpdatedAt,
	)); err != nil {
		return 0, errors.Wrap(err, "failed to advance hot wallet nonce")
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "failed to commit transaction")
	}

	return nonce, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
