package address

import (
	"context"
	"database/sql"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/custody/keycustody"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/util"
)

// ErrVaultLocked is returned when allocation is attempted before the keystore
// has been unlocked.
var ErrVaultLocked = errors.New("key vault is locked")

// Service allocates per-user deposit addresses. EVM chains get a fresh
// derived address per allocation; XRPL chains share the chain's custody
// account and hand out destination tags instead.
type Service interface {
	// AllocateAddress creates and persists a new deposit address for the user.
	AllocateAddress(ctx context.Context, userID string, chainID int) (*models.DepositAddress, error)

	// GetUserAddresses lists the user's deposit addresses, optionally
	// filtered by chain.
	GetUserAddresses(ctx context.Context, userID string, chainID *int) (models.DepositAddressSlice, error)

	// FindByAddress resolves an on-chain address (plus destination tag on
	// XRPL) back to its deposit address row.
	FindByAddress(ctx context.Context, chainID int, address string, destinationTag null.Int64) (*models.DepositAddress, error)
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

func (s *service) AllocateAddress(ctx context.Context, userID string, chainID int) (*models.DepositAddress, error) {
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

	index, err := s.nextIndex(ctx, chainID)
	if err != nil {
		return nil, err
	}

	depositAddress := &models.DepositAddress{
		ID:       uuid.New().String(),
		UserID:   userID,
		ChainID:  chainID,
		IsActive: true,
	}

	switch chain.ChainType {
	case models.ChainTypeEVM:
		path := keycustody.EVMPathForIndex(index)

		addr, err := keycustody.DeriveEVMAddress(seed, path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to derive deposit address")
		}

		depositAddress.Address = addr
		depositAddress.DerivationPath = path
	case models.ChainTypeXRPL:
		// one funded custody account per XRPL chain, users are told apart
		// by destination tag
		path := keycustody.XRPLPathForIndex(0)

		addr, err := keycustody.DeriveXRPLAddress(seed, path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to derive deposit address")
		}

		depositAddress.Address = addr
		depositAddress.DerivationPath = path
		depositAddress.DestinationTag = null.Int64From(index)
	default:
		return nil, errors.Errorf("unsupported chain type %q", chain.ChainType)
	}

	if err := depositAddress.Insert(ctx, s.db, boil.Infer()); err != nil {
		return nil, errors.Wrap(err, "failed to insert deposit address")
	}

	log.Info().
		Str("user_id", userID).
		Int("chain_id", chainID).
		Str("address", depositAddress.Address).
		Msg("Allocated deposit address")

	return depositAddress, nil
}

func (s *service) GetUserAddresses(ctx context.Context, userID string, chainID *int) (models.DepositAddressSlice, error) {
	mods := []qm.QueryMod{
		models.DepositAddressWhere.UserID.EQ(userID),
		qm.OrderBy(models.DepositAddressColumns.CreatedAt + " ASC"),
	}
	if chainID != nil {
		mods = append(mods, models.DepositAddressWhere.ChainID.EQ(*chainID))
	}

	addresses, err := models.DepositAddresses(mods...).All(ctx, s.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deposit addresses")
	}

	return addresses, nil
}

func (s *service) FindByAddress(ctx context.Context, chainID int, address string, destinationTag null.Int64) (*models.DepositAddress, error) {
	mods := []qm.QueryMod{
		models.DepositAddressWhere.ChainID.EQ(chainID),
		models.DepositAddressWhere.Address.EQ(address),
	}
	if destinationTag.Valid {
		mods = append(mods, models.DepositAddressWhere.DestinationTag.EQ(destinationTag))
	}

	depositAddress, err := models.DepositAddresses(mods...).One(ctx, s.db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, errors.Wrap(err, "failed to find deposit address")
	}

	return depositAddress, nil
}

// nextIndex serializes BIP44 index allocation per chain through a row lock,
// creating the counter row on first use.
func (s *service) nextIndex(ctx context.Context, chainID int) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	counter, err := models.AddressIndexes(
		models.AddressIndexWhere.ChainID.EQ(chainID),
		qm.For("UPDATE"),
	).One(ctx, tx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, errors.Wrap(err, "failed to lock address index")
		}

		counter = &models.AddressIndex{
			ID:        uuid.New().String(),
			ChainID:   chainID,
			NextIndex: 1,
		}
		if err := counter.Insert(ctx, tx, boil.Infer()); err != nil {
			return 0, errors.Wrap(err, "failed to create address index")
		}

		if err := tx.Commit(); err != nil {
			return 0, errors.Wrap(err, "failed to commit transaction")
		}

		return 0, nil
	}

	index := counter.NextIndex
	counter.NextIndex = index + 1

	if _, err := counter.Update(ctx, tx, boil.Whitelist(models.AddressIndexColumns.NextIndex, models.AddressIndexColumns.UpdatedAt)); err != nil {
		return 0, errors.Wrap(err, "failed to advance address index")
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "failed to commit transaction")
	}

	return index, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
