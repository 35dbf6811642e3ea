package confirm

import (
	"context"
	"database/sql"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/metrics"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/util"
	"github.com/tesserex/custody/internal/util/db"
)

// IngestRequest describes an observed inbound transfer, typically delivered by
// a node webhook or a block scanner.
type IngestRequest struct {
	ChainID          int
	DepositAddressID string
	TxHash           string
	Amount           string
	BlockNumber      null.Int64
	DestinationTag   null.Int64
}

// Service tracks inbound deposits from first sighting to final credit.
type Service interface {
	// IngestDeposit records an observed transfer as a pending deposit. It is
	// idempotent per (chain, tx hash, deposit address) and returns the
	// existing row when the transfer was already seen.
	IngestDeposit(ctx context.Context, req IngestRequest) (*models.Deposit, error)

	// RunConfirmationCycle re-checks every pending deposit against its chain
	// and advances it to confirmed or failed.
	RunConfirmationCycle(ctx context.Context) error

	// Start launches the confirmation worker until ctx is cancelled.
	Start(ctx context.Context, interval time.Duration)
}

type Config struct {
	// ConfirmTimeout fails a pending deposit whose transaction has not
	// appeared on chain since it was first seen.
	ConfirmTimeout time.Duration
}

type service struct {
	config       Config
	db           *sql.DB
	chainService chains.Service
	metrics      *metrics.Service
}

//nolint:ireturn
func NewService(config Config, db *sql.DB, chainService chains.Service, metricsService *metrics.Service) Service {
	return &service{
		config:       config,
		db:           db,
		chainService: chainService,
		metrics:      metricsService,
	}
}

func (s *service) IngestDeposit(ctx context.Context, req IngestRequest) (*models.Deposit, error) {
	log := util.LogFromContext(ctx)

	existing, err := models.Deposits(
		models.DepositWhere.ChainID.EQ(req.ChainID),
		models.DepositWhere.TxHash.EQ(req.TxHash),
		models.DepositWhere.DepositAddressID.EQ(req.DepositAddressID),
	).One(ctx, s.db)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrap(err, "failed to check for existing deposit")
	}

	chain, err := s.chainService.GetChain(ctx, req.ChainID)
	if err != nil {
		return nil, err
	}

	deposit := &models.Deposit{
		ID:                    uuid.New().String(),
		DepositAddressID:      req.DepositAddressID,
		ChainID:               req.ChainID,
		TxHash:                req.TxHash,
		Amount:                req.Amount,
		Confirmations:         0,
		RequiredConfirmations: chain.RequiredConfirmations,
		Status:                models.DepositStatusPending,
		BlockNumber:           req.BlockNumber,
		DestinationTag:        req.DestinationTag,
		FirstSeenAt:           time.Now(),
	}

	if err := deposit.Insert(ctx, s.db, boil.Infer()); err != nil {
		return nil, errors.Wrap(err, "failed to insert deposit")
	}

	s.metrics.DepositsIngested.Inc()

	log.Info().
		Str("deposit_id", deposit.ID).
		Int("chain_id", req.ChainID).
		Str("tx_hash", req.TxHash).
		Str("amount", req.Amount).
		Msg("Ingested pending deposit")

	return deposit, nil
}

func (s *service) RunConfirmationCycle(ctx context.Context) error {
	pending, err := models.Deposits(
		models.DepositWhere.Status.EQ(models.DepositStatusPending),
		qm.OrderBy(models.DepositColumns.FirstSeenAt+" ASC"),
	).All(ctx, s.db)
	if err != nil {
		return errors.Wrap(err, "failed to load pending deposits")
	}

	for _, deposit := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.checkDeposit(ctx, deposit); err != nil {
			log.Warn().
				Err(err).
				Str("deposit_id", deposit.ID).
				Str("tx_hash", deposit.TxHash).
				Msg("Failed to check deposit confirmation")
		}
	}

	return nil
}

func (s *service) checkDeposit(ctx context.Context, deposit *models.Deposit) error {
	gw, err := s.chainService.GatewayFor(ctx, deposit.ChainID)
	if err != nil {
		return err
	}

	meta, err := gw.GetTransactionMeta(ctx, deposit.TxHash)
	if err != nil {
		return errors.Wrap(err, "failed to query transaction meta")
	}

	if !meta.Found {
		if time.Since(deposit.FirstSeenAt) > s.config.ConfirmTimeout {
			return s.failDeposit(ctx, deposit, "transaction disappeared from chain")
		}
		return nil
	}

	if !meta.Included {
		// known to the node but not yet in a validated ledger
		return nil
	}

	if !meta.Succeeded {
		return s.failDeposit(ctx, deposit, "transaction failed on chain")
	}

	if err := s.recordConfirmations(ctx, deposit, meta.Confirmations, meta.BlockNumber); err != nil {
		return err
	}

	if meta.Confirmations >= int64(deposit.RequiredConfirmations) {
		return s.confirmDeposit(ctx, deposit)
	}

	return nil
}

// recordConfirmations only ever raises the stored count so a lagging RPC node
// cannot walk a deposit backwards.
func (s *service) recordConfirmations(ctx context.Context, deposit *models.Deposit, confirmations int64, blockNumber int64) error {
	_, err := queries.Raw(
		`UPDATE deposits
		 SET confirmations = GREATEST(confirmations, $1),
		     block_number = COALESCE(block_number, $2),
		     updated_at = now()
		 WHERE id = $3`,
		confirmations, blockNumber, deposit.ID,
	).ExecContext(ctx, s.db)
	if err != nil {
		return errors.Wrap(err, "failed to record confirmations")
	}

	return nil
}

// confirmDeposit flips the deposit to confirmed and credits the owning user's
// available balance in the same transaction. Re-running it for an already
// confirmed deposit is a no-op.
func (s *service) confirmDeposit(ctx context.Context, deposit *models.Deposit) error {
	confirmed := false

	var userID string

	if err := db.WithTransaction(ctx, s.db, func(exec boil.ContextExecutor) error {
		locked, err := models.Deposits(
			models.DepositWhere.ID.EQ(deposit.ID),
			qm.For("UPDATE"),
		).One(ctx, exec)
		if err != nil {
			return errors.Wrap(err, "failed to lock deposit")
		}

		if locked.Status != models.DepositStatusPending {
			return nil
		}

		depositAddress, err := models.FindDepositAddress(ctx, exec, locked.DepositAddressID)
		if err != nil {
			return errors.Wrap(err, "failed to load deposit address")
		}

		locked.Status = models.DepositStatusConfirmed
		locked.ConfirmedAt = null.TimeFrom(time.Now())

		if _, err := locked.Update(ctx, exec, boil.Whitelist(
			models.DepositColumns.Status,
			models.DepositColumns.ConfirmedAt,
			models.DepositColumns.UpdatedAt,
		)); err != nil {
			return errors.Wrap(err, "failed to update deposit")
		}

		if err := creditBalance(ctx, exec, depositAddress.UserID, locked.ChainID, locked.Amount); err != nil {
			return err
		}

		confirmed = true
		userID = depositAddress.UserID

		return nil
	}); err != nil {
		return err
	}

	if !confirmed {
		return nil
	}

	s.metrics.DepositsConfirmed.Inc()

	log.Info().
		Str("deposit_id", deposit.ID).
		Str("user_id", userID).
		Int("chain_id", deposit.ChainID).
		Str("amount", deposit.Amount).
		Msg("Deposit confirmed")

	return nil
}

func (s *service) failDeposit(ctx context.Context, deposit *models.Deposit, reason string) error {
	deposit.Status = models.DepositStatusFailed
	deposit.FailureReason = null.StringFrom(reason)

	if _, err := deposit.Update(ctx, s.db, boil.Whitelist(
		models.DepositColumns.Status,
		models.DepositColumns.FailureReason,
		models.DepositColumns.UpdatedAt,
	)); err != nil {
		return errors.Wrap(err, "failed to update deposit")
	}

	s.metrics.DepositsFailed.Inc()

	log.Warn().
		Str("deposit_id", deposit.ID).
		Str("tx_hash", deposit.TxHash).
		Str("reason", reason).
		Msg("Deposit failed")

	return nil
}

func creditBalance(ctx context.Context, exec boil.ContextExecutor, userID string, chainID int, amount string) error {
	_, err := queries.Raw(
		`INSERT INTO user_balances (id, user_id, chain_id, available, frozen, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, '0', now(), now())
		 ON CONFLICT (user_id, chain_id)
		 DO UPDATE SET available = (user_balances.available::numeric + EXCLUDED.available::numeric)::text,
		               updated_at = now()`,
		uuid.New().String(), userID, chainID, amount,
	).ExecContext(ctx, exec)
	if err != nil {
		return errors.Wrap(err, "failed to credit user balance")
	}

	return nil
}

func (s *service) Start(ctx context.Context, interval time.Duration) {
	go func() {
		log.Info().Dur("interval", interval).Msg("Starting deposit confirmation worker")

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			if err := s.RunConfirmationCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("Deposit confirmation cycle failed")
			}

			select {
			case <-ctx.Done():
				log.Info().Msg("Stopping deposit confirmation worker")
				return
			case <-ticker.C:
			}
		}
	}()
}
