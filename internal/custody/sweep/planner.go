package sweep

import (
	"context"
	"database/sql"
	"math/big"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/tesserex/custody/internal/models"
)

// xrplOwnerReserveDrops is the XRPL base reserve that must remain on an
// account after a sweep (1 XRP).
const xrplOwnerReserveDrops = 1_000_000

func (s *service) RunPlanCycle(ctx context.Context) error {
	// confirmed deposits whose only sweep jobs, if any, have failed
	deposits, err := models.Deposits(
		models.DepositWhere.Status.EQ(models.DepositStatusConfirmed),
		qm.Where(`NOT EXISTS (
			SELECT 1 FROM sweep_jobs
			WHERE sweep_jobs.deposit_id = deposits.id
			AND sweep_jobs.status != ?
		)`, models.SweepJobStatusFailed),
		qm.OrderBy(models.DepositColumns.ConfirmedAt+" ASC"),
	).All(ctx, s.db)
	if err != nil {
		return errors.Wrap(err, "failed to load sweepable deposits")
	}

	for _, deposit := range deposits {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.planDeposit(ctx, deposit); err != nil {
			log.Warn().
				Err(err).
				Str("deposit_id", deposit.ID).
				Msg("Failed to plan sweep job")
		}
	}

	return nil
}

func (s *service) planDeposit(ctx context.Context, deposit *models.Deposit) error {
	chain, err := s.chainService.GetActiveChain(ctx, deposit.ChainID)
	if err != nil {
		return err
	}

	adminWallet, err := models.AdminWallets(
		models.AdminWalletWhere.ChainID.EQ(deposit.ChainID),
		models.AdminWalletWhere.IsActive.EQ(true),
	).One(ctx, s.db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Int("chain_id", deposit.ChainID).
				Str("deposit_id", deposit.ID).
				Msg("No active admin wallet, skipping sweep planning")
			return nil
		}
		return errors.Wrap(err, "failed to load admin wallet")
	}

	depositAddress, err := models.FindDepositAddress(ctx, s.db, deposit.DepositAddressID)
	if err != nil {
		return errors.Wrap(err, "failed to load deposit address")
	}

	gw, err := s.chainService.GatewayFor(ctx, deposit.ChainID)
	if err != nil {
		return err
	}

	balance, err := gw.GetBalance(ctx, depositAddress.Address)
	if err != nil {
		return errors.Wrap(err, "failed to query deposit address balance")
	}

	feeRate, err := gw.SuggestFeeRate(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to query fee rate")
	}

	sequence, err := gw.GetAccountSequence(ctx, depositAddress.Address)
	if err != nil {
		return errors.Wrap(err, "failed to query account sequence")
	}

	var amount, gasCost *big.Int
	var gasLimit int64

	switch chain.ChainType {
	case models.ChainTypeEVM:
		gasLimit = chain.SweepGasLimit
		gasCost = new(big.Int).Mul(feeRate, big.NewInt(gasLimit))
		amount = new(big.Int).Sub(balance, gasCost)
	case models.ChainTypeXRPL:
		// the XRPL custody account is shared across users, so only the
		// deposited amount is swept and the account keeps its reserve
		gasCost = feeRate

		amount, _ = new(big.Int).SetString(deposit.Amount, 10)
		if amount == nil {
			return errors.Errorf("deposit has malformed amount")
		}

		spendable := new(big.Int).Sub(balance, big.NewInt(xrplOwnerReserveDrops))
		spendable.Sub(spendable, gasCost)
		if spendable.Cmp(amount) < 0 {
			amount = spendable
		}
	default:
		return errors.Errorf("unsupported chain type %q", chain.ChainType)
	}

	job := &models.SweepJob{
		ID:               uuid.New().String(),
		DepositID:        deposit.ID,
		DepositAddressID: deposit.DepositAddressID,
		ChainID:          deposit.ChainID,
		GasLimit:         gasLimit,
		FeeRate:          null.StringFrom(feeRate.String()),
		GasCost:          null.StringFrom(gasCost.String()),
	}

	if amount.Sign() <= 0 {
		job.Amount = "0"
		job.Status = models.SweepJobStatusFailed
		job.FailureReason = null.StringFrom("insufficient_gas")
	} else {
		unsignedTx, err := buildUnsignedTx(chain, depositAddress.Address, adminWallet.Address, amount, feeRate, gasLimit, sequence)
		if err != nil {
			return err
		}

		job.Amount = amount.String()
		job.Status = models.SweepJobStatusPlanned
		job.UnsignedTx = null.StringFrom(unsignedTx)
	}

	if err := job.Insert(ctx, s.db, boil.Infer()); err != nil {
		// a concurrent planner won the race for this deposit
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil
		}
		return errors.Wrap(err, "failed to insert sweep job")
	}

	if job.Status == models.SweepJobStatusFailed {
		s.metrics.SweepJobsFailed.Inc()
	} else {
		s.metrics.SweepJobsPlanned.Inc()
	}

	log.Info().
		Str("sweep_job_id", job.ID).
		Str("deposit_id", deposit.ID).
		Int("chain_id", deposit.ChainID).
		Str("amount", job.Amount).
		Str("status", job.Status).
		Msg("Planned sweep job")

	return nil
}
