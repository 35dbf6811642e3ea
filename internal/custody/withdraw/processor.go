package withdraw

import (
	"context"
	"math/big"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/tesserex/custody/internal/custody/cerr"
	"github.com/tesserex/custody/internal/custody/gateway"
	"github.com/tesserex/custody/internal/custody/hotwallet"
	"github.com/tesserex/custody/internal/custody/signer"
	"github.com/tesserex/custody/internal/models"
)

// evmTransferGasLimit is the gas a plain native-coin transfer consumes.
const evmTransferGasLimit = 21_000

// staleProcessingAge is how long a withdrawal may sit in processing before it
// is considered orphaned by a dead worker and returned to the queue.
const staleProcessingAge = 10 * time.Minute

func (s *service) Start(ctx context.Context, interval time.Duration) {
	go func() {
		log.Info().Dur("interval", interval).Msg("Starting withdrawal processor")

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			if err := s.ProcessWithdrawals(ctx); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("Withdrawal processing cycle failed")
			}
			if err := s.ProcessWithdrawalConfirmations(ctx); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("Withdrawal confirmation cycle failed")
			}

			select {
			case <-ctx.Done():
				log.Info().Msg("Stopping withdrawal processor")
				return
			case <-ticker.C:
			}
		}
	}()
}

func (s *service) ProcessWithdrawals(ctx context.Context) error {
	if err := s.reclaimStaleProcessing(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to reclaim stale withdrawals")
	}

	pending, err := models.Withdrawals(
		models.WithdrawalWhere.Status.EQ(models.WithdrawalStatusPending),
		qm.OrderBy(models.WithdrawalColumns.CreatedAt+" ASC"),
	).All(ctx, s.db)
	if err != nil {
		return errors.Wrap(err, "failed to load pending withdrawals")
	}

	for _, withdrawal := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.processWithdrawal(ctx, withdrawal); err != nil {
			log.Warn().
				Err(err).
				Str("withdrawal_id", withdrawal.ID).
				Msg("Failed to process withdrawal")
		}
	}

	return nil
}

// reclaimStaleProcessing returns withdrawals to pending when the worker that
// claimed them died before finishing. A live worker touches updated_at on
// every state change, so a processing row older than staleProcessingAge has
// no owner.
func (s *service) reclaimStaleProcessing(ctx context.Context) error {
	res, err := queries.Raw(
		`UPDATE withdrawals
		 SET status = $1, updated_at = now()
		 WHERE status = $2 AND updated_at < now() - ($3 * interval '1 second')`,
		models.WithdrawalStatusPending,
		models.WithdrawalStatusProcessing,
		int64(staleProcessingAge.Seconds()),
	).ExecContext(ctx, s.db)
	if err != nil {
		return errors.Wrap(err, "failed to reclaim stale withdrawals")
	}

	if count, err := res.RowsAffected(); err == nil && count > 0 {
		log.Warn().Int64("count", count).Msg("Reclaimed stale processing withdrawals")
	}

	return nil
}

// processWithdrawal claims a pending withdrawal, then signs and broadcasts it
// with a bounded number of full retry cycles. A withdrawal that exhausts its
// cycles on transient errors goes back to pending for the next pass; only a
// definitive rejection refunds the user.
func (s *service) processWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error {
	claimed, err := s.claimWithdrawal(ctx, withdrawal.ID)
	if err != nil || claimed == nil {
		return err
	}
	withdrawal = claimed

	chain, err := s.chainService.GetActiveChain(ctx, withdrawal.ChainID)
	if err != nil {
		return err
	}

	wallet, err := s.hotWalletService.GetActiveHotWallet(ctx, withdrawal.ChainID)
	if err != nil {
		if errors.Is(err, hotwallet.ErrNoActiveHotWallet) {
			log.Warn().
				Int("chain_id", withdrawal.ChainID).
				Str("withdrawal_id", withdrawal.ID).
				Msg("No active hot wallet, withdrawal stays queued")
			return s.requeueWithdrawal(ctx, withdrawal, "no active hot wallet")
		}
		return err
	}

	gw, err := s.chainService.GatewayFor(ctx, withdrawal.ChainID)
	if err != nil {
		return err
	}

	var lastErr error

	for attempt := 0; attempt < s.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				// hand the claim back before exiting so the withdrawal is not
				// stranded in processing
				if rqErr := s.requeueWithdrawal(context.WithoutCancel(ctx), withdrawal, "worker shutdown"); rqErr != nil {
					return rqErr
				}
				return ctx.Err()
			case <-time.After(s.config.RetryDelay):
			}
		}

		lastErr = s.signAndBroadcast(ctx, chain, wallet, gw, withdrawal)
		if lastErr == nil {
			return nil
		}

		if terminalWithdrawalError(lastErr) {
			return s.failWithdrawal(ctx, withdrawal, "transaction rejected")
		}

		log.Warn().
			Err(lastErr).
			Str("withdrawal_id", withdrawal.ID).
			Int("attempt", attempt+1).
			Msg("Withdrawal broadcast attempt failed")
	}

	return s.requeueWithdrawal(ctx, withdrawal, "broadcast attempts exhausted")
}

// terminalWithdrawalError reports whether no later attempt can succeed.
// Broadcast and chain rejections stay retryable across the attempt budget:
// nodes reject transiently on mempool pressure and sequence races.
func terminalWithdrawalError(err error) bool {
	return cerr.IsKind(err, cerr.KindValidation) ||
		cerr.IsKind(err, cerr.KindInsufficientFunds) ||
		cerr.IsKind(err, cerr.KindConfiguration)
}

func (s *service) signAndBroadcast(ctx context.Context, chain *models.Chain, wallet *models.HotWallet, gw gateway.Gateway, withdrawal *models.Withdrawal) error {
	feeRate, err := gw.SuggestFeeRate(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to query fee rate")
	}

	var (
		signed *signer.SignedTransaction
		fee    *big.Int
		nonce  int64
	)

	switch chain.ChainType {
	case models.ChainTypeEVM:
		nonce, err = s.hotWalletService.GetNextNonce(ctx, wallet.ID)
		if err != nil {
			return err
		}

		fee = new(big.Int).Mul(feeRate, big.NewInt(evmTransferGasLimit))

		signed, err = s.signerService.SignEVMTransaction(ctx, &signer.SignEVMRequest{
			ChainID:        int64(chain.ChainID),
			To:             withdrawal.ToAddress,
			Value:          withdrawal.Amount,
			GasLimit:       evmTransferGasLimit,
			GasPrice:       feeRate.String(),
			Nonce:          uint64(nonce),
			FromAddress:    wallet.Address,
			DerivationPath: wallet.DerivationPath,
		})
	case models.ChainTypeXRPL:
		sequence, seqErr := gw.GetAccountSequence(ctx, wallet.Address)
		if seqErr != nil {
			return errors.Wrap(seqErr, "failed to query account sequence")
		}
		nonce = int64(sequence)

		fee = feeRate

		var tag *uint32
		if withdrawal.DestinationTag.Valid {
			t := uint32(withdrawal.DestinationTag.Int64)
			tag = &t
		}

		signed, err = s.signerService.SignXRPLPayment(ctx, &signer.SignXRPLRequest{
			To:             withdrawal.ToAddress,
			DestinationTag: tag,
			Amount:         withdrawal.Amount,
			Fee:            feeRate.String(),
			Sequence:       uint32(sequence),
			FromAddress:    wallet.Address,
			DerivationPath: wallet.DerivationPath,
		})
	default:
		return errors.Errorf("unsupported chain type %q", chain.ChainType)
	}
	if err != nil {
		return errors.Wrap(err, "failed to sign withdrawal")
	}

	txHash, err := gw.Broadcast(ctx, signed.RawTransaction)
	if err != nil {
		return err
	}

	withdrawal.Status = models.WithdrawalStatusBroadcasted
	withdrawal.HotWalletID = null.StringFrom(wallet.ID)
	withdrawal.TxHash = null.StringFrom(txHash)
	withdrawal.Nonce = null.Int64From(nonce)
	withdrawal.Fee = null.StringFrom(fee.String())
	withdrawal.BroadcastedAt = null.TimeFrom(time.Now())
	withdrawal.Attempts++

	if _, err := withdrawal.Update(ctx, s.db, boil.Whitelist(
		models.WithdrawalColumns.Status,
		models.WithdrawalColumns.HotWalletID,
		models.WithdrawalColumns.TxHash,
		models.WithdrawalColumns.Nonce,
		models.WithdrawalColumns.Fee,
		models.WithdrawalColumns.BroadcastedAt,
		models.WithdrawalColumns.Attempts,
		models.WithdrawalColumns.UpdatedAt,
	)); err != nil {
		return errors.Wrap(err, "failed to update withdrawal")
	}

	s.metrics.BroadcastsByChainType.WithLabelValues(chain.ChainType).Inc()

	log.Info().
		Str("withdrawal_id", withdrawal.ID).
		Str("tx_hash", txHash).
		Str("amount", withdrawal.Amount).
		Msg("Broadcasted withdrawal")

	return nil
}

// claimWithdrawal moves a pending withdrawal to processing under a row lock.
// Returns nil when another worker claimed it first.
func (s *service) claimWithdrawal(ctx context.Context, id string) (*models.Withdrawal, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	withdrawal, err := models.Withdrawals(
		models.WithdrawalWhere.ID.EQ(id),
		qm.For("UPDATE"),
	).One(ctx, tx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock withdrawal")
	}

	if withdrawal.Status != models.WithdrawalStatusPending {
		return nil, nil
	}

	withdrawal.Status = models.WithdrawalStatusProcessing

	if _, err := withdrawal.Update(ctx, tx, boil.Whitelist(
		models.WithdrawalColumns.Status,
		models.WithdrawalColumns.UpdatedAt,
	)); err != nil {
		return nil, errors.Wrap(err, "failed to claim withdrawal")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}

	return withdrawal, nil
}

// requeueWithdrawal parks the withdrawal back in pending so a later pass can
// retry. The user's funds stay frozen.
func (s *service) requeueWithdrawal(ctx context.Context, withdrawal *models.Withdrawal, reason string) error {
	withdrawal.Status = models.WithdrawalStatusPending
	withdrawal.FailureReason = null.StringFrom(reason)
	withdrawal.Attempts++

	if _, err := withdrawal.Update(ctx, s.db, boil.Whitelist(
		models.WithdrawalColumns.Status,
		models.WithdrawalColumns.FailureReason,
		models.WithdrawalColumns.Attempts,
		models.WithdrawalColumns.UpdatedAt,
	)); err != nil {
		return errors.Wrap(err, "failed to requeue withdrawal")
	}

	return nil
}

func (s *service) ProcessWithdrawalConfirmations(ctx context.Context) error {
	broadcasted, err := models.Withdrawals(
		models.WithdrawalWhere.Status.EQ(models.WithdrawalStatusBroadcasted),
		qm.OrderBy(models.WithdrawalColumns.BroadcastedAt+" ASC"),
	).All(ctx, s.db)
	if err != nil {
		return errors.Wrap(err, "failed to load broadcasted withdrawals")
	}

	for _, withdrawal := range broadcasted {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.settleWithdrawal(ctx, withdrawal); err != nil {
			log.Warn().
				Err(err).
				Str("withdrawal_id", withdrawal.ID).
				Msg("Failed to settle withdrawal")
		}
	}

	return nil
}

func (s *service) settleWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error {
	chain, err := s.chainService.GetChain(ctx, withdrawal.ChainID)
	if err != nil {
		return err
	}

	gw, err := s.chainService.GatewayFor(ctx, withdrawal.ChainID)
	if err != nil {
		return err
	}

	meta, err := gw.GetTransactionMeta(ctx, withdrawal.TxHash.String)
	if err != nil {
		return errors.Wrap(err, "failed to query transaction meta")
	}

	if !meta.Found || !meta.Included {
		// refunding here would double-spend if the payment validates later,
		// so an unvalidated transaction is strictly a no-op
		return nil
	}

	if !meta.Succeeded {
		return s.failWithdrawal(ctx, withdrawal, "transaction failed on chain")
	}

	if meta.Confirmations < int64(chain.RequiredConfirmations) {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	withdrawal.Status = models.WithdrawalStatusConfirmed
	withdrawal.ConfirmedAt = null.TimeFrom(time.Now())

	if _, err := withdrawal.Update(ctx, tx, boil.Whitelist(
		models.WithdrawalColumns.Status,
		models.WithdrawalColumns.ConfirmedAt,
		models.WithdrawalColumns.UpdatedAt,
	)); err != nil {
		return errors.Wrap(err, "failed to update withdrawal")
	}

	// the frozen amount leaves custody for good
	if err := burnFrozen(ctx, tx, withdrawal.UserID, withdrawal.ChainID, withdrawal.Amount); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	s.metrics.WithdrawalsConfirmed.Inc()

	log.Info().
		Str("withdrawal_id", withdrawal.ID).
		Str("tx_hash", withdrawal.TxHash.String).
		Msg("Withdrawal confirmed")

	return nil
}

// failWithdrawal marks the withdrawal failed and thaws the frozen amount back
// into the user's available balance.
func (s *service) failWithdrawal(ctx context.Context, withdrawal *models.Withdrawal, reason string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	withdrawal.Status = models.WithdrawalStatusFailed
	withdrawal.FailureReason = null.StringFrom(reason)

	if _, err := withdrawal.Update(ctx, tx, boil.Whitelist(
		models.WithdrawalColumns.Status,
		models.WithdrawalColumns.FailureReason,
		models.WithdrawalColumns.UpdatedAt,
	)); err != nil {
		return errors.Wrap(err, "failed to update withdrawal")
	}

	if err := refundFrozen(ctx, tx, withdrawal.UserID, withdrawal.ChainID, withdrawal.Amount); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	s.metrics.WithdrawalsFailed.Inc()

	log.Warn().
		Str("withdrawal_id", withdrawal.ID).
		Str("reason", reason).
		Msg("Withdrawal failed, amount refunded")

	return nil
}

func burnFrozen(ctx context.Context, exec boil.ContextExecutor, userID string, chainID int, amount string) error {
	_, err := queries.Raw(
		`UPDATE user_balances
		 SET frozen = (frozen::numeric - $1::numeric)::text, updated_at = now()
		 WHERE user_id = $2 AND chain_id = $3`,
		amount, userID, chainID,
	).ExecContext(ctx, exec)
	if err != nil {
		return errors.Wrap(err, "failed to release frozen balance")
	}

	return nil
}

func refundFrozen(ctx context.Context, exec boil.ContextExecutor, userID string, chainID int, amount string) error {
	_, err := queries.Raw(
		`UPDATE user_balances
		 SET frozen = (frozen::numeric - $1::numeric)::text,
		     available = (available::numeric + $1::numeric)::text,
		     updated_at = now()
		 WHERE user_id = $2 AND chain_id = $3`,
		amount, userID, chainID,
	).ExecContext(ctx, exec)
	if err != nil {
		return errors.Wrap(err, "failed to refund frozen balance")
	}

	return nil
}
