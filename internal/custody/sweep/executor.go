package sweep

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/tesserex/custody/internal/custody/cerr"
	"github.com/tesserex/custody/internal/custody/signer"
	"github.com/tesserex/custody/internal/models"
)

// maxBroadcastAttempts bounds how often a job is re-signed and re-broadcast
// after transient broadcast failures before it is marked failed.
const maxBroadcastAttempts = 5

func (s *service) RunExecuteCycle(ctx context.Context) error {
	jobs, err := models.SweepJobs(
		models.SweepJobWhere.Status.IN([]string{
			models.SweepJobStatusPlanned,
			models.SweepJobStatusBroadcasted,
		}),
		qm.OrderBy(models.SweepJobColumns.CreatedAt+" ASC"),
	).All(ctx, s.db)
	if err != nil {
		return errors.Wrap(err, "failed to load executable sweep jobs")
	}

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, loaded := s.inFlight.LoadOrStore(job.ID, struct{}{}); loaded {
			continue
		}

		var err error
		switch job.Status {
		case models.SweepJobStatusPlanned:
			err = s.executeJob(ctx, job)
		case models.SweepJobStatusBroadcasted:
			err = s.trackJob(ctx, job)
		}

		s.inFlight.Delete(job.ID)

		if err != nil {
			log.Warn().
				Err(err).
				Str("sweep_job_id", job.ID).
				Msg("Failed to advance sweep job")
		}
	}

	return nil
}

// executeJob signs the transaction the planner persisted on the job and
// broadcasts it.
func (s *service) executeJob(ctx context.Context, job *models.SweepJob) error {
	chain, err := s.chainService.GetActiveChain(ctx, job.ChainID)
	if err != nil {
		return err
	}

	depositAddress, err := models.FindDepositAddress(ctx, s.db, job.DepositAddressID)
	if err != nil {
		return errors.Wrap(err, "failed to load deposit address")
	}

	gw, err := s.chainService.GatewayFor(ctx, job.ChainID)
	if err != nil {
		return err
	}

	if !job.UnsignedTx.Valid {
		return s.failJob(ctx, job, "sweep job carries no unsigned transaction")
	}

	var signed *signer.SignedTransaction

	switch chain.ChainType {
	case models.ChainTypeEVM:
		var unsigned unsignedEVMTx
		if err := json.Unmarshal([]byte(job.UnsignedTx.String), &unsigned); err != nil {
			return s.failJob(ctx, job, "malformed unsigned transaction")
		}

		value, verr := parseHexQuantity(unsigned.Value)
		if verr != nil {
			return s.failJob(ctx, job, "malformed unsigned transaction")
		}

		gasPrice, gerr := parseHexQuantity(unsigned.GasPrice)
		if gerr != nil {
			return s.failJob(ctx, job, "malformed unsigned transaction")
		}

		gasLimit, lerr := parseHexUint(unsigned.Gas)
		if lerr != nil {
			return s.failJob(ctx, job, "malformed unsigned transaction")
		}

		nonce, nerr := parseHexUint(unsigned.Nonce)
		if nerr != nil {
			return s.failJob(ctx, job, "malformed unsigned transaction")
		}

		signed, err = s.signerService.SignEVMTransaction(ctx, &signer.SignEVMRequest{
			ChainID:        unsigned.ChainID,
			To:             unsigned.To,
			Value:          value.String(),
			GasLimit:       gasLimit,
			GasPrice:       gasPrice.String(),
			Nonce:          nonce,
			FromAddress:    unsigned.From,
			DerivationPath: depositAddress.DerivationPath,
		})
	case models.ChainTypeXRPL:
		var unsigned unsignedXRPLPayment
		if err := json.Unmarshal([]byte(job.UnsignedTx.String), &unsigned); err != nil {
			return s.failJob(ctx, job, "malformed unsigned transaction")
		}

		signed, err = s.signerService.SignXRPLPayment(ctx, &signer.SignXRPLRequest{
			To:             unsigned.Destination,
			Amount:         unsigned.Amount,
			Fee:            unsigned.Fee,
			Sequence:       unsigned.Sequence,
			FromAddress:    unsigned.Account,
			DerivationPath: depositAddress.DerivationPath,
		})
	default:
		return errors.Errorf("unsupported chain type %q", chain.ChainType)
	}
	if err != nil {
		return s.failJob(ctx, job, "failed to sign sweep transaction")
	}

	job.Status = models.SweepJobStatusSigned
	job.TxHash = null.StringFrom(signed.TxHash)
	job.SignedTx = null.StringFrom(hex.EncodeToString(signed.RawTransaction))
	job.Attempts++

	if _, err := job.Update(ctx, s.db, boil.Whitelist(
		models.SweepJobColumns.Status,
		models.SweepJobColumns.TxHash,
		models.SweepJobColumns.SignedTx,
		models.SweepJobColumns.Attempts,
		models.SweepJobColumns.UpdatedAt,
	)); err != nil {
		return errors.Wrap(err, "failed to update sweep job")
	}

	txHash, err := gw.Broadcast(ctx, signed.RawTransaction)
	if err != nil {
		if cerr.IsRetryable(err) && job.Attempts < maxBroadcastAttempts {
			// back to planned, the next cycle re-signs the persisted transaction
			job.Status = models.SweepJobStatusPlanned
			if _, uerr := job.Update(ctx, s.db, boil.Whitelist(
				models.SweepJobColumns.Status,
				models.SweepJobColumns.UpdatedAt,
			)); uerr != nil {
				return errors.Wrap(uerr, "failed to reset sweep job")
			}
			return errors.Wrap(err, "broadcast failed, job requeued")
		}
		if cerr.IsRetryable(err) {
			return s.failJob(ctx, job, "broadcast retries exhausted")
		}
		return s.failJob(ctx, job, "broadcast rejected")
	}

	job.Status = models.SweepJobStatusBroadcasted
	job.TxHash = null.StringFrom(txHash)
	job.BroadcastedAt = null.TimeFrom(time.Now())

	if _, err := job.Update(ctx, s.db, boil.Whitelist(
		models.SweepJobColumns.Status,
		models.SweepJobColumns.TxHash,
		models.SweepJobColumns.BroadcastedAt,
		models.SweepJobColumns.UpdatedAt,
	)); err != nil {
		return errors.Wrap(err, "failed to update sweep job")
	}

	s.metrics.SweepJobsBroadcasted.Inc()
	s.metrics.BroadcastsByChainType.WithLabelValues(chain.ChainType).Inc()

	log.Info().
		Str("sweep_job_id", job.ID).
		Str("tx_hash", txHash).
		Str("amount", job.Amount).
		Msg("Broadcasted sweep transaction")

	return nil
}

// trackJob polls a broadcasted job until its transaction confirms or fails
// on chain. An unvalidated transaction is left alone.
func (s *service) trackJob(ctx context.Context, job *models.SweepJob) error {
	chain, err := s.chainService.GetChain(ctx, job.ChainID)
	if err != nil {
		return err
	}

	gw, err := s.chainService.GatewayFor(ctx, job.ChainID)
	if err != nil {
		return err
	}

	meta, err := gw.GetTransactionMeta(ctx, job.TxHash.String)
	if err != nil {
		return errors.Wrap(err, "failed to query transaction meta")
	}

	if !meta.Found || !meta.Included {
		// submitted but not yet in a validated ledger, check again next cycle
		return nil
	}

	if !meta.Succeeded {
		return s.failJob(ctx, job, "sweep transaction failed on chain")
	}

	if meta.Confirmations < int64(chain.RequiredConfirmations) {
		return nil
	}

	job.Status = models.SweepJobStatusConfirmed
	job.ConfirmedAt = null.TimeFrom(time.Now())

	if _, err := job.Update(ctx, s.db, boil.Whitelist(
		models.SweepJobColumns.Status,
		models.SweepJobColumns.ConfirmedAt,
		models.SweepJobColumns.UpdatedAt,
	)); err != nil {
		return errors.Wrap(err, "failed to update sweep job")
	}

	log.Info().
		Str("sweep_job_id", job.ID).
		Str("tx_hash", job.TxHash.String).
		Msg("Sweep confirmed")

	return nil
}

func (s *service) failJob(ctx context.Context, job *models.SweepJob, reason string) error {
	job.Status = models.SweepJobStatusFailed
	job.FailureReason = null.StringFrom(reason)

	if _, err := job.Update(ctx, s.db, boil.Whitelist(
		models.SweepJobColumns.Status,
		models.SweepJobColumns.FailureReason,
		models.SweepJobColumns.UpdatedAt,
	)); err != nil {
		return errors.Wrap(err, "failed to update sweep job")
	}

	s.metrics.SweepJobsFailed.Inc()

	log.Warn().
		Str("sweep_job_id", job.ID).
		Str("reason", reason).
		Msg("Sweep job failed")

	return nil
}
