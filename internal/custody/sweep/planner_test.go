package sweep_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/custody/gateway"
	"github.com/tesserex/custody/internal/custody/sweep"
	"github.com/tesserex/custody/internal/data/fixtures"
	"github.com/tesserex/custody/internal/metrics"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/test"
)

// stubGateway serves fixed balance, fee and sequence values.
type stubGateway struct {
	balance  *big.Int
	feeRate  *big.Int
	sequence uint64
}

func (g *stubGateway) GetBalance(_ context.Context, _ string) (*big.Int, error) {
	return new(big.Int).Set(g.balance), nil
}

func (g *stubGateway) SuggestFeeRate(_ context.Context) (*big.Int, error) {
	return new(big.Int).Set(g.feeRate), nil
}

func (g *stubGateway) GetAccountSequence(_ context.Context, _ string) (uint64, error) {
	return g.sequence, nil
}

func (g *stubGateway) GetTransactionMeta(_ context.Context, _ string) (*gateway.TransactionMeta, error) {
	return nil, assert.AnError
}

func (g *stubGateway) Broadcast(_ context.Context, _ []byte) (string, error) {
	return "", assert.AnError
}

func (g *stubGateway) Close() {}

// stubChains serves a single fixed chain row without touching the database.
type stubChains struct {
	chain *models.Chain
	gw    gateway.Gateway
}

func (s *stubChains) GetChain(_ context.Context, chainID int) (*models.Chain, error) {
	if chainID != s.chain.ChainID {
		return nil, chains.ErrChainNotFound
	}
	return s.chain, nil
}

func (s *stubChains) GetActiveChain(ctx context.Context, chainID int) (*models.Chain, error) {
	chain, err := s.GetChain(ctx, chainID)
	if err != nil {
		return nil, err
	}
	if !chain.IsActive {
		return nil, chains.ErrChainInactive
	}
	return chain, nil
}

func (s *stubChains) GetActiveChains(_ context.Context) ([]*models.Chain, error) {
	return []*models.Chain{s.chain}, nil
}

func (s *stubChains) ListChains(_ context.Context) ([]*models.Chain, error) {
	return []*models.Chain{s.chain}, nil
}

func (s *stubChains) GatewayFor(_ context.Context, _ int) (gateway.Gateway, error) {
	return s.gw, nil
}

func (s *stubChains) InvalidateChain(_ int) {}

func (s *stubChains) Close() {}

func insertConfirmedDeposit(ctx context.Context, t *testing.T, db *sql.DB, f fixtures.FixtureMap, amount string) *models.Deposit {
	t.Helper()

	deposit := &models.Deposit{
		ID:                    uuid.New().String(),
		DepositAddressID:      f.User1DepositAddressEVM.ID,
		ChainID:               f.ChainSepolia.ChainID,
		TxHash:                "0x" + uuid.New().String(),
		Amount:                amount,
		Confirmations:         12,
		RequiredConfirmations: 12,
		Status:                models.DepositStatusConfirmed,
		FirstSeenAt:           time.Now().Add(-time.Minute),
		ConfirmedAt:           null.TimeFrom(time.Now()),
	}

	require.NoError(t, deposit.Insert(ctx, db, boil.Infer()))

	return deposit
}

func TestRunPlanCycleDeductsGasCost(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		// 2 ETH on the address, 20 gwei per gas, 21000 gas
		chainService := &stubChains{
			chain: f.ChainSepolia,
			gw: &stubGateway{
				balance:  big.NewInt(2_000_000_000_000_000_000),
				feeRate:  big.NewInt(20_000_000_000),
				sequence: 7,
			},
		}
		s := sweep.NewService(db, chainService, nil, metrics.New(db))

		deposit := insertConfirmedDeposit(ctx, t, db, f, "2000000000000000000")

		require.NoError(t, s.RunPlanCycle(ctx))

		job, err := models.SweepJobs(
			models.SweepJobWhere.DepositID.EQ(deposit.ID),
		).One(ctx, db)
		require.NoError(t, err)

		assert.Equal(t, models.SweepJobStatusPlanned, job.Status)
		assert.Equal(t, "1999580000000000000", job.Amount)
		assert.Equal(t, int64(21000), job.GasLimit)
		assert.Equal(t, "20000000000", job.FeeRate.String)
		assert.Equal(t, "420000000000000", job.GasCost.String)

		require.True(t, job.UnsignedTx.Valid)

		var unsigned struct {
			From     string `json:"from"`
			To       string `json:"to"`
			Value    string `json:"value"`
			Gas      string `json:"gas"`
			GasPrice string `json:"gasPrice"`
			Nonce    string `json:"nonce"`
			ChainID  int64  `json:"chainId"`
		}
		require.NoError(t, json.Unmarshal([]byte(job.UnsignedTx.String), &unsigned))
		assert.Equal(t, f.User1DepositAddressEVM.Address, unsigned.From)
		assert.Equal(t, f.AdminWalletSepolia.Address, unsigned.To)
		assert.Equal(t, "0x1bbfef6a6ff9c000", unsigned.Value)
		assert.Equal(t, "0x5208", unsigned.Gas)
		assert.Equal(t, "0x4a817c800", unsigned.GasPrice)
		assert.Equal(t, "0x7", unsigned.Nonce)
		assert.EqualValues(t, f.ChainSepolia.ChainID, unsigned.ChainID)
	})
}

func TestRunPlanCycleFailsWhenBalanceBelowFee(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		// dust that does not even cover the gas cost
		chainService := &stubChains{
			chain: f.ChainSepolia,
			gw: &stubGateway{
				balance: big.NewInt(1_000),
				feeRate: big.NewInt(20_000_000_000),
			},
		}
		s := sweep.NewService(db, chainService, nil, metrics.New(db))

		deposit := insertConfirmedDeposit(ctx, t, db, f, "1000")

		require.NoError(t, s.RunPlanCycle(ctx))

		job, err := models.SweepJobs(
			models.SweepJobWhere.DepositID.EQ(deposit.ID),
		).One(ctx, db)
		require.NoError(t, err)

		assert.Equal(t, models.SweepJobStatusFailed, job.Status)
		assert.Equal(t, "0", job.Amount)
		assert.Equal(t, "insufficient_gas", job.FailureReason.String)
		assert.False(t, job.UnsignedTx.Valid)
	})
}

func TestRunPlanCycleIsIdempotent(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		chainService := &stubChains{
			chain: f.ChainSepolia,
			gw: &stubGateway{
				balance: big.NewInt(2_000_000_000_000_000_000),
				feeRate: big.NewInt(20_000_000_000),
			},
		}
		s := sweep.NewService(db, chainService, nil, metrics.New(db))

		deposit := insertConfirmedDeposit(ctx, t, db, f, "2000000000000000000")

		require.NoError(t, s.RunPlanCycle(ctx))
		require.NoError(t, s.RunPlanCycle(ctx))

		count, err := models.SweepJobs(
			models.SweepJobWhere.DepositID.EQ(deposit.ID),
		).Count(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestRunPlanCycleReplansAfterFailure(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		chainService := &stubChains{
			chain: f.ChainSepolia,
			gw: &stubGateway{
				balance: big.NewInt(2_000_000_000_000_000_000),
				feeRate: big.NewInt(20_000_000_000),
			},
		}
		s := sweep.NewService(db, chainService, nil, metrics.New(db))

		deposit := insertConfirmedDeposit(ctx, t, db, f, "2000000000000000000")

		require.NoError(t, s.RunPlanCycle(ctx))

		job, err := models.SweepJobs(
			models.SweepJobWhere.DepositID.EQ(deposit.ID),
		).One(ctx, db)
		require.NoError(t, err)

		// executor gave up on the job, the next plan cycle may try again
		job.Status = models.SweepJobStatusFailed
		job.FailureReason = null.StringFrom("broadcast rejected")
		_, err = job.Update(ctx, db, boil.Infer())
		require.NoError(t, err)

		require.NoError(t, s.RunPlanCycle(ctx))

		count, err := models.SweepJobs(
			models.SweepJobWhere.DepositID.EQ(deposit.ID),
		).Count(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestRunPlanCycleXRPLKeepsReserve(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		// shared custody account holding more than this deposit
		chainService := &stubChains{
			chain: f.ChainXRPL,
			gw: &stubGateway{
				balance: big.NewInt(50_000_000), // 50 XRP
				feeRate: big.NewInt(12),         // drops per tx
			},
		}
		s := sweep.NewService(db, chainService, nil, metrics.New(db))

		deposit := &models.Deposit{
			ID:                    uuid.New().String(),
			DepositAddressID:      f.User1DepositAddressXRPL.ID,
			ChainID:               f.ChainXRPL.ChainID,
			TxHash:                uuid.New().String(),
			Amount:                "10000000", // 10 XRP deposited
			Confirmations:         1,
			RequiredConfirmations: 1,
			Status:                models.DepositStatusConfirmed,
			DestinationTag:        null.Int64From(1001),
			FirstSeenAt:           time.Now().Add(-time.Minute),
			ConfirmedAt:           null.TimeFrom(time.Now()),
		}
		require.NoError(t, deposit.Insert(ctx, db, boil.Infer()))

		require.NoError(t, s.RunPlanCycle(ctx))

		job, err := models.SweepJobs(
			models.SweepJobWhere.DepositID.EQ(deposit.ID),
		).One(ctx, db)
		require.NoError(t, err)

		// only the deposited amount moves, the account keeps its reserve
		assert.Equal(t, models.SweepJobStatusPlanned, job.Status)
		assert.Equal(t, "10000000", job.Amount)
		assert.Equal(t, "12", job.GasCost.String)

		require.True(t, job.UnsignedTx.Valid)

		var payment struct {
			TransactionType string `json:"TransactionType"`
			Account         string `json:"Account"`
			Destination     string `json:"Destination"`
			Amount          string `json:"Amount"`
			Fee             string `json:"Fee"`
			Sequence        uint32 `json:"Sequence"`
		}
		require.NoError(t, json.Unmarshal([]byte(job.UnsignedTx.String), &payment))
		assert.Equal(t, "Payment", payment.TransactionType)
		assert.Equal(t, f.User1DepositAddressXRPL.Address, payment.Account)
		assert.Equal(t, f.AdminWalletXRPL.Address, payment.Destination)
		assert.Equal(t, "10000000", payment.Amount)
		assert.Equal(t, "12", payment.Fee)
	})
}
