package confirm_test

import (
	"context"
	"database/sql"
	"math/big"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/custody/confirm"
	"github.com/tesserex/custody/internal/custody/gateway"
	"github.com/tesserex/custody/internal/data/fixtures"
	"github.com/tesserex/custody/internal/metrics"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/test"
)

// metaGateway serves a single transaction meta for every lookup.
type metaGateway struct {
	meta gateway.TransactionMeta
}

func (g *metaGateway) GetBalance(_ context.Context, _ string) (*big.Int, error) {
	return nil, assert.AnError
}

func (g *metaGateway) SuggestFeeRate(_ context.Context) (*big.Int, error) {
	return nil, assert.AnError
}

func (g *metaGateway) GetAccountSequence(_ context.Context, _ string) (uint64, error) {
	return 0, assert.AnError
}

func (g *metaGateway) GetTransactionMeta(_ context.Context, _ string) (*gateway.TransactionMeta, error) {
	meta := g.meta
	return &meta, nil
}

func (g *metaGateway) Broadcast(_ context.Context, _ []byte) (string, error) {
	return "", assert.AnError
}

func (g *metaGateway) Close() {}

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
	return s.GetChain(ctx, chainID)
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

func newConfirmService(db *sql.DB, gw gateway.Gateway, confirmTimeout time.Duration) (confirm.Service, fixtures.FixtureMap) {
	f := fixtures.Fixtures()
	chainService := &stubChains{chain: f.ChainSepolia, gw: gw}

	return confirm.NewService(confirm.Config{ConfirmTimeout: confirmTimeout}, db, chainService, metrics.New(db)), f
}

func TestIngestDepositIsIdempotent(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		s, f := newConfirmService(db, &metaGateway{}, time.Hour)

		req := confirm.IngestRequest{
			ChainID:          f.ChainSepolia.ChainID,
			DepositAddressID: f.User1DepositAddressEVM.ID,
			TxHash:           "0xabc123",
			Amount:           "1000000000000000000",
			BlockNumber:      null.Int64From(100),
		}

		first, err := s.IngestDeposit(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, models.DepositStatusPending, first.Status)
		assert.Equal(t, f.ChainSepolia.RequiredConfirmations, first.RequiredConfirmations)

		second, err := s.IngestDeposit(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		count, err := models.Deposits(
			models.DepositWhere.TxHash.EQ(req.TxHash),
		).Count(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestConfirmationCycleCreditsExactlyOnce(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		gw := &metaGateway{meta: gateway.TransactionMeta{
			Found:         true,
			Included:      true,
			BlockNumber:   100,
			Confirmations: 12,
			Succeeded:     true,
		}}
		s, f := newConfirmService(db, gw, time.Hour)

		deposit, err := s.IngestDeposit(ctx, confirm.IngestRequest{
			ChainID:          f.ChainSepolia.ChainID,
			DepositAddressID: f.User1DepositAddressEVM.ID,
			TxHash:           "0xdef456",
			Amount:           "1000000000000000000",
		})
		require.NoError(t, err)

		require.NoError(t, s.RunConfirmationCycle(ctx))

		require.NoError(t, deposit.Reload(ctx, db))
		assert.Equal(t, models.DepositStatusConfirmed, deposit.Status)
		assert.True(t, deposit.ConfirmedAt.Valid)

		// a second cycle sees no pending deposit and must not credit again
		require.NoError(t, s.RunConfirmationCycle(ctx))

		balance, err := models.UserBalances(
			models.UserBalanceWhere.UserID.EQ(f.User1),
			models.UserBalanceWhere.ChainID.EQ(f.ChainSepolia.ChainID),
		).One(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, "6000000000000000000", balance.Available)
	})
}

func TestConfirmationCountNeverRegresses(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		gw := &metaGateway{meta: gateway.TransactionMeta{
			Found:         true,
			Included:      true,
			BlockNumber:   100,
			Confirmations: 5,
			Succeeded:     true,
		}}
		s, f := newConfirmService(db, gw, time.Hour)

		deposit, err := s.IngestDeposit(ctx, confirm.IngestRequest{
			ChainID:          f.ChainSepolia.ChainID,
			DepositAddressID: f.User1DepositAddressEVM.ID,
			TxHash:           "0x777888",
			Amount:           "1",
		})
		require.NoError(t, err)

		require.NoError(t, s.RunConfirmationCycle(ctx))
		require.NoError(t, deposit.Reload(ctx, db))
		assert.Equal(t, 5, deposit.Confirmations)

		// a lagging node reports fewer confirmations than already recorded
		gw.meta.Confirmations = 3

		require.NoError(t, s.RunConfirmationCycle(ctx))
		require.NoError(t, deposit.Reload(ctx, db))
		assert.Equal(t, 5, deposit.Confirmations)
		assert.Equal(t, models.DepositStatusPending, deposit.Status)
	})
}

func TestConfirmationCycleFailsVanishedTransaction(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()

		// transaction is unknown to every queried node
		s, f := newConfirmService(db, &metaGateway{}, time.Nanosecond)

		deposit, err := s.IngestDeposit(ctx, confirm.IngestRequest{
			ChainID:          f.ChainSepolia.ChainID,
			DepositAddressID: f.User1DepositAddressEVM.ID,
			TxHash:           "0xgone",
			Amount:           "1",
		})
		require.NoError(t, err)

		time.Sleep(time.Millisecond)

		require.NoError(t, s.RunConfirmationCycle(ctx))

		require.NoError(t, deposit.Reload(ctx, db))
		assert.Equal(t, models.DepositStatusFailed, deposit.Status)
		assert.True(t, deposit.FailureReason.Valid)
	})
}

func TestConfirmationCycleFailsRevertedTransaction(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		gw := &metaGateway{meta: gateway.TransactionMeta{
			Found:         true,
			Included:      true,
			BlockNumber:   100,
			Confirmations: 12,
			Succeeded:     false,
		}}
		s, f := newConfirmService(db, gw, time.Hour)

		deposit, err := s.IngestDeposit(ctx, confirm.IngestRequest{
			ChainID:          f.ChainSepolia.ChainID,
			DepositAddressID: f.User1DepositAddressEVM.ID,
			TxHash:           "0xreverted",
			Amount:           "1000000000000000000",
		})
		require.NoError(t, err)

		require.NoError(t, s.RunConfirmationCycle(ctx))

		require.NoError(t, deposit.Reload(ctx, db))
		assert.Equal(t, models.DepositStatusFailed, deposit.Status)

		// nothing was credited
		balance, err := models.UserBalances(
			models.UserBalanceWhere.UserID.EQ(f.User1),
			models.UserBalanceWhere.ChainID.EQ(f.ChainSepolia.ChainID),
		).One(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, "5000000000000000000", balance.Available)
	})
}

func TestConfirmationCycleIgnoresUnvalidatedTransaction(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		// known to the node but not yet in a validated ledger
		gw := &metaGateway{meta: gateway.TransactionMeta{
			Found:    true,
			Included: false,
		}}
		s, f := newConfirmService(db, gw, time.Nanosecond)

		deposit, err := s.IngestDeposit(ctx, confirm.IngestRequest{
			ChainID:          f.ChainSepolia.ChainID,
			DepositAddressID: f.User1DepositAddressEVM.ID,
			TxHash:           "0xunvalidated",
			Amount:           "1000000000000000000",
		})
		require.NoError(t, err)

		time.Sleep(time.Millisecond)
		require.NoError(t, s.RunConfirmationCycle(ctx))

		// even past the confirm timeout the deposit stays pending, the node
		// still reports the transaction as in flight
		require.NoError(t, deposit.Reload(ctx, db))
		assert.Equal(t, models.DepositStatusPending, deposit.Status)
		assert.Equal(t, 0, deposit.Confirmations)
	})
}
