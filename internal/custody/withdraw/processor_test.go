package withdraw_test

import (
	"context"
	"database/sql"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/custody/cerr"
	"github.com/tesserex/custody/internal/custody/gateway"
	"github.com/tesserex/custody/internal/custody/hotwallet"
	"github.com/tesserex/custody/internal/custody/keycustody"
	"github.com/tesserex/custody/internal/custody/signer"
	"github.com/tesserex/custody/internal/custody/withdraw"
	"github.com/tesserex/custody/internal/data/fixtures"
	"github.com/tesserex/custody/internal/metrics"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/test"
)

// processorGateway stubs the node side of withdrawal processing.
type processorGateway struct {
	mu           sync.Mutex
	meta         gateway.TransactionMeta
	broadcastErr error
	broadcasts   int
}

func (g *processorGateway) GetBalance(_ context.Context, _ string) (*big.Int, error) {
	return nil, assert.AnError
}

func (g *processorGateway) SuggestFeeRate(_ context.Context) (*big.Int, error) {
	return big.NewInt(20_000_000_000), nil
}

func (g *processorGateway) GetAccountSequence(_ context.Context, _ string) (uint64, error) {
	return 3, nil
}

func (g *processorGateway) GetTransactionMeta(_ context.Context, _ string) (*gateway.TransactionMeta, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	meta := g.meta
	return &meta, nil
}

func (g *processorGateway) Broadcast(_ context.Context, _ []byte) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.broadcasts++
	if g.broadcastErr != nil {
		return "", g.broadcastErr
	}

	return "0xwithdrawal", nil
}

func (g *processorGateway) Close() {}

func (g *processorGateway) broadcastCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.broadcasts
}

// newProcessorService builds a withdrawal service whose hot wallet is derived
// from the unlocked test vault, so signing real transactions works.
func newProcessorService(ctx context.Context, t *testing.T, db *sql.DB, gw *processorGateway) (withdraw.Service, fixtures.FixtureMap) {
	t.Helper()

	f := fixtures.Fixtures()

	// the fixture hot wallet's address is not derived from the test
	// mnemonic, the signer would refuse it
	fixtureWallet, err := models.FindHotWallet(ctx, db, f.HotWalletSepolia.ID)
	require.NoError(t, err)
	fixtureWallet.IsActive = false
	_, err = fixtureWallet.Update(ctx, db, boil.Whitelist(
		models.HotWalletColumns.IsActive,
		models.HotWalletColumns.UpdatedAt,
	))
	require.NoError(t, err)

	vault := keycustody.NewVault()
	vault.SetMnemonic([]byte(test.TestMnemonic), "")
	t.Cleanup(vault.Clear)

	chainService := &stubChains{chain: f.ChainSepolia, gw: gw}

	hotWalletService := hotwallet.NewService(db, chainService, vault)
	_, err = hotWalletService.CreateHotWallet(ctx, f.ChainSepolia.ChainID, "1000000000000000000")
	require.NoError(t, err)

	s := withdraw.NewService(withdraw.Config{
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
	}, db, chainService, hotWalletService, signer.NewService(vault), metrics.New(db))

	return s, f
}

func createPendingWithdrawal(ctx context.Context, t *testing.T, s withdraw.Service, f fixtures.FixtureMap) *models.Withdrawal {
	t.Helper()

	withdrawal, err := s.CreateWithdrawal(ctx, withdraw.CreateRequest{
		UserID:    f.User1,
		ChainID:   f.ChainSepolia.ChainID,
		ToAddress: "0x000000000000000000000000000000000000dEaD",
		Amount:    "1000000000000000000",
	})
	require.NoError(t, err)

	return withdrawal
}

func reloadWithdrawal(ctx context.Context, t *testing.T, db *sql.DB, id string) *models.Withdrawal {
	t.Helper()

	withdrawal, err := models.FindWithdrawal(ctx, db, id)
	require.NoError(t, err)

	return withdrawal
}

func userBalance(ctx context.Context, t *testing.T, db *sql.DB, f fixtures.FixtureMap) *models.UserBalance {
	t.Helper()

	balance, err := models.UserBalances(
		models.UserBalanceWhere.UserID.EQ(f.User1),
		models.UserBalanceWhere.ChainID.EQ(f.ChainSepolia.ChainID),
	).One(ctx, db)
	require.NoError(t, err)

	return balance
}

func TestProcessWithdrawalsBroadcasts(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		gw := &processorGateway{}
		s, f := newProcessorService(ctx, t, db, gw)

		withdrawal := createPendingWithdrawal(ctx, t, s, f)

		require.NoError(t, s.ProcessWithdrawals(ctx))

		stored := reloadWithdrawal(ctx, t, db, withdrawal.ID)
		assert.Equal(t, models.WithdrawalStatusBroadcasted, stored.Status)
		assert.Equal(t, "0xwithdrawal", stored.TxHash.String)
		assert.True(t, stored.HotWalletID.Valid)
		assert.Equal(t, 1, gw.broadcastCount())

		// funds stay frozen until the transaction settles
		balance := userBalance(ctx, t, db, f)
		assert.Equal(t, "4000000000000000000", balance.Available)
		assert.Equal(t, "1000000000000000000", balance.Frozen)
	})
}

func TestProcessWithdrawalsRetriesChainRejection(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		gw := &processorGateway{broadcastErr: cerr.New(cerr.KindBroadcast, "node rejected transaction")}
		s, f := newProcessorService(ctx, t, db, gw)

		withdrawal := createPendingWithdrawal(ctx, t, s, f)

		require.NoError(t, s.ProcessWithdrawals(ctx))

		// the whole attempt budget is consumed, then the withdrawal is
		// parked pending with its funds still frozen, never refunded
		assert.Equal(t, 3, gw.broadcastCount())

		stored := reloadWithdrawal(ctx, t, db, withdrawal.ID)
		assert.Equal(t, models.WithdrawalStatusPending, stored.Status)
		assert.Equal(t, "broadcast attempts exhausted", stored.FailureReason.String)

		balance := userBalance(ctx, t, db, f)
		assert.Equal(t, "4000000000000000000", balance.Available)
		assert.Equal(t, "1000000000000000000", balance.Frozen)
	})
}

func TestProcessWithdrawalsTerminalRejectionRefunds(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		gw := &processorGateway{broadcastErr: cerr.New(cerr.KindValidation, "malformed transaction")}
		s, f := newProcessorService(ctx, t, db, gw)

		withdrawal := createPendingWithdrawal(ctx, t, s, f)

		require.NoError(t, s.ProcessWithdrawals(ctx))

		assert.Equal(t, 1, gw.broadcastCount())

		stored := reloadWithdrawal(ctx, t, db, withdrawal.ID)
		assert.Equal(t, models.WithdrawalStatusFailed, stored.Status)

		balance := userBalance(ctx, t, db, f)
		assert.Equal(t, "5000000000000000000", balance.Available)
		assert.Equal(t, "0", balance.Frozen)
	})
}

func TestConfirmationIgnoresUnvalidatedTransaction(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		gw := &processorGateway{}
		s, f := newProcessorService(ctx, t, db, gw)

		withdrawal := createPendingWithdrawal(ctx, t, s, f)
		require.NoError(t, s.ProcessWithdrawals(ctx))

		// submitted and known to the node, but no validated ledger carries it
		gw.mu.Lock()
		gw.meta = gateway.TransactionMeta{Found: true}
		gw.mu.Unlock()

		require.NoError(t, s.ProcessWithdrawalConfirmations(ctx))

		stored := reloadWithdrawal(ctx, t, db, withdrawal.ID)
		assert.Equal(t, models.WithdrawalStatusBroadcasted, stored.Status)

		// the amount must not be refunded, the payment can still validate
		balance := userBalance(ctx, t, db, f)
		assert.Equal(t, "4000000000000000000", balance.Available)
		assert.Equal(t, "1000000000000000000", balance.Frozen)
	})
}

func TestConfirmationValidatedFailureRefunds(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		gw := &processorGateway{}
		s, f := newProcessorService(ctx, t, db, gw)

		withdrawal := createPendingWithdrawal(ctx, t, s, f)
		require.NoError(t, s.ProcessWithdrawals(ctx))

		gw.mu.Lock()
		gw.meta = gateway.TransactionMeta{Found: true, Included: true, Confirmations: 1, Succeeded: false}
		gw.mu.Unlock()

		require.NoError(t, s.ProcessWithdrawalConfirmations(ctx))

		stored := reloadWithdrawal(ctx, t, db, withdrawal.ID)
		assert.Equal(t, models.WithdrawalStatusFailed, stored.Status)
		assert.Equal(t, "transaction failed on chain", stored.FailureReason.String)

		balance := userBalance(ctx, t, db, f)
		assert.Equal(t, "5000000000000000000", balance.Available)
		assert.Equal(t, "0", balance.Frozen)
	})
}

func TestConfirmationSettlesWithdrawal(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		gw := &processorGateway{}
		s, f := newProcessorService(ctx, t, db, gw)

		withdrawal := createPendingWithdrawal(ctx, t, s, f)
		require.NoError(t, s.ProcessWithdrawals(ctx))

		gw.mu.Lock()
		gw.meta = gateway.TransactionMeta{Found: true, Included: true, Confirmations: 12, Succeeded: true}
		gw.mu.Unlock()

		require.NoError(t, s.ProcessWithdrawalConfirmations(ctx))

		stored := reloadWithdrawal(ctx, t, db, withdrawal.ID)
		assert.Equal(t, models.WithdrawalStatusConfirmed, stored.Status)
		assert.True(t, stored.ConfirmedAt.Valid)

		// the frozen amount left custody for good
		balance := userBalance(ctx, t, db, f)
		assert.Equal(t, "4000000000000000000", balance.Available)
		assert.Equal(t, "0", balance.Frozen)
	})
}

func TestProcessWithdrawalsReclaimsStaleProcessing(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		gw := &processorGateway{}
		s, f := newProcessorService(ctx, t, db, gw)

		// a worker claimed this withdrawal and died mid-flight
		withdrawal := createPendingWithdrawal(ctx, t, s, f)
		_, err := db.ExecContext(ctx,
			`UPDATE withdrawals SET status = $1, updated_at = now() - interval '1 hour' WHERE id = $2`,
			models.WithdrawalStatusProcessing, withdrawal.ID,
		)
		require.NoError(t, err)

		require.NoError(t, s.ProcessWithdrawals(ctx))

		stored := reloadWithdrawal(ctx, t, db, withdrawal.ID)
		assert.Equal(t, models.WithdrawalStatusBroadcasted, stored.Status)
		assert.Equal(t, 1, gw.broadcastCount())
	})
}

func TestProcessWithdrawalsLeavesFreshProcessingAlone(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		gw := &processorGateway{}
		s, f := newProcessorService(ctx, t, db, gw)

		// another live worker holds this claim
		withdrawal := createPendingWithdrawal(ctx, t, s, f)
		_, err := db.ExecContext(ctx,
			`UPDATE withdrawals SET status = $1 WHERE id = $2`,
			models.WithdrawalStatusProcessing, withdrawal.ID,
		)
		require.NoError(t, err)

		require.NoError(t, s.ProcessWithdrawals(ctx))

		stored := reloadWithdrawal(ctx, t, db, withdrawal.ID)
		assert.Equal(t, models.WithdrawalStatusProcessing, stored.Status)
		assert.Equal(t, 0, gw.broadcastCount())
	})
}
