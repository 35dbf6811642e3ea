package withdraw_test

import (
	"context"
	"database/sql"
	"math/big"
	"sync/atomic"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/custody/gateway"
	"github.com/tesserex/custody/internal/custody/withdraw"
	"github.com/tesserex/custody/internal/data/fixtures"
	"github.com/tesserex/custody/internal/metrics"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/test"
)

// countingGateway fails every call, tests only care whether it was reached.
type countingGateway struct {
	calls atomic.Int64
}

func (g *countingGateway) GetBalance(_ context.Context, _ string) (*big.Int, error) {
	g.calls.Add(1)
	return nil, assert.AnError
}

func (g *countingGateway) SuggestFeeRate(_ context.Context) (*big.Int, error) {
	g.calls.Add(1)
	return nil, assert.AnError
}

func (g *countingGateway) GetAccountSequence(_ context.Context, _ string) (uint64, error) {
	g.calls.Add(1)
	return 0, assert.AnError
}

func (g *countingGateway) GetTransactionMeta(_ context.Context, _ string) (*gateway.TransactionMeta, error) {
	g.calls.Add(1)
	return nil, assert.AnError
}

func (g *countingGateway) Broadcast(_ context.Context, _ []byte) (string, error) {
	g.calls.Add(1)
	return "", assert.AnError
}

func (g *countingGateway) Close() {}

// stubChains serves a single fixed chain row without touching the database.
type stubChains struct {
	chain        *models.Chain
	gw           gateway.Gateway
	gatewayCalls atomic.Int64
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
	s.gatewayCalls.Add(1)
	return s.gw, nil
}

func (s *stubChains) InvalidateChain(_ int) {}

func (s *stubChains) Close() {}

func evmChainStub() *stubChains {
	f := fixtures.Fixtures()
	chain := *f.ChainSepolia
	chain.MaxWithdrawAmount = "2000000000000000000" // 2 ETH cap

	return &stubChains{chain: &chain, gw: &countingGateway{}}
}

func xrplChainStub() *stubChains {
	f := fixtures.Fixtures()
	chain := *f.ChainXRPL

	return &stubChains{chain: &chain, gw: &countingGateway{}}
}

func newWithdrawService(db *sql.DB, chainService chains.Service) withdraw.Service {
	return withdraw.NewService(withdraw.Config{RetryAttempts: 1}, db, chainService, nil, nil, metrics.New(db))
}

func TestCreateWithdrawalFreezesBalance(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()
		chainService := evmChainStub()
		s := newWithdrawService(db, chainService)

		withdrawal, err := s.CreateWithdrawal(ctx, withdraw.CreateRequest{
			UserID:    f.User1,
			ChainID:   f.ChainSepolia.ChainID,
			ToAddress: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
			Amount:    "1000000000000000000",
		})
		require.NoError(t, err)
		assert.Equal(t, models.WithdrawalStatusPending, withdrawal.Status)

		balance, err := models.UserBalances(
			models.UserBalanceWhere.UserID.EQ(f.User1),
			models.UserBalanceWhere.ChainID.EQ(f.ChainSepolia.ChainID),
		).One(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, "4000000000000000000", balance.Available)
		assert.Equal(t, "1000000000000000000", balance.Frozen)
	})
}

func TestCreateWithdrawalAboveLimitNeverTouchesChain(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()
		chainService := evmChainStub()
		s := newWithdrawService(db, chainService)

		// one base unit above the per-withdrawal cap
		_, err := s.CreateWithdrawal(ctx, withdraw.CreateRequest{
			UserID:    f.User1,
			ChainID:   f.ChainSepolia.ChainID,
			ToAddress: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
			Amount:    "2000000000000000001",
		})
		require.ErrorIs(t, err, withdraw.ErrAmountAboveLimit)

		// the cap must reject before any RPC is made
		assert.Equal(t, int64(0), chainService.gatewayCalls.Load())
		//nolint:forcetypeassert
		assert.Equal(t, int64(0), chainService.gw.(*countingGateway).calls.Load())

		// and before any funds are touched
		balance, err := models.UserBalances(
			models.UserBalanceWhere.UserID.EQ(f.User1),
			models.UserBalanceWhere.ChainID.EQ(f.ChainSepolia.ChainID),
		).One(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, "5000000000000000000", balance.Available)
		assert.Equal(t, "0", balance.Frozen)
	})
}

func TestCreateWithdrawalInsufficientBalance(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		// fixture balance is 5 ETH, lift the cap so the balance check decides
		chainService := evmChainStub()
		chainService.chain.MaxWithdrawAmount = "0"
		s := newWithdrawService(db, chainService)

		_, err := s.CreateWithdrawal(ctx, withdraw.CreateRequest{
			UserID:    f.User1,
			ChainID:   f.ChainSepolia.ChainID,
			ToAddress: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
			Amount:    "5000000000000000001",
		})
		require.ErrorIs(t, err, withdraw.ErrInsufficientBalance)

		// a user without any balance row is treated the same
		_, err = s.CreateWithdrawal(ctx, withdraw.CreateRequest{
			UserID:    "00000000-0000-0000-0000-000000000000",
			ChainID:   f.ChainSepolia.ChainID,
			ToAddress: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
			Amount:    "1",
		})
		require.ErrorIs(t, err, withdraw.ErrInsufficientBalance)
	})
}

func TestCreateWithdrawalValidatesDestination(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		evmService := newWithdrawService(db, evmChainStub())
		xrplService := newWithdrawService(db, xrplChainStub())

		// not hex
		_, err := evmService.CreateWithdrawal(ctx, withdraw.CreateRequest{
			UserID:    f.User1,
			ChainID:   f.ChainSepolia.ChainID,
			ToAddress: "definitely-not-an-address",
			Amount:    "1",
		})
		require.ErrorIs(t, err, withdraw.ErrInvalidDestination)

		// destination tags are an XRPL concept
		_, err = evmService.CreateWithdrawal(ctx, withdraw.CreateRequest{
			UserID:         f.User1,
			ChainID:        f.ChainSepolia.ChainID,
			ToAddress:      "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
			DestinationTag: null.Int64From(7),
			Amount:         "1",
		})
		require.ErrorIs(t, err, withdraw.ErrInvalidDestinationTag)

		// malformed ripple address (bad checksum)
		_, err = xrplService.CreateWithdrawal(ctx, withdraw.CreateRequest{
			UserID:    f.User1,
			ChainID:   f.ChainXRPL.ChainID,
			ToAddress: "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTX",
			Amount:    "1",
		})
		require.ErrorIs(t, err, withdraw.ErrInvalidDestination)

		// tag above 2^32-1 cannot be encoded on ledger
		_, err = xrplService.CreateWithdrawal(ctx, withdraw.CreateRequest{
			UserID:         f.User1,
			ChainID:        f.ChainXRPL.ChainID,
			ToAddress:      "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
			DestinationTag: null.Int64From(4294967296),
			Amount:         "1",
		})
		require.ErrorIs(t, err, withdraw.ErrInvalidDestinationTag)

		_, err = xrplService.CreateWithdrawal(ctx, withdraw.CreateRequest{
			UserID:         f.User1,
			ChainID:        f.ChainXRPL.ChainID,
			ToAddress:      "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
			DestinationTag: null.Int64From(-1),
			Amount:         "1",
		})
		require.ErrorIs(t, err, withdraw.ErrInvalidDestinationTag)
	})
}

func TestCreateWithdrawalValidatesAmount(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()
		s := newWithdrawService(db, evmChainStub())

		for _, amount := range []string{"0", "-1", "1.5", "one"} {
			_, err := s.CreateWithdrawal(ctx, withdraw.CreateRequest{
				UserID:    f.User1,
				ChainID:   f.ChainSepolia.ChainID,
				ToAddress: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
				Amount:    amount,
			})
			assert.ErrorIs(t, err, withdraw.ErrInvalidAmount, "amount %q should be rejected", amount)
		}
	})
}

func TestCreateWithdrawalInactiveChain(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		chainService := evmChainStub()
		chainService.chain.IsActive = false
		s := newWithdrawService(db, chainService)

		_, err := s.CreateWithdrawal(ctx, withdraw.CreateRequest{
			UserID:    f.User1,
			ChainID:   f.ChainSepolia.ChainID,
			ToAddress: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
			Amount:    "1",
		})
		require.ErrorIs(t, err, chains.ErrChainInactive)
	})
}

// fixedBalanceGateway answers every balance query with the same value.
type fixedBalanceGateway struct {
	countingGateway
	balance *big.Int
}

func (g *fixedBalanceGateway) GetBalance(_ context.Context, _ string) (*big.Int, error) {
	return new(big.Int).Set(g.balance), nil
}

func TestGetStatisticsAggregatesPendingAndHotWallets(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		chainService := evmChainStub()
		chainService.gw = &fixedBalanceGateway{balance: big.NewInt(123_000)}
		s := newWithdrawService(db, chainService)

		for i := 0; i < 2; i++ {
			_, err := s.CreateWithdrawal(ctx, withdraw.CreateRequest{
				UserID:    f.User1,
				ChainID:   f.ChainSepolia.ChainID,
				ToAddress: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
				Amount:    "1000000000000000000",
			})
			require.NoError(t, err)
		}

		stats := s.GetStatistics(ctx)

		assert.Equal(t, int64(2), stats.TotalCount)
		assert.Equal(t, int64(2), stats.PendingCount)
		assert.Equal(t, "2000000000000000000", stats.PendingAmount)
		assert.Equal(t, "0", stats.TotalConfirmedAmount)

		// one entry per active fixture hot wallet, balances from the chain
		require.Len(t, stats.HotWalletBalances, 2)
		for _, balance := range stats.HotWalletBalances {
			assert.NotEmpty(t, balance.Address)
			assert.Equal(t, "123000", balance.Balance)
		}
	})
}

func TestGetStatisticsSurvivesBalanceFailures(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()

		// every chain call fails, statistics still answer with zero values
		s := newWithdrawService(db, evmChainStub())

		stats := s.GetStatistics(ctx)

		assert.Equal(t, "0", stats.PendingAmount)
		require.Len(t, stats.HotWalletBalances, 2)
		for _, balance := range stats.HotWalletBalances {
			assert.Equal(t, "0", balance.Balance)
		}
	})
}
