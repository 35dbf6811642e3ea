package hotwallet_test

import (
	"context"
	"database/sql"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/custody/gateway"
	"github.com/tesserex/custody/internal/custody/hotwallet"
	"github.com/tesserex/custody/internal/data/fixtures"
	"github.com/tesserex/custody/internal/mailer"
	"github.com/tesserex/custody/internal/mailer/transport"
	"github.com/tesserex/custody/internal/metrics"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/test"
	"github.com/tesserex/custody/internal/util"
)

// balanceGateway returns a settable fixed balance.
type balanceGateway struct {
	balance *big.Int
}

func (g *balanceGateway) GetBalance(_ context.Context, _ string) (*big.Int, error) {
	return new(big.Int).Set(g.balance), nil
}

func (g *balanceGateway) SuggestFeeRate(_ context.Context) (*big.Int, error) {
	return nil, assert.AnError
}

func (g *balanceGateway) GetAccountSequence(_ context.Context, _ string) (uint64, error) {
	return 0, assert.AnError
}

func (g *balanceGateway) GetTransactionMeta(_ context.Context, _ string) (*gateway.TransactionMeta, error) {
	return nil, assert.AnError
}

func (g *balanceGateway) Broadcast(_ context.Context, _ []byte) (string, error) {
	return "", assert.AnError
}

func (g *balanceGateway) Close() {}

// multiChains routes gateway lookups per chain id.
type multiChains struct {
	chains   map[int]*models.Chain
	gateways map[int]gateway.Gateway
}

func (s *multiChains) GetChain(_ context.Context, chainID int) (*models.Chain, error) {
	chain, ok := s.chains[chainID]
	if !ok {
		return nil, chains.ErrChainNotFound
	}
	return chain, nil
}

func (s *multiChains) GetActiveChain(ctx context.Context, chainID int) (*models.Chain, error) {
	return s.GetChain(ctx, chainID)
}

func (s *multiChains) GetActiveChains(_ context.Context) ([]*models.Chain, error) {
	all := make([]*models.Chain, 0, len(s.chains))
	for _, chain := range s.chains {
		all = append(all, chain)
	}
	return all, nil
}

func (s *multiChains) ListChains(ctx context.Context) ([]*models.Chain, error) {
	return s.GetActiveChains(ctx)
}

func (s *multiChains) GatewayFor(_ context.Context, chainID int) (gateway.Gateway, error) {
	gw, ok := s.gateways[chainID]
	if !ok {
		return nil, chains.ErrChainNotFound
	}
	return gw, nil
}

func (s *multiChains) InvalidateChain(_ int) {}

func (s *multiChains) Close() {}

func newMockMailer(t *testing.T) (*mailer.Mailer, *transport.MockMailTransport) {
	t.Helper()

	mt := transport.NewMock()
	m := mailer.New(mailer.MailerConfig{
		DefaultSender:               "custody@example.com",
		Send:                        true,
		WebTemplatesEmailBaseDirAbs: filepath.Join(util.GetProjectRootDir(), "web", "templates", "email"),
	}, mt)
	require.NoError(t, m.ParseTemplates())

	return m, mt
}

func TestRunCheckCycleAlertsOnceWhileLow(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		evmGateway := &balanceGateway{balance: big.NewInt(500_000_000_000_000_000)} // below 1 ETH minimum
		chainService := &multiChains{
			chains: map[int]*models.Chain{
				f.ChainSepolia.ChainID: f.ChainSepolia,
				f.ChainXRPL.ChainID:    f.ChainXRPL,
			},
			gateways: map[int]gateway.Gateway{
				f.ChainSepolia.ChainID: evmGateway,
				f.ChainXRPL.ChainID:    &balanceGateway{balance: big.NewInt(25_000_000)}, // above 20 XRP minimum
			},
		}

		m, mt := newMockMailer(t)
		monitor := hotwallet.NewMonitor(db, chainService, m, []string{"ops@example.com"}, metrics.New(db))

		require.NoError(t, monitor.RunCheckCycle(ctx))

		mails := mt.GetSentMails()
		require.Len(t, mails, 1)
		assert.Equal(t, []string{"ops@example.com"}, mails[0].To)
		assert.Equal(t, "Hot wallet balance below threshold: "+f.ChainSepolia.Name, mails[0].Subject)
		assert.Contains(t, string(mails[0].HTML), f.HotWalletSepolia.Address)
		assert.Contains(t, string(mails[0].HTML), "0.5")

		// still low on the next cycle, no repeat alert
		require.NoError(t, monitor.RunCheckCycle(ctx))
		assert.Len(t, mt.GetSentMails(), 1)
	})
}

func TestRunCheckCycleRealertsAfterRecovery(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		evmGateway := &balanceGateway{balance: big.NewInt(1)}
		chainService := &multiChains{
			chains: map[int]*models.Chain{
				f.ChainSepolia.ChainID: f.ChainSepolia,
				f.ChainXRPL.ChainID:    f.ChainXRPL,
			},
			gateways: map[int]gateway.Gateway{
				f.ChainSepolia.ChainID: evmGateway,
				f.ChainXRPL.ChainID:    &balanceGateway{balance: big.NewInt(25_000_000)},
			},
		}

		m, mt := newMockMailer(t)
		monitor := hotwallet.NewMonitor(db, chainService, m, []string{"ops@example.com"}, metrics.New(db))

		require.NoError(t, monitor.RunCheckCycle(ctx))
		require.Len(t, mt.GetSentMails(), 1)

		// funded back above the minimum, alert state clears
		evmGateway.balance = big.NewInt(2_000_000_000_000_000_000)
		require.NoError(t, monitor.RunCheckCycle(ctx))
		assert.Len(t, mt.GetSentMails(), 1)

		// dips again, a fresh alert goes out
		evmGateway.balance = big.NewInt(1)
		require.NoError(t, monitor.RunCheckCycle(ctx))
		assert.Len(t, mt.GetSentMails(), 2)
	})
}

func TestRunCheckCycleNoRecipients(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		chainService := &multiChains{
			chains: map[int]*models.Chain{
				f.ChainSepolia.ChainID: f.ChainSepolia,
				f.ChainXRPL.ChainID:    f.ChainXRPL,
			},
			gateways: map[int]gateway.Gateway{
				f.ChainSepolia.ChainID: &balanceGateway{balance: big.NewInt(1)},
				f.ChainXRPL.ChainID:    &balanceGateway{balance: big.NewInt(25_000_000)},
			},
		}

		m, mt := newMockMailer(t)
		monitor := hotwallet.NewMonitor(db, chainService, m, nil, metrics.New(db))

		require.NoError(t, monitor.RunCheckCycle(ctx))
		assert.Empty(t, mt.GetSentMails())
	})
}
