package aggregate_test

import (
	"context"
	"database/sql"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/custody/aggregate"
	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/custody/gateway"
	"github.com/tesserex/custody/internal/data/fixtures"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/test"
)

// balanceGateway returns a fixed balance, or fails every lookup.
type balanceGateway struct {
	balance *big.Int
	err     error
}

func (g *balanceGateway) GetBalance(_ context.Context, _ string) (*big.Int, error) {
	if g.err != nil {
		return nil, g.err
	}
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

func TestAggregateBalancesPartialFailure(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		// the XRPL node is down, the EVM node answers
		chainService := &multiChains{
			chains: map[int]*models.Chain{
				f.ChainSepolia.ChainID: f.ChainSepolia,
				f.ChainXRPL.ChainID:    f.ChainXRPL,
			},
			gateways: map[int]gateway.Gateway{
				f.ChainSepolia.ChainID: &balanceGateway{balance: big.NewInt(1_500_000_000_000_000_000)},
				f.ChainXRPL.ChainID:    &balanceGateway{err: errors.New("connection refused")},
			},
		}
		s := aggregate.NewService(db, chainService)

		items, summary, err := s.AggregateBalances(ctx, aggregate.Filter{OnlyActive: true})
		require.NoError(t, err)
		require.NotNil(t, summary)

		// fixtures hold one deposit address per chain
		assert.Equal(t, 2, summary.AddressCount)
		assert.Equal(t, 1, summary.ErrorCount)

		// only successfully queried balances enter the total
		assert.Equal(t, "1500000000000000000", summary.TotalBalance)

		byChain := map[int]aggregate.AddressBalance{}
		for _, item := range items {
			byChain[item.ChainID] = item
		}

		assert.Equal(t, "1500000000000000000", byChain[f.ChainSepolia.ChainID].Balance)
		assert.Empty(t, byChain[f.ChainSepolia.ChainID].Err)

		assert.Equal(t, "0", byChain[f.ChainXRPL.ChainID].Balance)
		assert.Contains(t, byChain[f.ChainXRPL.ChainID].Err, "connection refused")
	})
}

func TestAggregateBalancesFilters(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		chainService := &multiChains{
			chains: map[int]*models.Chain{
				f.ChainSepolia.ChainID: f.ChainSepolia,
				f.ChainXRPL.ChainID:    f.ChainXRPL,
			},
			gateways: map[int]gateway.Gateway{
				f.ChainSepolia.ChainID: &balanceGateway{balance: big.NewInt(42)},
				f.ChainXRPL.ChainID:    &balanceGateway{balance: big.NewInt(7)},
			},
		}
		s := aggregate.NewService(db, chainService)

		chainID := f.ChainSepolia.ChainID
		items, summary, err := s.AggregateBalances(ctx, aggregate.Filter{ChainID: &chainID})
		require.NoError(t, err)

		require.Len(t, items, 1)
		assert.Equal(t, f.User1DepositAddressEVM.ID, items[0].DepositAddressID)
		assert.Equal(t, "42", summary.TotalBalance)
		assert.Equal(t, 0, summary.ErrorCount)

		unknownUser := "00000000-0000-0000-0000-000000000000"
		items, summary, err = s.AggregateBalances(ctx, aggregate.Filter{UserID: &unknownUser})
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Equal(t, "0", summary.TotalBalance)
	})
}
