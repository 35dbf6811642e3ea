package aggregate

import (
	"context"
	"database/sql"
	"math/big"
	"sync"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/util"
)

// maxConcurrentBalanceQueries bounds how many RPC balance lookups run at once
// during an aggregation pass.
const maxConcurrentBalanceQueries = 8

// Filter narrows which deposit addresses an aggregation pass covers.
type Filter struct {
	ChainID    *int
	UserID     *string
	OnlyActive bool
}

// AddressBalance is one deposit address with its live on-chain balance. Err
// carries the lookup failure for that address without failing the whole pass.
type AddressBalance struct {
	DepositAddressID string `json:"deposit_address_id"`
	UserID           string `json:"user_id"`
	ChainID          int    `json:"chain_id"`
	Address          string `json:"address"`
	Balance          string `json:"balance"`
	Err              string `json:"error,omitempty"`
}

// Summary totals an aggregation pass.
type Summary struct {
	TotalBalance string `json:"total_balance"`
	AddressCount int    `json:"address_count"`
	ErrorCount   int    `json:"error_count"`
}

// Service reports live balances across the deposit address estate.
type Service interface {
	// AggregateBalances queries the chain balance of every matching deposit
	// address with bounded concurrency.
	AggregateBalances(ctx context.Context, filter Filter) ([]AddressBalance, *Summary, error)
}

type service struct {
	db           *sql.DB
	chainService chains.Service
}

//nolint:ireturn
func NewService(db *sql.DB, chainService chains.Service) Service {
	return &service{
		db:           db,
		chainService: chainService,
	}
}

func (s *service) AggregateBalances(ctx context.Context, filter Filter) ([]AddressBalance, *Summary, error) {
	log := util.LogFromContext(ctx)

	mods := []qm.QueryMod{
		qm.OrderBy(models.DepositAddressColumns.CreatedAt + " ASC"),
	}
	if filter.ChainID != nil {
		mods = append(mods, models.DepositAddressWhere.ChainID.EQ(*filter.ChainID))
	}
	if filter.UserID != nil {
		mods = append(mods, models.DepositAddressWhere.UserID.EQ(*filter.UserID))
	}
	if filter.OnlyActive {
		mods = append(mods, models.DepositAddressWhere.IsActive.EQ(true))
	}

	addresses, err := models.DepositAddresses(mods...).All(ctx, s.db)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load deposit addresses")
	}

	items := make([]AddressBalance, len(addresses))

	var mu sync.Mutex
	total := new(big.Int)
	errorCount := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentBalanceQueries)

	for i, addr := range addresses {
		g.Go(func() error {
			item := AddressBalance{
				DepositAddressID: addr.ID,
				UserID:           addr.UserID,
				ChainID:          addr.ChainID,
				Address:          addr.Address,
				Balance:          "0",
			}

			balance, err := s.queryBalance(gctx, addr)
			if err != nil {
				item.Err = err.Error()
			} else {
				item.Balance = balance.String()
			}

			mu.Lock()
			items[i] = item
			if err != nil {
				errorCount++
			} else {
				total.Add(total, balance)
			}
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	summary := &Summary{
		TotalBalance: total.String(),
		AddressCount: len(items),
		ErrorCount:   errorCount,
	}

	log.Debug().
		Int("address_count", summary.AddressCount).
		Int("error_count", summary.ErrorCount).
		Str("total_balance", summary.TotalBalance).
		Msg("Aggregated deposit address balances")

	return items, summary, nil
}

func (s *service) queryBalance(ctx context.Context, addr *models.DepositAddress) (*big.Int, error) {
	gw, err := s.chainService.GatewayFor(ctx, addr.ChainID)
	if err != nil {
		return nil, err
	}

	return gw.GetBalance(ctx, addr.Address)
}
