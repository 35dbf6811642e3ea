package hotwallet

import (
	"context"
	"database/sql"
	"math/big"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/mailer"
	"github.com/tesserex/custody/internal/metrics"
	"github.com/tesserex/custody/internal/models"
)

// Monitor periodically compares hot wallet balances against their configured
// minimum and alerts the operators when one runs low.
type Monitor struct {
	db           *sql.DB
	chainService chains.Service
	mailer       *mailer.Mailer
	recipients   []string
	metrics      *metrics.Service

	// alerted tracks wallets already alerted on so a low wallet does not
	// page on every cycle. Cleared once the balance recovers.
	alerted map[string]bool
}

func NewMonitor(db *sql.DB, chainService chains.Service, m *mailer.Mailer, recipients []string, metricsService *metrics.Service) *Monitor {
	return &Monitor{
		db:           db,
		chainService: chainService,
		mailer:       m,
		recipients:   recipients,
		metrics:      metricsService,
		alerted:      make(map[string]bool),
	}
}

func (m *Monitor) Start(ctx context.Context, interval time.Duration) {
	go func() {
		log.Info().Dur("interval", interval).Msg("Starting hot wallet balance monitor")

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			if err := m.RunCheckCycle(ctx); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("Hot wallet balance check failed")
			}

			select {
			case <-ctx.Done():
				log.Info().Msg("Stopping hot wallet balance monitor")
				return
			case <-ticker.C:
			}
		}
	}()
}

func (m *Monitor) RunCheckCycle(ctx context.Context) error {
	wallets, err := models.HotWallets(
		models.HotWalletWhere.IsActive.EQ(true),
	).All(ctx, m.db)
	if err != nil {
		return errors.Wrap(err, "failed to load hot wallets")
	}

	for _, wallet := range wallets {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := m.checkWallet(ctx, wallet); err != nil {
			log.Warn().
				Err(err).
				Str("hot_wallet_id", wallet.ID).
				Msg("Failed to check hot wallet balance")
		}
	}

	return nil
}

func (m *Monitor) checkWallet(ctx context.Context, wallet *models.HotWallet) error {
	chain, err := m.chainService.GetChain(ctx, wallet.ChainID)
	if err != nil {
		return err
	}

	gw, err := m.chainService.GatewayFor(ctx, wallet.ChainID)
	if err != nil {
		return err
	}

	balance, err := gw.GetBalance(ctx, wallet.Address)
	if err != nil {
		return errors.Wrap(err, "failed to query hot wallet balance")
	}

	minBalance, ok := new(big.Int).SetString(wallet.MinBalance, 10)
	if !ok {
		return errors.Errorf("hot wallet has malformed min balance")
	}

	if balance.Cmp(minBalance) >= 0 {
		delete(m.alerted, wallet.ID)
		return nil
	}

	log.Warn().
		Str("hot_wallet_id", wallet.ID).
		Int("chain_id", wallet.ChainID).
		Str("balance", balance.String()).
		Str("min_balance", wallet.MinBalance).
		Msg("Hot wallet balance below threshold")

	if m.alerted[wallet.ID] {
		return nil
	}

	err = m.mailer.SendHotWalletLowBalanceAlert(ctx, m.recipients, mailer.LowBalanceAlertPayload{
		ChainName:    chain.Name,
		NativeSymbol: chain.NativeSymbol,
		Address:      wallet.Address,
		Balance:      toDisplayUnits(balance.String(), chain.NativeDecimals),
		MinBalance:   toDisplayUnits(wallet.MinBalance, chain.NativeDecimals),
	})
	if err != nil {
		return errors.Wrap(err, "failed to send low balance alert")
	}

	m.alerted[wallet.ID] = true
	m.metrics.HotWalletLowBalance.Inc()

	return nil
}

// toDisplayUnits converts a base-unit amount (wei, drops) into the chain's
// display denomination.
func toDisplayUnits(baseAmount string, decimals int) string {
	d, err := decimal.NewFromString(baseAmount)
	if err != nil {
		return baseAmount
	}

	return d.Shift(int32(-decimals)).String()
}
