package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/tesserex/custody/internal/config"
	"github.com/tesserex/custody/internal/custody/address"
	"github.com/tesserex/custody/internal/custody/aggregate"
	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/custody/confirm"
	"github.com/tesserex/custody/internal/custody/hotwallet"
	"github.com/tesserex/custody/internal/custody/keycustody"
	"github.com/tesserex/custody/internal/custody/subscribe"
	"github.com/tesserex/custody/internal/custody/sweep"
	"github.com/tesserex/custody/internal/custody/withdraw"
	"github.com/tesserex/custody/internal/mailer"
	"github.com/tesserex/custody/internal/metrics"
	"github.com/tesserex/custody/internal/util"

	// Import postgres driver for database/sql package
	_ "github.com/lib/pq"
)

// ChainsService provides the chain registry and per-chain gateways.
type ChainsService = chains.Service

// KeystoreService seals and unlocks the custody master seed.
type KeystoreService = keycustody.Service

// AddressService allocates per-user deposit addresses.
type AddressService = address.Service

// SubscribeService maintains the node-side address watch list.
type SubscribeService = subscribe.Service

// ConfirmService tracks deposits through their confirmation state machine.
type ConfirmService = confirm.Service

// SweepService plans and executes sweep jobs.
type SweepService = sweep.Service

// WithdrawService validates, signs and settles user withdrawals.
type WithdrawService = withdraw.Service

// HotWalletService manages the hot wallets funding withdrawals.
type HotWalletService = hotwallet.Service

// AggregateService reports live balances across the deposit address estate.
type AggregateService = aggregate.Service

type Router struct {
	Routes     []*echo.Route
	Root       *echo.Group
	Management *echo.Group
	APIV1      *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config    config.Server
	DB        *sql.DB
	Mailer    *mailer.Mailer
	Clock     time2.Clock
	Metrics   *metrics.Service
	Vault     *keycustody.Vault
	Chains    ChainsService
	Keystore  KeystoreService
	Address   AddressService
	Subscribe SubscribeService
	Confirm   ConfirmService
	Sweep     SweepService
	Withdraw  WithdrawService
	HotWallet HotWalletService
	Monitor   *hotwallet.Monitor
	Aggregate AggregateService
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	db *sql.DB,
	mail *mailer.Mailer,
	clock time2.Clock,
	metricsService *metrics.Service,
	vault *keycustody.Vault,
	chainsService ChainsService,
	keystoreService KeystoreService,
	addressService AddressService,
	subscribeService SubscribeService,
	confirmService ConfirmService,
	sweepService SweepService,
	withdrawService WithdrawService,
	hotWalletService HotWalletService,
	monitor *hotwallet.Monitor,
	aggregateService AggregateService,
) *Server {
	return &Server{
		Config:    cfg,
		DB:        db,
		Mailer:    mail,
		Clock:     clock,
		Metrics:   metricsService,
		Vault:     vault,
		Chains:    chainsService,
		Keystore:  keystoreService,
		Address:   addressService,
		Subscribe: subscribeService,
		Confirm:   confirmService,
		Sweep:     sweepService,
		Withdraw:  withdrawService,
		HotWallet: hotWalletService,
		Monitor:   monitor,
		Aggregate: aggregateService,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

// StartWorkers launches the custody worker loops enabled in the config. They
// run until ctx is cancelled.
func (s *Server) StartWorkers(ctx context.Context) {
	cfg := s.Config.Custody

	if cfg.EnableDepositMonitor {
		s.Confirm.Start(ctx, cfg.DepositScanInterval)
	}

	if cfg.EnableSweeper {
		s.Sweep.Start(ctx, cfg.SweepPlanInterval, cfg.SweepExecuteInterval)
	}

	if cfg.EnableWithdrawProcessor {
		s.Withdraw.Start(ctx, cfg.WithdrawPollInterval)
	}

	if cfg.EnableHotWalletMonitor {
		s.Monitor.Start(ctx, cfg.HotWalletCheckInterval)
	}
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Chains != nil {
		log.Debug().Msg("Closing chain gateways")
		s.Chains.Close()
	}

	if s.Vault != nil {
		s.Vault.Clear()
	}

	if s.DB != nil {
		log.Debug().Msg("Closing database connection")

		if err := s.DB.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
			log.Error().Err(err).Msg("Failed to close database connection")
			errs = append(errs, err)
		}
	}

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	return errs
}
