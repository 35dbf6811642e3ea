package api

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/config"
	"github.com/tesserex/custody/internal/custody/address"
	"github.com/tesserex/custody/internal/custody/aggregate"
	"github.com/tesserex/custody/internal/custody/chains"
	"github.com/tesserex/custody/internal/custody/confirm"
	"github.com/tesserex/custody/internal/custody/gateway"
	"github.com/tesserex/custody/internal/custody/hotwallet"
	"github.com/tesserex/custody/internal/custody/keycustody"
	"github.com/tesserex/custody/internal/custody/signer"
	"github.com/tesserex/custody/internal/custody/subscribe"
	"github.com/tesserex/custody/internal/custody/sweep"
	"github.com/tesserex/custody/internal/custody/withdraw"
	"github.com/tesserex/custody/internal/mailer"
	"github.com/tesserex/custody/internal/mailer/transport"
	"github.com/tesserex/custody/internal/metrics"
)

// PROVIDERS - the functions wire assembles the Server from. See wire.go.

const dbConnectTimeout = 15 * time.Second

// NewDB opens the database pool and verifies connectivity.
func NewDB(cfg config.Server) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database connection")
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return db, nil
}

// NewMailer builds the alert mailer with the configured transport and parses
// its templates upfront so a broken template fails at startup. Tests always
// get the mock transport, whatever the config says.
func NewMailer(cfg config.Server, t ...*testing.T) (*mailer.Mailer, error) {
	var mt transport.MailTransporter

	switch {
	case len(t) > 0:
		mt = transport.NewMock()
	case cfg.Mailer.Transporter == mailer.MailerTransporterSMTP.String():
		mt = transport.NewSMTP(cfg.SMTP)
	default:
		mt = transport.NewMock()
	}

	m := mailer.New(cfg.Mailer, mt)

	if err := m.ParseTemplates(); err != nil {
		return nil, errors.Wrap(err, "failed to parse mailer templates")
	}

	return m, nil
}

func NewClock() time2.Clock {
	return time2.DefaultClock
}

func NewVault() *keycustody.Vault {
	return keycustody.NewVault()
}

//nolint:ireturn
func NewChainsService(cfg config.Server, db *sql.DB, metricsService *metrics.Service) ChainsService {
	return chains.NewService(db, chains.Config{
		CacheExpiry:       cfg.Custody.ChainCacheExpiry,
		RequestTimeout:    cfg.Custody.GatewayRequestTimeout,
		MaxRequestsPerSec: cfg.Custody.GatewayMaxRequestsPerSec,
		Retry: gateway.RetryConfig{
			MaxAttempts:  cfg.Custody.GatewayRetryMaxAttempts,
			InitialDelay: cfg.Custody.GatewayRetryInitialDelay,
			MaxDelay:     cfg.Custody.GatewayRetryMaxDelay,
			OnRetry: func(_ string) {
				metricsService.GatewayRetries.Inc()
			},
		},
	})
}

//nolint:ireturn
func NewKeystoreService(db *sql.DB, vault *keycustody.Vault) KeystoreService {
	return keycustody.NewService(db, vault)
}

//nolint:ireturn
func NewSignerService(vault *keycustody.Vault) signer.Service {
	return signer.NewService(vault)
}

//nolint:ireturn
func NewAddressService(db *sql.DB, chainsService ChainsService, vault *keycustody.Vault) AddressService {
	return address.NewService(db, chainsService, vault)
}

//nolint:ireturn
func NewSubscribeService(cfg config.Server, db *sql.DB) SubscribeService {
	return subscribe.NewService(subscribe.Config{
		ProviderURL:     cfg.Custody.SubscriptionProviderURL,
		ProviderTimeout: cfg.Custody.SubscriptionProviderTimeout,
	}, db)
}

//nolint:ireturn
func NewConfirmService(cfg config.Server, db *sql.DB, chainsService ChainsService, metricsService *metrics.Service) ConfirmService {
	return confirm.NewService(confirm.Config{
		ConfirmTimeout: cfg.Custody.DepositConfirmTimeout,
	}, db, chainsService, metricsService)
}

//nolint:ireturn
func NewSweepService(db *sql.DB, chainsService ChainsService, signerService signer.Service, metricsService *metrics.Service) SweepService {
	return sweep.NewService(db, chainsService, signerService, metricsService)
}

//nolint:ireturn
func NewWithdrawService(cfg config.Server, db *sql.DB, chainsService ChainsService, hotWalletService HotWalletService, signerService signer.Service, metricsService *metrics.Service) WithdrawService {
	return withdraw.NewService(withdraw.Config{
		RetryAttempts: cfg.Custody.WithdrawRetryAttempts,
		RetryDelay:    cfg.Custody.WithdrawRetryDelay,
	}, db, chainsService, hotWalletService, signerService, metricsService)
}

//nolint:ireturn
func NewHotWalletService(db *sql.DB, chainsService ChainsService, vault *keycustody.Vault) HotWalletService {
	return hotwallet.NewService(db, chainsService, vault)
}

func NewHotWalletMonitor(cfg config.Server, db *sql.DB, chainsService ChainsService, m *mailer.Mailer, metricsService *metrics.Service) *hotwallet.Monitor {
	return hotwallet.NewMonitor(db, chainsService, m, cfg.Custody.AlertRecipients, metricsService)
}

//nolint:ireturn
func NewAggregateService(db *sql.DB, chainsService ChainsService) AggregateService {
	return aggregate.NewService(db, chainsService)
}

// NoTest is wire's stand-in for the optional *testing.T of InitNewServerWithDB.
func NoTest() []*testing.T {
	return nil
}
