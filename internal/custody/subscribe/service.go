package subscribe

import (
	"context"
	"database/sql"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/util"
)

// Service keeps the node-side watch list in sync with our deposit addresses.
// A subscription row means the chain node (or indexer) pushes transfers that
// touch the address to our webhook.
type Service interface {
	// EnsureSubscription registers the address for inbound transfer
	// notifications. Idempotent per (chain, address).
	EnsureSubscription(ctx context.Context, chainID int, address string) (*models.Subscription, error)

	// ListActiveSubscriptions returns the active watch list for a chain.
	ListActiveSubscriptions(ctx context.Context, chainID int) (models.SubscriptionSlice, error)

	// DeactivateSubscription stops notifications for the address.
	DeactivateSubscription(ctx context.Context, chainID int, address string) error
}

type Config struct {
	// ProviderURL is the chain-indexing provider's subscription endpoint.
	// Empty means no external provider, the watch list is kept locally only.
	ProviderURL string

	// ProviderTimeout caps a single provider request.
	ProviderTimeout time.Duration
}

type service struct {
	db       *sql.DB
	provider *providerClient
}

//nolint:ireturn
func NewService(config Config, db *sql.DB) Service {
	s := &service{db: db}

	if config.ProviderURL != "" {
		s.provider = newProviderClient(config.ProviderURL, config.ProviderTimeout)
	}

	return s
}

func (s *service) EnsureSubscription(ctx context.Context, chainID int, address string) (*models.Subscription, error) {
	subscription, err := s.ensureRow(ctx, chainID, address)
	if err != nil {
		return nil, err
	}

	if err := s.ensureProviderRegistration(ctx, subscription); err != nil {
		// the local row stays active, a replayed call retries the provider
		return nil, err
	}

	return subscription, nil
}

// ensureRow makes sure an active local subscription row exists for the
// address.
func (s *service) ensureRow(ctx context.Context, chainID int, address string) (*models.Subscription, error) {
	log := util.LogFromContext(ctx)

	existing, err := s.find(ctx, chainID, address)
	if err == nil {
		if existing.IsActive {
			return existing, nil
		}

		existing.IsActive = true
		if _, err := existing.Update(ctx, s.db, boil.Whitelist(
			models.SubscriptionColumns.IsActive,
			models.SubscriptionColumns.UpdatedAt,
		)); err != nil {
			return nil, errors.Wrap(err, "failed to reactivate subscription")
		}

		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrap(err, "failed to check for subscription")
	}

	subscription := &models.Subscription{
		ID:       uuid.New().String(),
		ChainID:  chainID,
		Address:  address,
		IsActive: true,
	}

	if err := subscription.Insert(ctx, s.db, boil.Infer()); err != nil {
		// concurrent EnsureSubscription for the same address
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return s.find(ctx, chainID, address)
		}
		return nil, errors.Wrap(err, "failed to insert subscription")
	}

	log.Info().
		Int("chain_id", chainID).
		Str("address", address).
		Msg("Subscribed address for transfer notifications")

	return subscription, nil
}

// ensureProviderRegistration puts the address on the external provider's
// watch list once and records the id the provider assigned. A row that
// already carries a provider id is done.
func (s *service) ensureProviderRegistration(ctx context.Context, subscription *models.Subscription) error {
	if s.provider == nil || subscription.ProviderSubscriptionID.Valid {
		return nil
	}

	log := util.LogFromContext(ctx)

	providerID, err := s.provider.EnsureSubscription(ctx, subscription.ChainID, subscription.Address)
	if err != nil {
		return errors.Wrap(err, "failed to register subscription with provider")
	}

	subscription.ProviderSubscriptionID = null.StringFrom(providerID)

	if _, err := subscription.Update(ctx, s.db, boil.Whitelist(
		models.SubscriptionColumns.ProviderSubscriptionID,
		models.SubscriptionColumns.UpdatedAt,
	)); err != nil {
		return errors.Wrap(err, "failed to record provider subscription id")
	}

	log.Info().
		Int("chain_id", subscription.ChainID).
		Str("address", subscription.Address).
		Str("provider_subscription_id", providerID).
		Msg("Registered address with chain-indexing provider")

	return nil
}

func (s *service) ListActiveSubscriptions(ctx context.Context, chainID int) (models.SubscriptionSlice, error) {
	subscriptions, err := models.Subscriptions(
		models.SubscriptionWhere.ChainID.EQ(chainID),
		models.SubscriptionWhere.IsActive.EQ(true),
		qm.OrderBy(models.SubscriptionColumns.CreatedAt+" ASC"),
	).All(ctx, s.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return subscriptions, nil
}

func (s *service) DeactivateSubscription(ctx context.Context, chainID int, address string) error {
	subscription, err := s.find(ctx, chainID, address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return errors.Wrap(err, "failed to load subscription")
	}

	subscription.IsActive = false

	if _, err := subscription.Update(ctx, s.db, boil.Whitelist(
		models.SubscriptionColumns.IsActive,
		models.SubscriptionColumns.UpdatedAt,
	)); err != nil {
		return errors.Wrap(err, "failed to deactivate subscription")
	}

	return nil
}

func (s *service) find(ctx context.Context, chainID int, address string) (*models.Subscription, error) {
	return models.Subscriptions(
		models.SubscriptionWhere.ChainID.EQ(chainID),
		models.SubscriptionWhere.Address.EQ(address),
	).One(ctx, s.db)
}
