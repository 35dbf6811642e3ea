package subscribe_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserex/custody/internal/custody/subscribe"
	"github.com/tesserex/custody/internal/data/fixtures"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/test"
)

// newProviderStub serves the chain-indexing provider's subscription endpoint
// and counts how often it is hit.
func newProviderStub(t *testing.T, calls *int64, failFirst bool) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(calls, 1)

		var body struct {
			ChainID int    `json:"chain_id"`
			Address string `json:"address"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotEmpty(t, body.Address)
		assert.NotZero(t, body.ChainID)

		if failFirst && n == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"subscription_id": "prov-sub-1",
			"status":          "active",
		})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestEnsureSubscriptionRegistersWithProvider(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		var calls int64
		srv := newProviderStub(t, &calls, false)

		s := subscribe.NewService(subscribe.Config{ProviderURL: srv.URL}, db)

		subscription, err := s.EnsureSubscription(ctx, f.ChainSepolia.ChainID, "0x1111111111111111111111111111111111111111")
		require.NoError(t, err)
		assert.True(t, subscription.IsActive)
		assert.Equal(t, "prov-sub-1", subscription.ProviderSubscriptionID.String)
		assert.EqualValues(t, 1, atomic.LoadInt64(&calls))

		// replay must neither duplicate the row nor hit the provider again
		again, err := s.EnsureSubscription(ctx, f.ChainSepolia.ChainID, "0x1111111111111111111111111111111111111111")
		require.NoError(t, err)
		assert.Equal(t, subscription.ID, again.ID)
		assert.Equal(t, "prov-sub-1", again.ProviderSubscriptionID.String)
		assert.EqualValues(t, 1, atomic.LoadInt64(&calls))
	})
}

func TestEnsureSubscriptionProviderFailureIsReplayable(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		var calls int64
		srv := newProviderStub(t, &calls, true)

		s := subscribe.NewService(subscribe.Config{ProviderURL: srv.URL}, db)

		_, err := s.EnsureSubscription(ctx, f.ChainSepolia.ChainID, "0x2222222222222222222222222222222222222222")
		require.Error(t, err)

		// the local row survives the provider outage without a provider id
		stored, err := models.Subscriptions(
			models.SubscriptionWhere.ChainID.EQ(f.ChainSepolia.ChainID),
			models.SubscriptionWhere.Address.EQ("0x2222222222222222222222222222222222222222"),
		).One(ctx, db)
		require.NoError(t, err)
		assert.True(t, stored.IsActive)
		assert.False(t, stored.ProviderSubscriptionID.Valid)

		subscription, err := s.EnsureSubscription(ctx, f.ChainSepolia.ChainID, "0x2222222222222222222222222222222222222222")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, subscription.ID)
		assert.Equal(t, "prov-sub-1", subscription.ProviderSubscriptionID.String)
		assert.EqualValues(t, 2, atomic.LoadInt64(&calls))
	})
}

func TestEnsureSubscriptionWithoutProvider(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		s := subscribe.NewService(subscribe.Config{}, db)

		subscription, err := s.EnsureSubscription(ctx, f.ChainSepolia.ChainID, "0x3333333333333333333333333333333333333333")
		require.NoError(t, err)
		assert.True(t, subscription.IsActive)
		assert.False(t, subscription.ProviderSubscriptionID.Valid)
	})
}

func TestDeactivateAndReactivateSubscription(t *testing.T) {
	test.WithTestDatabase(t, func(db *sql.DB) {
		ctx := t.Context()
		f := fixtures.Fixtures()

		s := subscribe.NewService(subscribe.Config{}, db)

		subscription, err := s.EnsureSubscription(ctx, f.ChainSepolia.ChainID, "0x4444444444444444444444444444444444444444")
		require.NoError(t, err)

		require.NoError(t, s.DeactivateSubscription(ctx, f.ChainSepolia.ChainID, "0x4444444444444444444444444444444444444444"))

		active, err := s.ListActiveSubscriptions(ctx, f.ChainSepolia.ChainID)
		require.NoError(t, err)
		for _, sub := range active {
			assert.NotEqual(t, subscription.ID, sub.ID)
		}

		again, err := s.EnsureSubscription(ctx, f.ChainSepolia.ChainID, "0x4444444444444444444444444444444444444444")
		require.NoError(t, err)
		assert.Equal(t, subscription.ID, again.ID)
		assert.True(t, again.IsActive)
	})
}
