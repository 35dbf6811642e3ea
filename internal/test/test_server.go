package test

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/api/router"
	"github.com/tesserex/custody/internal/config"
)

// TestMnemonic is a well-known BIP39 test vector, used to unlock the vault in
// tests that exercise key derivation or signing.
const TestMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// WithTestServer returns a fully configured server (using the default server
// config) bound to an isolated test database. Background workers are not
// started, tests drive the services directly or via HTTP.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	defaultConfig := config.DefaultServiceConfigFromEnv()
	WithTestServerConfigurable(t, defaultConfig, closure)
}

// WithTestServerConfigurable returns a fully configured server with the
// specified config, bound to an isolated test database.
func WithTestServerConfigurable(t *testing.T, cfg config.Server, closure func(s *api.Server)) {
	t.Helper()

	withTestDatabaseConfig(t, func(db *sql.DB, databaseConfig config.Database) {
		t.Helper()
		execClosureNewTestServer(context.Background(), t, cfg, db, databaseConfig, closure)
	})
}

// Executes closure on a new test server with a pre-provided database
func execClosureNewTestServer(ctx context.Context, t *testing.T, config config.Server, db *sql.DB, databaseConfig config.Database, closure func(s *api.Server)) {
	t.Helper()

	// https://stackoverflow.com/questions/43424787/how-to-use-next-available-port-in-http-listenandserve
	// You may use port 0 to indicate you're not specifying an exact port but you want a free, available port selected by the system
	config.Echo.ListenAddress = ":0"

	// further services built by the injector (resolving via config.Database)
	// must hit the very same test database
	config.Database = databaseConfig

	s, err := api.InitNewServerWithDB(config, db, t)
	if err != nil {
		t.Fatalf("Failed to initialize server: %v", err)
	}

	router.Init(s)

	closure(s)

	// echo is managed and should close automatically after running the test
	if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("failed to shutdown server: %v", err)
	}
}
