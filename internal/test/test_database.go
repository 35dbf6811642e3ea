package test

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aarondl/sqlboiler/v4/boil"
	integresql "github.com/allaboutapps/integresql-client-go"
	"github.com/allaboutapps/integresql-client-go/pkg/util"
	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"

	"github.com/tesserex/custody/internal/config"
	"github.com/tesserex/custody/internal/data/fixtures"
	pUtil "github.com/tesserex/custody/internal/util"
)

var (
	client *integresql.Client

	// tracks template testDatabase initialization
	doOnce sync.Once

	migDir   = filepath.Join(pUtil.GetProjectRootDir(), "migrations")
	fixFile  = filepath.Join(pUtil.GetProjectRootDir(), "internal", "data", "fixtures", "fixtures.go")
	selfFile = filepath.Join(pUtil.GetProjectRootDir(), "internal", "test", "test_database.go")
)

// WithTestDatabase returns an isolated test database based on the current
// migrations and fixtures.
func WithTestDatabase(t *testing.T, closure func(db *sql.DB)) {
	t.Helper()

	withTestDatabaseConfig(t, func(db *sql.DB, _ config.Database) {
		t.Helper()
		closure(db)
	})
}

// withTestDatabaseConfig additionally hands the connection parameters of the
// obtained test database to the closure, so a test server config can point at
// the very same database.
func withTestDatabaseConfig(t *testing.T, closure func(db *sql.DB, cfg config.Database)) {
	t.Helper()

	// template initialization must not inherit a test deadline
	ctx := context.Background()

	doOnce.Do(func() {
		t.Helper()
		initializeTestDatabaseTemplate(ctx, t)
	})

	testDatabase, err := client.GetTestDatabase(ctx, hash)
	if err != nil {
		t.Fatalf("Failed to obtain test database: %v", err)
	}

	connectionString := testDatabase.Config.ConnectionString()

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		t.Fatalf("Failed to setup test database for connectionString %q: %v", connectionString, err)
	}

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("Failed to ping test database for connectionString %q: %v", connectionString, err)
	}

	t.Logf("WithTestDatabase: %q", testDatabase.Config.Database)

	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	}()

	closure(db, config.Database{
		Host:     testDatabase.Config.Host,
		Port:     testDatabase.Config.Port,
		Username: testDatabase.Config.Username,
		Password: testDatabase.Config.Password,
		Database: testDatabase.Config.Database,
	})
}

// hash of all migrations and fixtures, used to discriminate the template database
var hash string

// initializeTestDatabaseTemplate runs migrations and inserts fixtures exactly
// once per test binary, all subsequent test databases are cloned from the
// resulting template.
func initializeTestDatabaseTemplate(ctx context.Context, t *testing.T) {
	t.Helper()

	initTestDatabaseHash(t)

	initIntegresClient(t)

	if err := client.SetupTemplateWithDBClient(ctx, hash, func(db *sql.DB) error {
		t.Helper()

		if err := applyMigrations(t, db); err != nil {
			return err
		}

		return insertFixtures(ctx, t, db)
	}); err != nil {
		// This error is exceptionally fatal as all subsequent tests depend on
		// a properly setup template database.
		t.Fatalf("Failed to setup template database for hash %q: %v", hash, err)
	}
}

func initIntegresClient(t *testing.T) {
	t.Helper()

	c, err := integresql.DefaultClientFromEnv()
	if err != nil {
		t.Fatalf("Failed to create integresql-client: %v", err)
	}

	client = c
}

func initTestDatabaseHash(t *testing.T) {
	t.Helper()

	h, err := util.GetTemplateHash(migDir, fixFile, selfFile)
	if err != nil {
		t.Fatalf("Failed to get template hash: %#v", err)
	}

	hash = h
}

func applyMigrations(t *testing.T, db *sql.DB) error {
	t.Helper()

	migrations := &migrate.FileMigrationSource{Dir: migDir}
	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return err
	}

	t.Logf("Applied %d migrations for hash %q", n, hash)

	return nil
}

func insertFixtures(ctx context.Context, t *testing.T, db *sql.DB) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	inserts := fixtures.Inserts()
	for _, fixture := range inserts {
		if err := fixture.Insert(ctx, db, boil.Infer()); err != nil {
			return err
		}
	}

	t.Logf("Inserted %d fixtures for hash %q", len(inserts), hash)

	return nil
}
