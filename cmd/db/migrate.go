package db

import (
	"database/sql"
	"path/filepath"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"

	"github.com/tesserex/custody/internal/config"
	"github.com/tesserex/custody/internal/util"
)

func newMigrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Executes all database migrations",
		Long:  `Applies all pending database migrations from the migrations directory.`,
		Run: func(_ *cobra.Command, _ []string) {
			n, err := applyMigrations()
			if err != nil {
				log.Fatal().Err(err).Msg("Error while applying migrations")
			}

			log.Info().Int("appliedMigrations", n).Msg("Applied migrations")
		},
	}
}

func applyMigrations() (int, error) {
	cfg := config.DefaultServiceConfigFromEnv()

	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return 0, err
	}
	defer db.Close()

	migrations := &migrate.FileMigrationSource{
		Dir: filepath.Join(util.GetProjectRootDir(), "migrations"),
	}

	return migrate.Exec(db, "postgres", migrations, migrate.Up)
}
