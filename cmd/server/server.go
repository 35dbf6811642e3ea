package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/api/router"
	"github.com/tesserex/custody/internal/config"
	"github.com/tesserex/custody/internal/util"
)

const shutdownTimeout = 30 * time.Second

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the stateless RESTful JSON server and its custody workers.
Requires configuration through ENV and a running PostgreSQL database.`,
		Run: func(cmd *cobra.Command, _ []string) {
			runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) {
	cfg := config.DefaultServiceConfigFromEnv()

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(util.LogLevelFromString(cfg.Logger.Level))

	if cfg.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		})
	}

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	// the keystore must be unlocked before any worker derives or signs
	if err := unlockKeystore(ctx, s); err != nil {
		log.Fatal().Err(err).Msg("Failed to unlock keystore")
	}

	router.Init(s)

	go func() {
		if err := s.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info().Msg("Server closed")
			} else {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}
	}()

	workerCtx, cancelWorkers := context.WithCancel(ctx)
	s.StartWorkers(workerCtx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
		for _, err := range errs {
			log.Error().Err(err).Msg("Error while shutting down server")
		}

		os.Exit(1)
	}
}
