package command

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/config"
	"github.com/tesserex/custody/internal/util"
)

// ServerCb is the callback executed with a fully initialized server.
type ServerCb func(ctx context.Context, s *api.Server) error

// WithServer initializes a server instance (including its database connection) according
// to the provided config, executes the callback and shuts the server down again.
// Intended for CLI subcommands that need server components without serving HTTP.
func WithServer(ctx context.Context, cfg config.Server, cb ServerCb) error {
	zerolog.SetGlobalLevel(util.LogLevelFromString(cfg.Logger.Level))

	if cfg.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		})
	}

	s, err := api.InitNewServer(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize server")
	}

	defer func() {
		if errs := s.Shutdown(ctx); len(errs) > 0 {
			for _, err := range errs {
				log.Error().Err(err).Msg("Error while shutting down server")
			}
		}
	}()

	return cb(ctx, s)
}

// NewSubcommandGroup returns a command that only groups subcommands and prints
// its help when called without one.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use: use,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				log.Error().Err(err).Msg("Failed to print help")
			}

			os.Exit(0)
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}
