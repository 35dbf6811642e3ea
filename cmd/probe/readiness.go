package probe

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/tesserex/custody/internal/config"
)

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs the readiness probe",
		Long: `Checks that all configured writeable paths are accessible and
probes the /-/ready management endpoint of the local server.`,
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Error while parsing flags")
			}

			runReadiness(cmd.Context(), verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output")

	return cmd
}

func runReadiness(ctx context.Context, verbose bool) {
	cfg := config.DefaultServiceConfigFromEnv()

	ctx, cancel := context.WithTimeout(ctx, cfg.Management.ReadinessTimeout)
	defer cancel()

	// cheap local check before hitting the server
	for _, path := range cfg.Management.ProbeWriteablePathsAbs {
		if err := unix.Access(path, unix.W_OK); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Readiness probe failed, path is not writeable")
		}

		if verbose {
			fmt.Printf("%s writeable.\n", path)
		}
	}

	probeURL := fmt.Sprintf("http://localhost%s/-/ready", cfg.Echo.ListenAddress)

	body, status, err := probeEndpoint(ctx, probeURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Readiness probe failed")
	}

	if verbose {
		fmt.Println(body)
	}

	if status != http.StatusOK {
		os.Exit(1)
	}
}
