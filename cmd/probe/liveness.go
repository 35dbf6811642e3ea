package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tesserex/custody/internal/config"
)

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs the liveness probe",
		Long: `Probes the /-/healthy management endpoint of the local server.
Exits non-zero if the server reports itself unhealthy.`,
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Error while parsing flags")
			}

			runLiveness(cmd.Context(), verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output")

	return cmd
}

func runLiveness(ctx context.Context, verbose bool) {
	cfg := config.DefaultServiceConfigFromEnv()

	ctx, cancel := context.WithTimeout(ctx, cfg.Management.LivenessTimeout)
	defer cancel()

	probeURL := fmt.Sprintf("http://localhost%s/-/healthy?mgmt-secret=%s", cfg.Echo.ListenAddress, url.QueryEscape(cfg.Management.Secret))

	body, status, err := probeEndpoint(ctx, probeURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Liveness probe failed")
	}

	if verbose {
		fmt.Println(body)
	}

	if status != http.StatusOK {
		os.Exit(1)
	}
}

func probeEndpoint(ctx context.Context, probeURL string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		return "", 0, err
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", res.StatusCode, err
	}

	return string(body), res.StatusCode, nil
}
