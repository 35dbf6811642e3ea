package common

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/util"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s), mgmtSecretKeyAuth(s))
}

// getHealthyHandler deeply probes the server: database ping plus a write test
// on every path the service must be able to write to. Guarded by the
// management secret as the probe is comparatively expensive.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.LivenessTimeout)
		defer cancel()

		var report strings.Builder

		if err := s.DB.PingContext(ctx); err != nil {
			util.LogFromContext(ctx).Warn().Err(err).Msg("Health probe failed to ping database")
			fmt.Fprintf(&report, "Database: %v\n", err)
			return c.String(statusNotReady, report.String()+"Not healthy.")
		}

		fmt.Fprintln(&report, "Database: OK")

		for _, p := range s.Config.Management.ProbeWriteablePathsAbs {
			touchfile := filepath.Join(p, s.Config.Management.ProbeWriteableTouchfile)

			if err := os.WriteFile(touchfile, []byte(time.Now().UTC().Format(time.RFC3339)), 0o644); err != nil {
				util.LogFromContext(ctx).Warn().Err(err).Str("path", p).Msg("Health probe failed to write touchfile")
				fmt.Fprintf(&report, "Writeable %q: %v\n", p, err)
				return c.String(statusNotReady, report.String()+"Not healthy.")
			}

			fmt.Fprintf(&report, "Writeable %q: OK\n", p)
		}

		return c.String(http.StatusOK, report.String()+"Healthy.")
	}
}

// mgmtSecretKeyAuth guards management routes with the ?mgmt-secret= query parameter.
func mgmtSecretKeyAuth(s *api.Server) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "query:mgmt-secret",
		Validator: func(key string, _ echo.Context) (bool, error) {
			return key == s.Config.Management.Secret, nil
		},
	})
}
