package common

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/util"
)

// 521 is used by cloudflare to indicate the origin web server refused the
// connection, we reuse it for "initialized but not ready".
const statusNotReady = 521

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// getReadyHandler returns 200 when the server accepts traffic: all components
// are initialized and the database answers a ping within the readiness
// timeout. Unauthenticated, cheap by design.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.ReadinessTimeout)
		defer cancel()

		if !s.Ready() {
			return c.String(statusNotReady, "Not ready.")
		}

		if err := s.DB.PingContext(ctx); err != nil {
			util.LogFromContext(ctx).Warn().Err(err).Msg("Readiness probe failed to ping database")
			return c.String(statusNotReady, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
