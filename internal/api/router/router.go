package router

import (
	"net/http"
	"runtime"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/tesserex/custody/internal/api"
	"github.com/tesserex/custody/internal/api/handlers"
	"github.com/tesserex/custody/internal/api/middleware"
	"github.com/tesserex/custody/internal/util"

	// pprof handlers register themselves onto http.DefaultServeMux
	_ "net/http/pprof"
)

// Init sets up the echo instance, its middleware stack and all routes on the
// provided server.
func Init(s *api.Server) {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true

	s.Echo.HTTPErrorHandler = HTTPErrorHandlerWithConfig(HTTPErrorHandlerConfig{
		HideInternalServerErrorDetails: s.Config.Echo.HideInternalServerErrorDetails,
	})

	// ---
	// General middleware
	if s.Config.Echo.EnableTrailingSlashMiddleware {
		s.Echo.Pre(echoMiddleware.RemoveTrailingSlash())
	}

	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echoMiddleware.Recover())
	}

	if s.Config.Echo.EnableRequestIDMiddleware {
		s.Echo.Use(echoMiddleware.RequestID())
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Level:             util.LogLevelFromString(s.Config.Logger.RequestLevel),
			LogRequestBody:    s.Config.Logger.LogRequestBody,
			LogRequestHeader:  s.Config.Logger.LogRequestHeader,
			LogRequestQuery:   s.Config.Logger.LogRequestQuery,
			LogResponseBody:   s.Config.Logger.LogResponseBody,
			LogResponseHeader: s.Config.Logger.LogResponseHeader,
		}))
	}

	if s.Config.Echo.EnableCORSMiddleware {
		s.Echo.Use(echoMiddleware.CORS())
	}

	if s.Config.Echo.EnableCacheControlMiddleware {
		s.Echo.Use(middleware.CacheControl())
	}

	if s.Config.Echo.EnableSecureMiddleware {
		s.Echo.Use(echoMiddleware.SecureWithConfig(echoMiddleware.SecureConfig{
			XSSProtection:         s.Config.Echo.SecureMiddleware.XSSProtection,
			ContentTypeNosniff:    s.Config.Echo.SecureMiddleware.ContentTypeNosniff,
			XFrameOptions:         s.Config.Echo.SecureMiddleware.XFrameOptions,
			HSTSMaxAge:            s.Config.Echo.SecureMiddleware.HSTSMaxAge,
			HSTSExcludeSubdomains: s.Config.Echo.SecureMiddleware.HSTSExcludeSubdomains,
			ContentSecurityPolicy: s.Config.Echo.SecureMiddleware.ContentSecurityPolicy,
			CSPReportOnly:         s.Config.Echo.SecureMiddleware.CSPReportOnly,
			HSTSPreloadEnabled:    s.Config.Echo.SecureMiddleware.HSTSPreloadEnabled,
			ReferrerPolicy:        s.Config.Echo.SecureMiddleware.ReferrerPolicy,
		}))
	}

	s.Echo.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Registerer: s.Metrics.Registry,
	}))

	// ---
	// Optional pprof endpoints, guarded by the management secret by default
	if s.Config.Pprof.Enable {
		pprofAuthMiddleware := noopMiddleware

		if s.Config.Pprof.EnableManagementKeyAuth {
			pprofAuthMiddleware = mgmtSecretKeyAuth(s)
		}

		s.Echo.GET("/debug/pprof/*", echo.WrapHandler(http.DefaultServeMux), pprofAuthMiddleware)

		runtime.SetBlockProfileRate(s.Config.Pprof.RuntimeBlockProfileRate)
		runtime.SetMutexProfileFraction(s.Config.Pprof.RuntimeMutexProfileFraction)

		log.Warn().
			Str("endpoint", "/debug/pprof").
			Int("runtimeBlockProfileRate", s.Config.Pprof.RuntimeBlockProfileRate).
			Int("runtimeMutexProfileFraction", s.Config.Pprof.RuntimeMutexProfileFraction).
			Msg("Pprof http handlers are available, planning to expose this in production?")
	}

	s.Router = &api.Router{
		Root:       s.Echo.Group(""),
		Management: s.Echo.Group("/-"),
		APIV1:      s.Echo.Group("/api/v1"),
	}

	handlers.AttachAllRoutes(s)

	s.Router.Routes = s.Echo.Routes()
}

func noopMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return next(c)
	}
}

// mgmtSecretKeyAuth guards a route with the ?mgmt-secret= query parameter.
func mgmtSecretKeyAuth(s *api.Server) echo.MiddlewareFunc {
	return echoMiddleware.KeyAuthWithConfig(echoMiddleware.KeyAuthConfig{
		KeyLookup: "query:mgmt-secret",
		Validator: func(key string, _ echo.Context) (bool, error) {
			return key == s.Config.Management.Secret, nil
		},
	})
}
