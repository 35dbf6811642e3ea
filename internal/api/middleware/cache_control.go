package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CacheControlDirective is the Cache-Control header applied to every response
// that did not set one itself. An API dealing in balances must never be served
// stale from an intermediate cache.
const CacheControlDirective = "no-store, max-age=0"

type CacheControlConfig struct {
	Skipper middleware.Skipper
}

var DefaultCacheControlConfig = CacheControlConfig{
	Skipper: middleware.DefaultSkipper,
}

// CacheControl with default config, see CacheControlWithConfig
func CacheControl() echo.MiddlewareFunc {
	return CacheControlWithConfig(DefaultCacheControlConfig)
}

// CacheControlWithConfig returns a middleware setting a restrictive default
// Cache-Control header on responses lacking one.
func CacheControlWithConfig(config CacheControlConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultCacheControlConfig.Skipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			c.Response().Before(func() {
				header := c.Response().Header()
				if header.Get(echo.HeaderCacheControl) == "" {
					header.Set(echo.HeaderCacheControl, CacheControlDirective)
				}
			})

			return next(c)
		}
	}
}
