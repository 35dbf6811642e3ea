package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tesserex/custody/internal/util"
)

type LoggerConfig struct {
	Skipper           middleware.Skipper
	Level             zerolog.Level
	LogRequestBody    bool
	LogRequestHeader  bool
	LogRequestQuery   bool
	LogResponseBody   bool
	LogResponseHeader bool
}

var DefaultLoggerConfig = LoggerConfig{
	Skipper: middleware.DefaultSkipper,
	Level:   zerolog.DebugLevel,
}

// Logger with default config, see LoggerWithConfig
func Logger() echo.MiddlewareFunc {
	return LoggerWithConfig(DefaultLoggerConfig)
}

// LoggerWithConfig returns a middleware that attaches a request-scoped zerolog
// logger (request id, method, path) to the request context and logs request
// and response at the configured level. Body and header logging are opt-in.
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultLoggerConfig.Skipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := log.With().
				Str("id", id).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			le := l.WithLevel(config.Level).
				Str("remote_ip", c.RealIP()).
				Str("host", req.Host)

			if config.LogRequestQuery {
				le = le.Str("query", req.URL.RawQuery)
			}

			if config.LogRequestHeader {
				le = le.Interface("req_header", req.Header)
			}

			if config.LogRequestBody && req.Body != nil {
				body, err := io.ReadAll(req.Body)
				if err != nil {
					return err
				}

				req.Body = io.NopCloser(bytes.NewReader(body))
				le = le.Bytes("req_body", body)
			}

			le.Msg("Request received")

			var resBody bytes.Buffer
			if config.LogResponseBody {
				mw := io.MultiWriter(c.Response().Writer, &resBody)
				c.Response().Writer = &bodyDumpResponseWriter{Writer: mw, ResponseWriter: c.Response().Writer}
			}

			// attach logger and request id to the request context so handlers
			// and services below pick them up via util.LogFromContext
			ctx := l.WithContext(req.Context())
			ctx = context.WithValue(ctx, util.CTXKeyRequestID, id)
			c.SetRequest(req.WithContext(ctx))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			res := c.Response()

			le = l.WithLevel(config.Level).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration", time.Since(start))

			if config.LogResponseHeader {
				le = le.Interface("res_header", res.Header())
			}

			if config.LogResponseBody {
				le = le.Bytes("res_body", resBody.Bytes())
			}

			le.Msg("Request handled")

			return err
		}
	}
}

type bodyDumpResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
