package router

import (
	"errors"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api/httperrors"
	"github.com/tesserex/custody/internal/types"
	"github.com/tesserex/custody/internal/util"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

// HTTPErrorHandlerWithConfig maps every error bubbling out of a handler onto
// the public error envelope. Internal details are only written to the logs
// when hiding is enabled.
func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var code int
		var he error

		var httpError *httperrors.HTTPError
		var httpValidationError *httperrors.HTTPValidationError
		var echoHTTPError *echo.HTTPError

		switch {
		case errors.As(err, &httpError):
			code = int(*httpError.Code)

			if httpError.Internal != nil {
				if config.HideInternalServerErrorDetails {
					util.LogFromEchoContext(c).Error().Err(httpError.Internal).Msg("Internal server error details hidden from response")
					httpError.Internal = nil
				}
			}

			he = httpError
		case errors.As(err, &httpValidationError):
			code = int(*httpValidationError.Code)
			he = httpValidationError
		case errors.As(err, &echoHTTPError):
			code = echoHTTPError.Code

			msg, ok := echoHTTPError.Message.(string)
			if !ok {
				msg = http.StatusText(echoHTTPError.Code)
			}

			if echoHTTPError.Internal != nil && !config.HideInternalServerErrorDetails {
				msg = msg + ", " + echoHTTPError.Internal.Error()
			}

			he = &httperrors.HTTPError{
				PublicHTTPError: types.PublicHTTPError{
					Code:  swag.Int64(int64(echoHTTPError.Code)),
					Title: swag.String(msg),
					Type:  swag.String(httperrors.HTTPErrorTypeGeneric),
				},
			}
		default:
			code = http.StatusInternalServerError

			title := http.StatusText(http.StatusInternalServerError)
			if !config.HideInternalServerErrorDetails {
				title = err.Error()
			} else {
				util.LogFromEchoContext(c).Error().Err(err).Msg("Internal server error details hidden from response")
			}

			he = &httperrors.HTTPError{
				PublicHTTPError: types.PublicHTTPError{
					Code:  swag.Int64(int64(code)),
					Title: swag.String(title),
					Type:  swag.String(httperrors.HTTPErrorTypeGeneric),
				},
			}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, he)
		}

		if err != nil {
			util.LogFromEchoContext(c).Error().Err(err).Msg("Failed to write error response")
		}
	}
}
