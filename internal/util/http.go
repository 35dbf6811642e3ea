package util

import (
	"bytes"
	"io"
	"net/http"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/tesserex/custody/internal/api/httperrors"
	"github.com/tesserex/custody/internal/types"
)

// BindAndValidateBody binds the request, parsing **only** its body (depending on the `Content-Type` request header)
// and performing validation as enforced by the Swagger schema associated with the provided type.
//
// Note: In contrast to BindAndValidate, this method does not restore the body after binding.
// Thus, calling this method multiple times or after BindAndValidate will fail.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder := c.Echo().Binder.(*echo.DefaultBinder) //nolint:errcheck

	if err := binder.BindBody(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// BindAndValidatePathAndQueryParams binds the request, parsing **only** its path **and** query params
// and performing validation as enforced by the Swagger schema associated with the provided type.
func BindAndValidatePathAndQueryParams(c echo.Context, v runtime.Validatable) error {
	binder := c.Echo().Binder.(*echo.DefaultBinder) //nolint:errcheck

	if err := binder.BindPathParams(c, v); err != nil {
		return err
	}

	if err := binder.BindQueryParams(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// BindAndValidatePathParams binds the request, parsing **only** its path params
// and performing validation as enforced by the Swagger schema associated with the provided type.
func BindAndValidatePathParams(c echo.Context, v runtime.Validatable) error {
	binder := c.Echo().Binder.(*echo.DefaultBinder) //nolint:errcheck

	if err := binder.BindPathParams(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// BindAndValidate binds the request, parsing path+query+body and validating these structs.
//
// Deprecated: Use the more specific BindAndValidateBody, BindAndValidatePathAndQueryParams or
// BindAndValidatePathParams functions instead, as those do not interfere with each other.
func BindAndValidate(c echo.Context, v runtime.Validatable, vs ...runtime.Validatable) error {
	var reqBody []byte

	if c.Request().Body != nil {
		var err error

		reqBody, err = io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}
	}

	if err := restoreBindAndValidate(c, reqBody, v); err != nil {
		return err
	}

	for _, vv := range vs {
		if err := restoreBindAndValidate(c, reqBody, vv); err != nil {
			return err
		}
	}

	return nil
}

func restoreBindAndValidate(c echo.Context, reqBody []byte, v runtime.Validatable) error {
	if reqBody != nil {
		c.Request().Body = io.NopCloser(bytes.NewReader(reqBody))
	}

	if err := c.Bind(v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates the response payload against its schema before
// writing it out, ensuring we never emit payloads we would reject as input.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		return err
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		switch ee := err.(type) {
		case *openapierrors.CompositeError:
			LogFromEchoContext(c).Debug().Errs("validation_errors", ee.Errors).Msg("Payload did match schema, returning HTTP validation error")

			valErrs := formatValidationErrors(ee)

			return httperrors.NewHTTPValidationError(http.StatusBadRequest, httperrors.HTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), valErrs)
		case *openapierrors.Validation:
			LogFromEchoContext(c).Debug().AnErr("validation_error", ee).Msg("Payload did match schema, returning HTTP validation error")

			valErrs := []*types.HTTPValidationErrorDetail{
				{
					Key:   &ee.Name,
					In:    &ee.In,
					Error: swag.String(ee.Error()),
				},
			}

			return httperrors.NewHTTPValidationError(http.StatusBadRequest, httperrors.HTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), valErrs)
		default:
			LogFromEchoContext(c).Error().Err(err).Msg("Failed to validate payload, returning generic HTTP error")
			return err
		}
	}

	return nil
}

func formatValidationErrors(err *openapierrors.CompositeError) []*types.HTTPValidationErrorDetail {
	valErrs := make([]*types.HTTPValidationErrorDetail, 0, len(err.Errors))

	for _, e := range err.Errors {
		switch ee := e.(type) {
		case *openapierrors.CompositeError:
			valErrs = append(valErrs, formatValidationErrors(ee)...)
		case *openapierrors.Validation:
			valErrs = append(valErrs, &types.HTTPValidationErrorDetail{
				Key:   &ee.Name,
				In:    &ee.In,
				Error: swag.String(ee.Error()),
			})
		default:
			valErrs = append(valErrs, &types.HTTPValidationErrorDetail{
				Error: swag.String(e.Error()),
			})
		}
	}

	return valErrs
}
