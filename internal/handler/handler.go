// Package handler contains the HTTP handlers. Handlers bind and validate
// request DTOs, call a service, and translate domain errors to JSON.
package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "spudhouse/internal/errors"
)

// fail maps a domain error to its HTTP response. Internal errors are logged
// server-side; the client sees only the generic message.
func fail(c echo.Context, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	if he.StatusCode >= 500 {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}
