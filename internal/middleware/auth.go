package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "spudhouse/internal/errors"
)

// RequireUser rejects requests without an authenticated session.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if SessionFrom(c) == nil {
				he := apperrors.MapErrorToHTTP(apperrors.ErrNotAuthenticated)
				return c.JSON(he.StatusCode, he.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects unauthenticated requests with 401 and authenticated
// non-admin requests with 403. The admin flag is the one cached in the
// session at login.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFrom(c)
			if sess == nil {
				he := apperrors.MapErrorToHTTP(apperrors.ErrNotAuthenticated)
				return c.JSON(he.StatusCode, he.ToErrorResponse())
			}
			if !sess.IsAdmin {
				he := apperrors.MapErrorToHTTP(apperrors.ErrAdminRequired)
				return c.JSON(he.StatusCode, he.ToErrorResponse())
			}
			return next(c)
		}
	}
}
