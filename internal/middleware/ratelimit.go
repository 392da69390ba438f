package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "spudhouse/internal/errors"
	"spudhouse/internal/ratelimit"
)

// RateLimit applies a limiter keyed by client address and route path, so
// each sensitive route gets its own counter per client.
func RateLimit(limiter ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP() + "|" + c.Path()
			if !limiter.Allow(key) {
				he := apperrors.MapErrorToHTTP(apperrors.ErrRateLimited)
				return c.JSON(he.StatusCode, he.ToErrorResponse())
			}
			return next(c)
		}
	}
}
