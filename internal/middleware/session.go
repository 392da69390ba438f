// Package middleware provides the request-time guards: session loading,
// auth/admin gates, the CSRF check, and rate limiting.
package middleware

import (
	"github.com/labstack/echo/v4"

	"spudhouse/internal/session"
)

const sessionKey = "spudhouse.session"

// LoadSession resolves the session cookie into a *session.Session and
// attaches it to the echo context. Requests without a valid session proceed
// with a nil session; the auth gates decide whether that is acceptable.
func LoadSession(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err == nil && cookie.Value != "" {
				sess, err := store.Get(c.Request().Context(), cookie.Value)
				if err != nil {
					c.Logger().Errorf("load session: %v", err)
				} else if sess != nil {
					c.Set(sessionKey, sess)
				}
			}
			return next(c)
		}
	}
}

// SessionFrom returns the request's session, or nil when unauthenticated.
func SessionFrom(c echo.Context) *session.Session {
	sess, _ := c.Get(sessionKey).(*session.Session)
	return sess
}
