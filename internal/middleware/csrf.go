package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "spudhouse/internal/errors"
)

// HeaderCSRFToken is the header clients echo the session token in.
const HeaderCSRFToken = "X-CSRF-Token"

// csrfFormField is the form fallback for non-AJAX submissions.
const csrfFormField = "csrf_token"

// CSRF rejects state-changing requests whose token does not match the one
// stored in the session. Read-only methods pass through. Pre-auth routes
// (register, login, the reset flow) are exempt by not being behind this
// middleware at all: they have no session to hold a token yet.
func CSRF() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			sess := SessionFrom(c)
			if sess == nil {
				he := apperrors.MapErrorToHTTP(apperrors.ErrNotAuthenticated)
				return c.JSON(he.StatusCode, he.ToErrorResponse())
			}

			token := c.Request().Header.Get(HeaderCSRFToken)
			if token == "" {
				token = c.FormValue(csrfFormField)
			}

			if sess.CSRFToken == "" || token == "" ||
				subtle.ConstantTimeCompare([]byte(token), []byte(sess.CSRFToken)) != 1 {
				he := apperrors.MapErrorToHTTP(apperrors.ErrCSRFMismatch)
				return c.JSON(he.StatusCode, he.ToErrorResponse())
			}

			return next(c)
		}
	}
}
