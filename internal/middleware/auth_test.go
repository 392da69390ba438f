package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"spudhouse/internal/session"
)

func runGate(t *testing.T, mw echo.MiddlewareFunc, sess *session.Session) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		c.Set(sessionKey, sess)
	}
	err := mw(okHandler)(c)
	assert.NoError(t, err)
	return rec
}

func TestRequireUser(t *testing.T) {
	rec := runGate(t, RequireUser(), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = runGate(t, RequireUser(), &session.Session{UserID: 1})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		sess     *session.Session
		wantCode int
	}{
		{"no session", nil, http.StatusUnauthorized},
		{"regular user", &session.Session{UserID: 1}, http.StatusForbidden},
		{"admin", &session.Session{UserID: 1, IsAdmin: true}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runGate(t, RequireAdmin(), tt.sess)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestSessionFrom_Empty(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Nil(t, SessionFrom(c))
}
