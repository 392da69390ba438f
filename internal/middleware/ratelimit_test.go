package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// stubLimiter answers a fixed verdict and records the keys it saw.
type stubLimiter struct {
	allow bool
	keys  []string
}

func (s *stubLimiter) Allow(key string) bool {
	s.keys = append(s.keys, key)
	return s.allow
}

func TestRateLimit(t *testing.T) {
	e := echo.New()

	run := func(limiter *stubLimiter) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "1.2.3.4:5678"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/login")
		err := RateLimit(limiter)(okHandler)(c)
		assert.NoError(t, err)
		return rec
	}

	allowed := &stubLimiter{allow: true}
	rec := run(allowed)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"1.2.3.4|/api/login"}, allowed.keys)

	denied := &stubLimiter{allow: false}
	rec = run(denied)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
