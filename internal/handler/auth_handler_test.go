package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"spudhouse/internal/middleware"
	"spudhouse/internal/session"
)

// memoryKV is an in-memory session backend for handler tests.
type memoryKV struct {
	data map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (kv *memoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := kv.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (kv *memoryKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	kv.data[key] = value
	return nil
}

func (kv *memoryKV) Delete(ctx context.Context, key string) error {
	delete(kv.data, key)
	return nil
}

func TestAuthHandler_CSRFToken(t *testing.T) {
	store := session.NewStore(newMemoryKV())
	sess, err := store.Create(context.Background(), 1, "spudfan", false)
	assert.NoError(t, err)

	h := NewAuthHandler(nil, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/csrf-token", nil)
	req.AddCookie(session.Cookie(sess.ID, 3600))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, middleware.LoadSession(store)(h.CSRFToken)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// The browser scripts read data.csrfToken.
	assert.Len(t, body["csrfToken"], 64)
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("destroys the session named by the cookie", func(t *testing.T) {
		store := session.NewStore(newMemoryKV())
		sess, err := store.Create(context.Background(), 1, "spudfan", false)
		assert.NoError(t, err)

		h := NewAuthHandler(nil, store)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		req.AddCookie(session.Cookie(sess.ID, 3600))
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, h.Logout(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		gone, err := store.Get(context.Background(), sess.ID)
		assert.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("succeeds without any session", func(t *testing.T) {
		store := session.NewStore(newMemoryKV())
		h := NewAuthHandler(nil, store)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, h.Logout(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		expired := false
		for _, ck := range rec.Result().Cookies() {
			if ck.Name == session.CookieName && ck.MaxAge < 0 {
				expired = true
			}
		}
		assert.True(t, expired, "logout should expire the session cookie")
	})
}
