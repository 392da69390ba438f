// Package session implements server-side sessions keyed by an opaque cookie
// identifier. Session state lives in Redis; the cookie carries only the ID.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	// CookieName is the session cookie set on login.
	CookieName = "spud_session"
	// TTL is the absolute session lifetime, refreshed on each save.
	TTL = 7 * 24 * time.Hour

	keyPrefix = "session:"
)

// Session is the server-side state for one logged-in browser. Username and
// IsAdmin are cached from the user row at login to avoid a lookup per
// request. CSRFToken is issued lazily.
type Session struct {
	ID        string `json:"-"`
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
	CSRFToken string `json:"csrf_token,omitempty"`
}

// KV is the key-value backend sessions are stored in.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Store persists sessions in a KV backend.
type Store struct {
	kv  KV
	ttl time.Duration
}

// NewStore creates a session store.
func NewStore(kv KV) *Store {
	return &Store{kv: kv, ttl: TTL}
}

// Create starts a new session for a user and returns it with a fresh ID.
func (s *Store) Create(ctx context.Context, userID uint, username string, isAdmin bool) (*Session, error) {
	sess := &Session{
		ID:       newSessionID(),
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
	}
	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get loads the session for an ID. Returns nil without error when the
// session does not exist or has expired.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, nil
	}
	data, err := s.kv.Get(ctx, keyPrefix+id)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	sess.ID = id
	return &sess, nil
}

// Save writes the session back and refreshes its TTL.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.kv.Set(ctx, keyPrefix+sess.ID, payload, s.ttl)
}

// Destroy removes a session. Destroying an absent session is not an error,
// so logout is idempotent.
func (s *Store) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.kv.Delete(ctx, keyPrefix+id)
}

// EnsureCSRFToken returns the session's CSRF token, issuing one if absent.
func (s *Store) EnsureCSRFToken(ctx context.Context, sess *Session) (string, error) {
	if sess.CSRFToken != "" {
		return sess.CSRFToken, nil
	}
	sess.CSRFToken = newCSRFToken()
	if err := s.Save(ctx, sess); err != nil {
		return "", err
	}
	return sess.CSRFToken, nil
}

// Cookie builds the session cookie for a session ID. A negative maxAge
// expires the cookie (logout).
func Cookie(id string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// newSessionID returns a 128-bit random identifier.
func newSessionID() string {
	return randomHex(16)
}

// newCSRFToken returns a 256-bit random token.
func newCSRFToken() string {
	return randomHex(32)
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("session: rand.Read: %v", err))
	}
	return hex.EncodeToString(buf)
}
