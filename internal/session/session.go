// Package session implements the server-side session layer backing the auth
// gate: session payloads live in Redis under a random id, the browser cookie
// carries only the id plus an HMAC signature, and flash notices ride a
// separate signed cookie so they survive redirects.
package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CookieName is the session-id cookie set on login.
const CookieName = "ims_session"

// ErrNotFound is returned by stores when the session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Data is the authenticated identity carried by a session.
type Data struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Store persists session payloads keyed by session id.
type Store interface {
	Save(ctx context.Context, id string, data *Data, ttl time.Duration) error
	Load(ctx context.Context, id string) (*Data, error)
	Delete(ctx context.Context, id string) error
}

// Manager issues, resolves and destroys sessions for HTTP requests.
type Manager struct {
	store    Store
	secret   []byte
	lifetime time.Duration
	secure   bool
}

func NewManager(store Store, secret string, lifetime time.Duration, secure bool) *Manager {
	return &Manager{store: store, secret: []byte(secret), lifetime: lifetime, secure: secure}
}

// Lifetime reports the configured session TTL.
func (m *Manager) Lifetime() time.Duration { return m.lifetime }

// Start creates a new session for data and sets the signed cookie.
func (m *Manager) Start(c *gin.Context, data *Data) error {
	id := uuid.NewString()
	if err := m.store.Save(c.Request.Context(), id, data, m.lifetime); err != nil {
		return err
	}
	c.SetCookie(CookieName, m.encode(id), int(m.lifetime.Seconds()), "/", "", m.secure, true)
	return nil
}

// Current resolves the request's session. A missing cookie, a bad signature,
// or an expired server-side entry all yield ErrNotFound.
func (m *Manager) Current(c *gin.Context) (*Data, error) {
	raw, err := c.Cookie(CookieName)
	if err != nil {
		return nil, ErrNotFound
	}
	id, ok := m.decode(raw)
	if !ok {
		return nil, ErrNotFound
	}
	return m.store.Load(c.Request.Context(), id)
}

// Update overwrites the payload of the request's existing session, keeping
// the same id and resetting the TTL. Used when profile edits change the
// display name.
func (m *Manager) Update(c *gin.Context, data *Data) error {
	raw, err := c.Cookie(CookieName)
	if err != nil {
		return ErrNotFound
	}
	id, ok := m.decode(raw)
	if !ok {
		return ErrNotFound
	}
	return m.store.Save(c.Request.Context(), id, data, m.lifetime)
}

// Destroy removes the server-side session and clears the cookie.
func (m *Manager) Destroy(c *gin.Context) {
	if raw, err := c.Cookie(CookieName); err == nil {
		if id, ok := m.decode(raw); ok {
			_ = m.store.Delete(c.Request.Context(), id)
		}
	}
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}

// encode produces "<id>.<hex hmac-sha256(id)>".
func (m *Manager) encode(id string) string {
	return id + "." + m.sign(id)
}

// decode verifies the signature and returns the embedded id.
func (m *Manager) decode(raw string) (string, bool) {
	id, sig, found := strings.Cut(raw, ".")
	if !found || id == "" {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(m.sign(id))) {
		return "", false
	}
	return id, true
}

func (m *Manager) sign(payload string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
