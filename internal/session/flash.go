package session

import (
	"crypto/hmac"
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
)

// FlashCookieName holds pending notices across one redirect.
const FlashCookieName = "ims_flash"

// flashContextKey carries notices queued during the current request so they
// are visible to a render in the same request, not only after a redirect.
const flashContextKey = "session.flashes"

// Flash is a one-shot notice rendered on the next page load.
// Category is one of "success", "warning", "danger", "info".
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// AddFlash queues a notice for the next rendered page. Flashes use their own
// signed cookie rather than the Redis session so they also work for
// unauthenticated requests (e.g. the login-required redirect).
func (m *Manager) AddFlash(c *gin.Context, message, category string) {
	flashes := append(m.pending(c), Flash{Message: message, Category: category})
	c.Set(flashContextKey, flashes)

	// Persist for the redirect case; a same-request render reads the
	// context copy instead.
	payload, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	c.SetCookie(FlashCookieName, encoded+"."+m.sign(encoded), 300, "/", "", m.secure, true)
}

// PopFlashes returns all pending notices and clears the cookie.
func (m *Manager) PopFlashes(c *gin.Context) []Flash {
	flashes := m.pending(c)
	if len(flashes) > 0 {
		c.Set(flashContextKey, []Flash(nil))
		c.SetCookie(FlashCookieName, "", -1, "/", "", m.secure, true)
	}
	return flashes
}

// pending merges notices queued earlier in this request with the ones carried
// over on the request cookie. The context copy wins once set, since AddFlash
// seeds it from the cookie.
func (m *Manager) pending(c *gin.Context) []Flash {
	if v, ok := c.Get(flashContextKey); ok {
		return v.([]Flash)
	}
	return m.readFlashes(c)
}

func (m *Manager) readFlashes(c *gin.Context) []Flash {
	raw, err := c.Cookie(FlashCookieName)
	if err != nil {
		return nil
	}
	encoded, sig, found := strings.Cut(raw, ".")
	if !found || !hmac.Equal([]byte(sig), []byte(m.sign(encoded))) {
		return nil
	}
	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(payload, &flashes); err != nil {
		return nil
	}
	return flashes
}
