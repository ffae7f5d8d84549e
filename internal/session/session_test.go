package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-session-signing"

func newTestManager() *Manager {
	return NewManager(NewMemoryStore(), testSecret, time.Hour, false)
}

func testContext(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// carryCookies copies Set-Cookie output of one response onto a new request,
// standing in for a browser redirect. Like a browser, the last Set-Cookie
// for a given name wins.
func carryCookies(t *testing.T, w *httptest.ResponseRecorder, req *http.Request) {
	t.Helper()
	latest := make(map[string]*http.Cookie)
	for _, c := range w.Result().Cookies() {
		latest[c.Name] = c
	}
	for _, c := range latest {
		if c.MaxAge >= 0 && c.Value != "" {
			req.AddCookie(c)
		}
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := &Data{UserID: 1, Username: "admin", Name: "Administrator", Role: "admin"}
	require.NoError(t, store.Save(ctx, "abc", data, time.Hour))

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, data, loaded)

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Load(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", &Data{UserID: 1}, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := store.Load(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStartAndCurrent(t *testing.T) {
	m := newTestManager()

	c1, w1 := testContext(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, m.Start(c1, &Data{UserID: 7, Username: "admin", Name: "Administrator"}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	carryCookies(t, w1, req)
	c2, _ := testContext(req)

	data, err := m.Current(c2)
	require.NoError(t, err)
	assert.Equal(t, uint(7), data.UserID)
	assert.Equal(t, "Administrator", data.Name)
}

func TestSessionRejectsTamperedCookie(t *testing.T) {
	m := newTestManager()

	c1, w1 := testContext(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, m.Start(c1, &Data{UserID: 7}))

	var raw string
	for _, ck := range w1.Result().Cookies() {
		if ck.Name == CookieName {
			raw = ck.Value
		}
	}
	require.NotEmpty(t, raw)

	// Flip the signature half of "<id>.<sig>".
	id, _, found := strings.Cut(raw, ".")
	require.True(t, found)
	forged := id + "." + strings.Repeat("0", 64)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: forged})
	c2, _ := testContext(req)

	_, err := m.Current(c2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionDestroy(t *testing.T) {
	m := newTestManager()

	c1, w1 := testContext(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, m.Start(c1, &Data{UserID: 7}))

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	carryCookies(t, w1, req)
	c2, _ := testContext(req)
	m.Destroy(c2)

	// The server-side entry is gone even if the browser kept the cookie.
	req2 := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	carryCookies(t, w1, req2)
	c3, _ := testContext(req2)
	_, err := m.Current(c3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFlashRoundTrip(t *testing.T) {
	m := newTestManager()

	c1, w1 := testContext(httptest.NewRequest(http.MethodPost, "/category/add", nil))
	m.AddFlash(c1, "Category added successfully!", "success")

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	carryCookies(t, w1, req)
	c2, _ := testContext(req)

	flashes := m.PopFlashes(c2)
	require.Len(t, flashes, 1)
	assert.Equal(t, "Category added successfully!", flashes[0].Message)
	assert.Equal(t, "success", flashes[0].Category)
}

func TestFlashVisibleInSameRequest(t *testing.T) {
	// A failed login renders the page directly instead of redirecting, so
	// the notice must surface without a cookie round trip.
	m := newTestManager()
	c, _ := testContext(httptest.NewRequest(http.MethodPost, "/login", nil))

	m.AddFlash(c, "Invalid username or password", "danger")

	flashes := m.PopFlashes(c)
	require.Len(t, flashes, 1)
	assert.Equal(t, "Invalid username or password", flashes[0].Message)
	assert.Equal(t, "danger", flashes[0].Category)

	// Consumed: a second pop in the same request returns nothing.
	assert.Empty(t, m.PopFlashes(c))
}

func TestFlashAccumulatesWithinRequest(t *testing.T) {
	m := newTestManager()
	c1, w1 := testContext(httptest.NewRequest(http.MethodPost, "/product/add", nil))

	m.AddFlash(c1, "Product added successfully!", "success")
	m.AddFlash(c1, "Stock adjusted successfully!", "success")

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	carryCookies(t, w1, req)
	c2, _ := testContext(req)

	flashes := m.PopFlashes(c2)
	require.Len(t, flashes, 2)
	assert.Equal(t, "Product added successfully!", flashes[0].Message)
	assert.Equal(t, "Stock adjusted successfully!", flashes[1].Message)
}

func TestFlashRejectsTamperedCookie(t *testing.T) {
	m := newTestManager()

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.AddCookie(&http.Cookie{Name: FlashCookieName, Value: "forged.payload"})
	c, _ := testContext(req)

	assert.Empty(t, m.PopFlashes(c))
}
