// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Toitw/sport-team-manager-sub000/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(NewMemoryStore(), &config.SessionConfig{
		CookieName: "session",
		MaxAge:     3600,
	})
	require.NoError(t, err)
	return m
}

func requestWithCookie(cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	return req
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	id := store.Create(42, time.Hour)
	assert.NotEmpty(t, id)

	userID, ok := store.Resolve(id)
	assert.True(t, ok)
	assert.EqualValues(t, 42, userID)

	_, ok = store.Resolve("no-such-session")
	assert.False(t, ok)

	store.Destroy(id)
	_, ok = store.Resolve(id)
	assert.False(t, ok)

	// Destroy is idempotent.
	store.Destroy(id)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()

	id := store.Create(42, -time.Second)
	_, ok := store.Resolve(id)
	assert.False(t, ok)
}

func TestMemoryStoreDistinctIDs(t *testing.T) {
	store := NewMemoryStore()
	assert.NotEqual(t, store.Create(1, time.Hour), store.Create(1, time.Hour))
}

func TestManagerRoundtrip(t *testing.T) {
	m := newTestManager(t)

	cookie, err := m.Create(42)
	require.NoError(t, err)

	assert.Equal(t, "session", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	// The cookie carries an opaque signed value, never the user ID.
	assert.NotContains(t, cookie.Value, "42")

	userID, ok := m.Resolve(requestWithCookie(cookie))
	assert.True(t, ok)
	assert.EqualValues(t, 42, userID)
}

func TestManagerResolveNoCookie(t *testing.T) {
	m := newTestManager(t)

	_, ok := m.Resolve(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestManagerResolveTamperedCookie(t *testing.T) {
	m := newTestManager(t)

	cookie, err := m.Create(42)
	require.NoError(t, err)
	cookie.Value += "x"

	_, ok := m.Resolve(requestWithCookie(cookie))
	assert.False(t, ok)
}

func TestManagerResolveForeignCookie(t *testing.T) {
	m := newTestManager(t)
	other := newTestManager(t)

	// Signed with a different key; must not resolve.
	cookie, err := other.Create(42)
	require.NoError(t, err)

	_, ok := m.Resolve(requestWithCookie(cookie))
	assert.False(t, ok)
}

func TestManagerDestroy(t *testing.T) {
	m := newTestManager(t)

	cookie, err := m.Create(42)
	require.NoError(t, err)

	m.Destroy(requestWithCookie(cookie))
	_, ok := m.Resolve(requestWithCookie(cookie))
	assert.False(t, ok)

	// Repeated destroy of the same session is harmless.
	m.Destroy(requestWithCookie(cookie))
}

func TestManagerClear(t *testing.T) {
	m := newTestManager(t)

	cookie := m.Clear()
	assert.Equal(t, "session", cookie.Name)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.Empty(t, cookie.Value)
}

func TestNewManagerRejectsBadKey(t *testing.T) {
	_, err := NewManager(NewMemoryStore(), &config.SessionConfig{
		CookieName: "session",
		MaxAge:     3600,
		HashKey:    "not-hex",
	})
	assert.Error(t, err)
}
