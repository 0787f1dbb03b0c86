// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package session issues and resolves server-side sessions carried by a
// signed, HTTP-only cookie.
package session

import (
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/Toitw/sport-team-manager-sub000/internal/config"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

// Store maps opaque session IDs to user IDs. The in-process MemoryStore
// is the shipped implementation; a durable keyed store can replace it
// behind this interface.
type Store interface {
	Create(userID int64, ttl time.Duration) string
	Resolve(id string) (int64, bool)
	Destroy(id string)
}

type entry struct {
	userID    int64
	expiresAt time.Time
}

// MemoryStore keeps sessions in an in-process map. All sessions are
// invalidated on restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]entry
}

// NewMemoryStore creates an empty in-process session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]entry)}
}

// Create stores a new session and returns its unguessable ID.
func (s *MemoryStore) Create(userID int64, ttl time.Duration) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = entry{userID: userID, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return id
}

// Resolve returns the user ID bound to a session. Missing or expired
// sessions resolve to no principal; expired entries are removed lazily.
func (s *MemoryStore) Resolve(id string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return 0, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.sessions, id)
		return 0, false
	}
	return e.userID, true
}

// Destroy removes a session. Idempotent on repeated calls.
func (s *MemoryStore) Destroy(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Manager binds a Store to the session cookie. The cookie only carries
// the securecookie-signed session ID, never user data.
type Manager struct {
	store      Store
	codec      *securecookie.SecureCookie
	cookieName string
	maxAge     time.Duration
	secure     bool
}

// NewManager creates a session manager. An empty hash key generates a
// random one, which invalidates cookies on restart; fine for dev, set a
// key in production.
func NewManager(store Store, cfg *config.SessionConfig) (*Manager, error) {
	hashKey, err := keyFromHex(cfg.HashKey, 64)
	if err != nil {
		return nil, err
	}

	var blockKey []byte
	if cfg.BlockKey != "" {
		blockKey, err = keyFromHex(cfg.BlockKey, 32)
		if err != nil {
			return nil, err
		}
	}

	return &Manager{
		store:      store,
		codec:      securecookie.New(hashKey, blockKey),
		cookieName: cfg.CookieName,
		maxAge:     time.Duration(cfg.MaxAge) * time.Second,
		secure:     cfg.Secure,
	}, nil
}

func keyFromHex(s string, fallbackLen int) ([]byte, error) {
	if s == "" {
		return securecookie.GenerateRandomKey(fallbackLen), nil
	}
	return hex.DecodeString(s)
}

// Create opens a session for the user and returns the cookie to set.
func (m *Manager) Create(userID int64) (*http.Cookie, error) {
	id := m.store.Create(userID, m.maxAge)

	encoded, err := m.codec.Encode(m.cookieName, id)
	if err != nil {
		m.store.Destroy(id)
		return nil, err
	}

	return &http.Cookie{
		Name:     m.cookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Resolve returns the user ID for the request's session cookie. A
// missing, tampered or expired cookie resolves to no principal.
func (m *Manager) Resolve(r *http.Request) (int64, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return 0, false
	}

	var id string
	if err := m.codec.Decode(m.cookieName, cookie.Value, &id); err != nil {
		return 0, false
	}

	return m.store.Resolve(id)
}

// Destroy removes the session referenced by the request's cookie.
func (m *Manager) Destroy(r *http.Request) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return
	}

	var id string
	if err := m.codec.Decode(m.cookieName, cookie.Value, &id); err != nil {
		return
	}

	m.store.Destroy(id)
}

// Clear returns an expired cookie that removes the session cookie from
// the client.
func (m *Manager) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
