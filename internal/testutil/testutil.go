// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Toitw/sport-team-manager-sub000/internal/database"
	"github.com/Toitw/sport-team-manager-sub000/internal/models"
	"github.com/Toitw/sport-team-manager-sub000/internal/repository"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/vinovest/sqlx"
)

// NewTestDB creates an in-memory SQLite database for tests.
// Returns both the database connection and the repository for convenience.
func NewTestDB(t *testing.T) (*sqlx.DB, *repository.Repository) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	repo := repository.New(db)
	return db, repo
}

// NewTestUser creates a verified user with the given role. The stored
// password hash is a placeholder; tests that exercise login go through
// the auth service instead.
func NewTestUser(t *testing.T, repo *repository.Repository, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Email:         email,
		PasswordHash:  "not-a-real-hash",
		Role:          role,
		EmailVerified: true,
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

// NewTestTeam creates a team owned by the given user.
func NewTestTeam(t *testing.T, repo *repository.Repository, createdByID int64, name string) *models.Team {
	t.Helper()
	team := &models.Team{Name: name, CreatedByID: createdByID}
	require.NoError(t, repo.CreateTeam(context.Background(), team))
	return team
}

// NewTestPlayer creates a player on the given team.
func NewTestPlayer(t *testing.T, repo *repository.Repository, teamID int64, name string) *models.Player {
	t.Helper()
	player := &models.Player{TeamID: teamID, Name: name, Position: "Midfielder", Number: 10}
	require.NoError(t, repo.CreatePlayer(context.Background(), player))
	return player
}

// NewEchoContext creates an Echo context for handler tests.
func NewEchoContext(e *echo.Echo, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

// NewRequest creates a JSON HTTP request for testing.
func NewRequest(method, path string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

// FakeMailer captures dispatched tokens instead of sending email. Set
// FailVerification or FailReset to make the next dispatch fail, which is
// how tests drive the registration rollback path.
type FakeMailer struct {
	mu sync.Mutex

	FailVerification bool
	FailReset        bool

	verificationTokens map[string]string
	resetTokens        map[string]string
}

// NewFakeMailer creates an empty FakeMailer.
func NewFakeMailer() *FakeMailer {
	return &FakeMailer{
		verificationTokens: make(map[string]string),
		resetTokens:        make(map[string]string),
	}
}

// SendVerification records the verification token for the recipient.
func (m *FakeMailer) SendVerification(_ context.Context, to, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailVerification {
		return errors.New("smtp unavailable")
	}
	m.verificationTokens[to] = token
	return nil
}

// SendPasswordReset records the reset token for the recipient.
func (m *FakeMailer) SendPasswordReset(_ context.Context, to, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReset {
		return errors.New("smtp unavailable")
	}
	m.resetTokens[to] = token
	return nil
}

// VerificationToken returns the last verification token sent to the
// recipient, or "".
func (m *FakeMailer) VerificationToken(to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.verificationTokens[to]
}

// ResetToken returns the last reset token sent to the recipient, or "".
func (m *FakeMailer) ResetToken(to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resetTokens[to]
}
