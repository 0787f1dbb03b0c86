// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Toitw/sport-team-manager-sub000/internal/models"
	"github.com/Toitw/sport-team-manager-sub000/internal/repository"
	"github.com/Toitw/sport-team-manager-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *repository.Repository, *testutil.FakeMailer) {
	t.Helper()
	_, repo := testutil.NewTestDB(t)
	mailer := testutil.NewFakeMailer()
	return NewService(repo, mailer), repo, mailer
}

func register(t *testing.T, svc *Service, email, password string) *models.User {
	t.Helper()
	user, err := svc.Register(context.Background(), RegisterParams{Email: email, Password: password})
	require.NoError(t, err)
	return user
}

func TestRegister(t *testing.T) {
	svc, repo, mailer := newTestService(t)
	ctx := context.Background()

	user := register(t, svc, "alice@example.com", "pw123456")

	assert.Equal(t, models.RoleReader, user.Role)
	assert.False(t, user.EmailVerified)
	assert.NotEmpty(t, mailer.VerificationToken("alice@example.com"))

	stored, err := repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, stored.VerificationToken.Valid)
	assert.NotEqual(t, "pw123456", stored.PasswordHash)
}

func TestRegisterWithRole(t *testing.T) {
	svc, _, _ := newTestService(t)

	user, err := svc.Register(context.Background(), RegisterParams{
		Email:    "manager@example.com",
		Password: "pw123456",
		Role:     models.RoleManager,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, user.Role)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterParams{Email: "not-an-email", Password: "pw123456"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Register(ctx, RegisterParams{Email: "short@example.com", Password: "pw12345"})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	register(t, svc, "alice@example.com", "pw123456")

	_, err := svc.Register(context.Background(), RegisterParams{
		Email:    "alice@example.com",
		Password: "different1",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterDispatchFailureRollsBack(t *testing.T) {
	svc, repo, mailer := newTestService(t)
	ctx := context.Background()
	mailer.FailVerification = true

	_, err := svc.Register(ctx, RegisterParams{Email: "alice@example.com", Password: "pw123456"})
	assert.ErrorIs(t, err, ErrDispatchFailed)

	// The half-created account must be gone so the email can register again.
	_, err = repo.GetUserByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	mailer.FailVerification = false
	register(t, svc, "alice@example.com", "pw123456")
}

func TestVerifyEmail(t *testing.T) {
	svc, repo, mailer := newTestService(t)
	ctx := context.Background()

	user := register(t, svc, "alice@example.com", "pw123456")
	token := mailer.VerificationToken("alice@example.com")

	require.NoError(t, svc.VerifyEmail(ctx, token))

	stored, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, stored.EmailVerified)
	assert.False(t, stored.VerificationToken.Valid)

	// The token is consumed; a second use must not succeed.
	assert.ErrorIs(t, svc.VerifyEmail(ctx, token), ErrInvalidToken)
}

func TestVerifyEmailInvalidToken(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.VerifyEmail(ctx, ""), ErrInvalidToken)
	assert.ErrorIs(t, svc.VerifyEmail(ctx, "no-such-token"), ErrInvalidToken)
}

func TestLogin(t *testing.T) {
	svc, _, mailer := newTestService(t)
	ctx := context.Background()

	register(t, svc, "alice@example.com", "pw123456")
	require.NoError(t, svc.VerifyEmail(ctx, mailer.VerificationToken("alice@example.com")))

	user, err := svc.Login(ctx, "alice@example.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, mailer := newTestService(t)
	ctx := context.Background()

	register(t, svc, "alice@example.com", "pw123456")
	require.NoError(t, svc.VerifyEmail(ctx, mailer.VerificationToken("alice@example.com")))

	// Unknown account and wrong password must be indistinguishable.
	_, missErr := svc.Login(ctx, "nobody@example.com", "pw123456")
	_, wrongErr := svc.Login(ctx, "alice@example.com", "wrong-password")

	assert.ErrorIs(t, missErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, missErr, wrongErr)
}

func TestLoginUnverified(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	register(t, svc, "alice@example.com", "pw123456")

	_, err := svc.Login(ctx, "alice@example.com", "pw123456")
	assert.ErrorIs(t, err, ErrNotVerified)

	// The verification check runs before the password comparison, so even
	// a wrong password reports the unverified state.
	_, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrNotVerified)
}

func TestForgotPassword(t *testing.T) {
	svc, repo, mailer := newTestService(t)
	ctx := context.Background()

	user := register(t, svc, "alice@example.com", "pw123456")

	require.NoError(t, svc.ForgotPassword(ctx, "alice@example.com"))
	assert.NotEmpty(t, mailer.ResetToken("alice@example.com"))

	stored, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, stored.PasswordResetExpires.Valid)
	assert.WithinDuration(t, time.Now().Add(ResetTokenTTL), stored.PasswordResetExpires.Time, time.Minute)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc, _, mailer := newTestService(t)

	// Unknown accounts are not an error and send nothing.
	require.NoError(t, svc.ForgotPassword(context.Background(), "nobody@example.com"))
	assert.Empty(t, mailer.ResetToken("nobody@example.com"))
}

func TestResetPassword(t *testing.T) {
	svc, _, mailer := newTestService(t)
	ctx := context.Background()

	register(t, svc, "alice@example.com", "pw123456")
	require.NoError(t, svc.VerifyEmail(ctx, mailer.VerificationToken("alice@example.com")))
	require.NoError(t, svc.ForgotPassword(ctx, "alice@example.com"))
	token := mailer.ResetToken("alice@example.com")

	require.NoError(t, svc.ResetPassword(ctx, token, "new-password-1"))

	_, err := svc.Login(ctx, "alice@example.com", "pw123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "alice@example.com", "new-password-1")
	assert.NoError(t, err)

	// The token is cleared on success; a second reset must fail.
	assert.ErrorIs(t, svc.ResetPassword(ctx, token, "another-pass-2"), ErrInvalidToken)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	user := register(t, svc, "alice@example.com", "pw123456")
	require.NoError(t, repo.SetPasswordResetToken(ctx, user.ID, "stale-token", time.Now().Add(-time.Minute)))

	assert.ErrorIs(t, svc.ResetPassword(ctx, "stale-token", "new-password-1"), ErrTokenExpired)
}

func TestResetPasswordValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.ResetPassword(ctx, "", "new-password-1"), ErrInvalidToken)
	assert.ErrorIs(t, svc.ResetPassword(ctx, "no-such-token", "new-password-1"), ErrInvalidToken)
	assert.ErrorIs(t, svc.ResetPassword(ctx, "some-token", "short"), ErrWeakPassword)
}

func TestEnsureAdmin(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin@example.com", "admin-pass-1"))

	admin, err := repo.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.EmailVerified)

	// Bootstrap accounts skip verification entirely.
	_, err = svc.Login(ctx, "admin@example.com", "admin-pass-1")
	assert.NoError(t, err)

	// A second call is a no-op once an admin exists.
	require.NoError(t, svc.EnsureAdmin(ctx, "other@example.com", "other-pass-1"))
	count, err := repo.CountAdmins(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
