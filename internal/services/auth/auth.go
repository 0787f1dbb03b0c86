// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package auth implements the account lifecycle: registration, email
// verification, login, and password reset.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"github.com/Toitw/sport-team-manager-sub000/internal/services/email"
	"github.com/Toitw/sport-team-manager-sub000/internal/models"
	"github.com/Toitw/sport-team-manager-sub000/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotVerified        = errors.New("email not verified")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must be at least 8 characters long")
	ErrDispatchFailed     = errors.New("failed to dispatch email")
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// ResetTokenTTL is how long a password reset token stays valid.
const ResetTokenTTL = time.Hour

// nullString wraps a non-empty string for a nullable column.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// dummyHash is compared against on login misses so that a lookup miss
// and a wrong password take comparable time.
var dummyHash, _ = HashPassword("dummy-password-for-timing")

type Service struct {
	repo   *repository.Repository
	mailer email.Mailer
}

func NewService(repo *repository.Repository, mailer email.Mailer) *Service {
	return &Service{repo: repo, mailer: mailer}
}

// RegisterParams holds the parameters for user registration.
type RegisterParams struct {
	Email    string
	Password string
	Role     models.Role
}

// Register creates a new unverified account and dispatches a
// verification email. When dispatch fails the freshly created row is
// deleted again so no orphan account without a verification link is
// left behind.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	if _, err := mail.ParseAddress(params.Email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(params.Password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	role := params.Role
	if role == "" {
		role = models.DefaultRole
	}
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", params.Role)
	}

	// Pre-check is an optimization only; the unique index on email is
	// the source of truth.
	if _, err := s.repo.GetUserByEmail(ctx, params.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	passwordHash, err := HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	user := &models.User{
		Email:             params.Email,
		PasswordHash:      passwordHash,
		Role:              role,
		EmailVerified:     false,
		VerificationToken: nullString(token),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.mailer.SendVerification(ctx, user.Email, token); err != nil {
		// Compensating delete: registration must not leave an account
		// that can never receive its verification link.
		if delErr := s.repo.DeleteUser(ctx, user.ID); delErr != nil {
			slog.Error("register_rollback_failed", "user_id", user.ID, "error", delErr)
		}
		slog.Error("register_dispatch_failed", "email", user.Email, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	slog.Info("register_success", "user_id", user.ID, "email", user.Email, "role", user.Role)
	return user, nil
}

// VerifyEmail consumes a verification token, flipping the account to
// verified exactly once.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	user, err := s.repo.GetUserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to look up verification token: %w", err)
	}

	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	if err := s.repo.MarkEmailVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}

	slog.Info("email_verified", "user_id", user.ID, "email", user.Email)
	return nil
}

// Login authenticates a user by email and password. A lookup miss and a
// wrong password both yield ErrInvalidCredentials so the responses do
// not reveal whether an account exists. An existing but unverified
// account is rejected with ErrNotVerified before the password is
// compared; this ordering is deliberate and pinned by tests.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = VerifyPassword(password, dummyHash)
			slog.Warn("login_failed", "email", email, "reason", "user_not_found")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.EmailVerified {
		slog.Warn("login_failed", "email", email, "reason", "not_verified")
		return nil, ErrNotVerified
	}

	if err := VerifyPassword(password, user.PasswordHash); err != nil {
		slog.Warn("login_failed", "email", email, "reason", "invalid_password")
		return nil, ErrInvalidCredentials
	}

	slog.Info("login_success", "user_id", user.ID, "email", email)
	return user, nil
}

// ForgotPassword issues a reset token and dispatches the reset email.
// A missing account is not an error; callers answer with the same
// generic message either way. Dispatch failure is a real error.
func (s *Service) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.repo.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.Info("forgot_password_unknown_email", "email", emailAddr)
			return nil
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	token, err := GenerateToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expires := time.Now().Add(ResetTokenTTL)
	if err := s.repo.SetPasswordResetToken(ctx, user.ID, token, expires); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		slog.Error("reset_dispatch_failed", "email", user.Email, "error", err)
		return fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	slog.Info("reset_token_issued", "user_id", user.ID)
	return nil
}

// ResetPassword consumes a reset token and replaces the password. An
// expired token is rejected even when the token string matches; both
// token fields are cleared only on success.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return ErrInvalidToken
	}
	if len(newPassword) < MinPasswordLength {
		return ErrWeakPassword
	}

	user, err := s.repo.GetUserByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	if !user.PasswordResetExpires.Valid || time.Now().After(user.PasswordResetExpires.Time) {
		return ErrTokenExpired
	}

	passwordHash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.ResetUserPassword(ctx, user.ID, passwordHash); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	slog.Info("password_reset", "user_id", user.ID)
	return nil
}

// EnsureAdmin creates a pre-verified admin account at startup when none
// exists yet. No verification email is sent for bootstrap accounts.
func (s *Service) EnsureAdmin(ctx context.Context, emailAddr, password string) error {
	count, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	if _, err := mail.ParseAddress(emailAddr); err != nil {
		return ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:         emailAddr,
		PasswordHash:  passwordHash,
		Role:          models.RoleAdmin,
		EmailVerified: true,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	slog.Info("admin_bootstrapped", "user_id", user.ID, "email", user.Email)
	return nil
}
