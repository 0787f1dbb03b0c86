// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"github.com/Toitw/sport-team-manager-sub000/internal/models"
)

// CreateUser inserts a new user. The unique index on email is the source
// of truth for duplicate detection; callers get ErrDuplicate on conflict.
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, role, email_verified, verification_token)
		 VALUES (?, ?, ?, ?, ?)`,
		user.Email, user.PasswordHash, user.Role, user.EmailVerified, user.VerificationToken)
	if err != nil {
		return wrapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// GetUserByID retrieves a user by their ID.
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = ?`, id); err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by their email address. The match is
// case-sensitive, as stored.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = ?`, email); err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// GetUserByVerificationToken retrieves an unverified user by token.
func (r *Repository) GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE verification_token = ?`, token)
	if err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// GetUserByResetToken retrieves a user by password reset token.
func (r *Repository) GetUserByResetToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE password_reset_token = ?`, token)
	if err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// MarkEmailVerified flips email_verified and clears the verification
// token in a single update.
func (r *Repository) MarkEmailVerified(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET email_verified = 1, verification_token = NULL,
		 updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	return err
}

// SetPasswordResetToken stores a reset token and its expiry for a user.
func (r *Repository) SetPasswordResetToken(ctx context.Context, id int64, token string, expires time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_reset_token = ?, password_reset_expires = ?,
		 updated_at = CURRENT_TIMESTAMP WHERE id = ?`, token, expires, id)
	return err
}

// ResetUserPassword replaces the password hash and clears both reset
// token fields in a single update.
func (r *Repository) ResetUserPassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, password_reset_token = NULL,
		 password_reset_expires = NULL, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		passwordHash, id)
	return err
}

// DeleteUser deletes a user by their ID. Used as the compensating action
// when the verification email cannot be dispatched.
func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}

// CountAdmins returns the number of admin users.
func (r *Repository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE role = ?`, models.RoleAdmin)
	return count, err
}
