// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package models defines the database row types.
package models

import (
	"database/sql"
	"time"
)

// Role is the authorization level of a user account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleReader  Role = "reader"
)

// DefaultRole is assigned to accounts that register without a role.
// It is the least privileged one.
const DefaultRole = RoleReader

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleReader:
		return true
	}
	return false
}

// User is an account record. Verification and reset tokens live on the
// row itself; a verification token is present only while the email is
// unverified, and the reset token and its expiry are always set or
// cleared together.
type User struct { //nolint:govet // fieldalignment: readability over optimization
	ID                   int64          `db:"id" json:"id"`
	Email                string         `db:"email" json:"email"`
	PasswordHash         string         `db:"password_hash" json:"-"`
	Role                 Role           `db:"role" json:"role"`
	EmailVerified        bool           `db:"email_verified" json:"email_verified"`
	VerificationToken    sql.NullString `db:"verification_token" json:"-"`
	PasswordResetToken   sql.NullString `db:"password_reset_token" json:"-"`
	PasswordResetExpires sql.NullTime   `db:"password_reset_expires" json:"-"`
	CreatedAt            time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at" json:"updated_at"`
}
