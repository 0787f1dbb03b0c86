// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package ctxkeys defines typed context keys.
package ctxkeys

// User is the context key for the authenticated user.
type User struct{}
