// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Deliberately slow and memory-hard; changing them
// only affects newly stored hashes because the parameters travel inside
// the stored form.
const (
	argonMemory      = 64 * 1024
	argonIterations  = 3
	argonParallelism = 2
	argonSaltLength  = 16
	argonKeyLength   = 32
)

// TokenLength is the number of random bytes in opaque account tokens.
const TokenLength = 32

// ErrPasswordMismatch is returned by VerifyPassword when the password
// does not match the stored hash, including when the stored form is
// malformed. Callers must not distinguish the two cases.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword derives an Argon2id hash with a fresh random salt and
// returns it in PHC format: $argon2id$v=19$m=..,t=..,p=..$salt$hash.
// Two calls with the same password produce different stored forms.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		argonMemory, argonIterations, argonParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword compares a plaintext password against a stored PHC
// Argon2id hash in constant time. A malformed stored form is reported
// as a mismatch, never as a panic.
func VerifyPassword(password, encodedHash string) error {
	salt, expected, memory, iterations, parallelism, err := decodeHash(encodedHash)
	if err != nil {
		return ErrPasswordMismatch
	}

	computed := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism,
		uint32(len(expected))) //nolint:gosec // key length is bounded by the stored form

	if subtle.ConstantTimeCompare(computed, expected) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}

// decodeHash splits a PHC-format string back into salt, digest and
// parameters. Structure: ["", "argon2id", "v=19", "m=X,t=Y,p=Z", salt, hash].
func decodeHash(encodedHash string) (salt, hash []byte, memory, iterations uint32, parallelism uint8, err error) {
	parts := make([]string, 0, 6)
	start := 0
	for i := 0; i < len(encodedHash); i++ {
		if encodedHash[i] == '$' {
			parts = append(parts, encodedHash[start:i])
			start = i + 1
		}
	}
	parts = append(parts, encodedHash[start:])

	if len(parts) != 6 {
		return nil, nil, 0, 0, 0, errors.New("invalid hash format: expected 6 parts")
	}
	if parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, errors.New("invalid hash format: not argon2id")
	}
	if parts[2] != "v=19" {
		return nil, nil, 0, 0, 0, errors.New("invalid hash format: wrong version")
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("invalid hash format: %w", err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("invalid hash format: %w", err)
	}
	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("invalid hash format: %w", err)
	}

	return salt, hash, memory, iterations, parallelism, nil
}

// GenerateToken creates an opaque, URL-safe account token. The token
// carries no structure; it is a capability, not an index.
func GenerateToken() (string, error) {
	buf := make([]byte, TokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
