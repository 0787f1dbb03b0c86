// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package email

import (
	"context"
	"testing"

	"github.com/Toitw/sport-team-manager-sub000/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	_, err := NewService(&config.SMTPConfig{}, "http://localhost:8080")
	assert.Error(t, err)

	_, err = NewService(&config.SMTPConfig{Host: "smtp.example.com"}, "http://localhost:8080")
	assert.Error(t, err)

	svc, err := NewService(&config.SMTPConfig{Host: "smtp.example.com", From: "noreply@example.com"}, "http://localhost:8080/")
	require.NoError(t, err)
	// Trailing slash is stripped so links do not contain "//".
	assert.Equal(t, "http://localhost:8080", svc.baseURL)
}

func TestLogMailer(t *testing.T) {
	m := &LogMailer{BaseURL: "http://localhost:8080"}

	assert.NoError(t, m.SendVerification(context.Background(), "alice@example.com", "token"))
	assert.NoError(t, m.SendPasswordReset(context.Background(), "alice@example.com", "token"))
}
