// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLocalhost(t *testing.T) {
	tests := []struct {
		host     string
		expected bool
	}{
		{"", true},
		{"localhost", true},
		{"127.0.0.1", true},
		{"::1", true},
		{"app.localhost", true},
		{"sub.domain.localhost", true},
		{"example.com", false},
		{"www.example.com", false},
		{"192.168.1.1", false},
		{"localhost.com", false}, // not a real localhost
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLocalhost(tt.host))
		})
	}
}

func TestBuildBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *Config
		expected string
	}{
		{
			name: "localhost HTTP default port",
			cfg: &Config{
				Server: ServerConfig{Host: "localhost", Port: 80},
			},
			expected: "http://localhost",
		},
		{
			name: "localhost HTTP custom port",
			cfg: &Config{
				Server: ServerConfig{Host: "localhost", Port: 8080},
			},
			expected: "http://localhost:8080",
		},
		{
			name: "secure cookie implies https",
			cfg: &Config{
				Server:  ServerConfig{Host: "example.com", Port: 443},
				Session: SessionConfig{Secure: true},
			},
			expected: "https://example.com",
		},
		{
			name: "secure cookie with custom port",
			cfg: &Config{
				Server:  ServerConfig{Host: "example.com", Port: 8443},
				Session: SessionConfig{Secure: true},
			},
			expected: "https://example.com:8443",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildBaseURL(tt.cfg))
		})
	}
}
