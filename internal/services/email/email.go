// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package email dispatches account emails through SMTP.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Toitw/sport-team-manager-sub000/internal/config"
	"github.com/wneessen/go-mail"
)

// Mailer dispatches account lifecycle emails. Implementations must
// report delivery failure to the caller; registration depends on it for
// its compensating delete.
type Mailer interface {
	SendVerification(ctx context.Context, to, token string) error
	SendPasswordReset(ctx context.Context, to, token string) error
}

// Service sends emails via SMTP using go-mail.
type Service struct {
	cfg     *config.SMTPConfig
	baseURL string
}

// NewService creates a new email service.
func NewService(cfg *config.SMTPConfig, baseURL string) (*Service, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("SMTP from address is required")
	}

	return &Service{
		cfg:     cfg,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// SendVerification sends a verification email with the given token.
func (s *Service) SendVerification(ctx context.Context, to, token string) error {
	verifyURL := fmt.Sprintf("%s/api/verify-email?token=%s", s.baseURL, token)

	body := fmt.Sprintf(
		"Welcome!\n\nPlease verify your email address by opening the link below:\n\n%s\n\nIf you did not create an account, you can ignore this message.\n",
		verifyURL)

	return s.send(ctx, to, "Verify your email address", body)
}

// SendPasswordReset sends a password reset email with the given token.
func (s *Service) SendPasswordReset(ctx context.Context, to, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token)

	body := fmt.Sprintf(
		"A password reset was requested for your account.\n\nOpen the link below to choose a new password. The link expires in one hour:\n\n%s\n\nIf you did not request a reset, you can ignore this message.\n",
		resetURL)

	return s.send(ctx, to, "Reset your password", body)
}

// send sends an email via SMTP using go-mail.
func (s *Service) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()

	if s.cfg.FromName != "" {
		if err := msg.FromFormat(s.cfg.FromName, s.cfg.From); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	} else {
		if err := msg.From(s.cfg.From); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
	}

	// Configure TLS based on config and port
	if s.cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
		// Use implicit TLS (SSL) for port 465, STARTTLS for others
		if s.cfg.Port == 465 {
			opts = append(opts, mail.WithSSL())
		}
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if s.cfg.Username != "" && s.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	return nil
}

// LogMailer logs emails instead of sending them. Used when no SMTP host
// is configured, so a dev setup works without a mail server.
type LogMailer struct {
	BaseURL string
}

// SendVerification logs the verification link.
func (l *LogMailer) SendVerification(_ context.Context, to, token string) error {
	slog.Info("verification_email",
		"to", to,
		"url", fmt.Sprintf("%s/api/verify-email?token=%s", strings.TrimSuffix(l.BaseURL, "/"), token),
	)
	return nil
}

// SendPasswordReset logs the reset link.
func (l *LogMailer) SendPasswordReset(_ context.Context, to, token string) error {
	slog.Info("password_reset_email",
		"to", to,
		"url", fmt.Sprintf("%s/reset-password?token=%s", strings.TrimSuffix(l.BaseURL, "/"), token),
	)
	return nil
}
