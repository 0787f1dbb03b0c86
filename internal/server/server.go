// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package server wires the application together and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Toitw/sport-team-manager-sub000/internal/config"
	"github.com/Toitw/sport-team-manager-sub000/internal/database"
	"github.com/Toitw/sport-team-manager-sub000/internal/repository"
	"github.com/Toitw/sport-team-manager-sub000/internal/services/auth"
	"github.com/Toitw/sport-team-manager-sub000/internal/services/email"
	"github.com/Toitw/sport-team-manager-sub000/internal/services/session"
	"github.com/labstack/echo/v4"
	"github.com/urfave/cli/v3"
)

// Run starts the server with the given CLI command.
func Run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	setupLogger(&cfg.Log)

	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"base_url", cfg.Server.BaseURL,
	)

	// Database
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close database", "error", closeErr)
		}
	}()

	// Repository
	repo := repository.New(db)

	// Mailer: real SMTP when configured, logged links otherwise
	var mailer email.Mailer
	if cfg.SMTP.Host != "" {
		mailer, err = email.NewService(&cfg.SMTP, cfg.Server.BaseURL)
		if err != nil {
			return fmt.Errorf("failed to create email service: %w", err)
		}
	} else {
		slog.Warn("no SMTP host configured, emails will be logged")
		mailer = &email.LogMailer{BaseURL: cfg.Server.BaseURL}
	}

	// Services
	authService := auth.NewService(repo, mailer)

	if cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPassword != "" {
		if err := authService.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			return fmt.Errorf("failed to ensure admin account: %w", err)
		}
	}

	sessions, err := session.NewManager(session.NewMemoryStore(), &cfg.Session)
	if err != nil {
		return fmt.Errorf("failed to create session manager: %w", err)
	}

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	setupMiddleware(e, cfg, sessions, repo)
	setupRoutes(e, repo, authService, sessions)

	return startWithGracefulShutdown(ctx, e, cfg)
}

func startWithGracefulShutdown(ctx context.Context, e *echo.Echo, cfg *config.Config) error {
	errChan := make(chan error, 1)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		slog.Info("server running", "url", cfg.Server.BaseURL)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
