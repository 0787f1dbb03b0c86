// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"

	"github.com/Toitw/sport-team-manager-sub000/internal/middleware"
	"github.com/Toitw/sport-team-manager-sub000/internal/models"
	"github.com/Toitw/sport-team-manager-sub000/internal/services/auth"
	"github.com/Toitw/sport-team-manager-sub000/internal/services/session"
	"github.com/labstack/echo/v4"
)

// AuthHandlers contains handlers for the account lifecycle endpoints.
type AuthHandlers struct {
	auth     *auth.Service
	sessions *session.Manager
}

// NewAuth creates a new AuthHandlers instance.
func NewAuth(authService *auth.Service, sessions *session.Manager) *AuthHandlers {
	return &AuthHandlers{auth: authService, sessions: sessions}
}

// RegisterRequest is the request body for registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Register creates a new unverified account.
func (h *AuthHandlers) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email and password are required."})
	}

	role := models.Role(req.Role)
	if req.Role != "" && !role.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown role."})
	}

	user, err := h.auth.Register(c.Request().Context(), auth.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email already registered."})
	case errors.Is(err, auth.ErrInvalidEmail):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid email address."})
	case errors.Is(err, auth.ErrWeakPassword):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Password must be at least 8 characters long."})
	case errors.Is(err, auth.ErrDispatchFailed):
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to send verification email."})
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Registration successful. Please check your email to verify your account.",
		"user": map[string]any{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// VerifyEmail consumes a verification token from the emailed link.
func (h *AuthHandlers) VerifyEmail(c echo.Context) error {
	token := c.QueryParam("token")

	err := h.auth.VerifyEmail(c.Request().Context(), token)
	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		return c.String(http.StatusBadRequest, "Invalid or expired verification link.")
	case errors.Is(err, auth.ErrAlreadyVerified):
		return c.String(http.StatusBadRequest, "Email already verified.")
	case err != nil:
		return err
	}

	return c.String(http.StatusOK, "Email verified successfully. You can now log in.")
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and sets the session cookie. A lookup miss
// and a wrong password answer with the same message.
func (h *AuthHandlers) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}

	user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrNotVerified):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Please verify your email before logging in."})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid email or password."})
	case err != nil:
		return err
	}

	cookie, err := h.sessions.Create(user.ID)
	if err != nil {
		return err
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Logged in successfully.",
		"user":    user,
	})
}

// Logout destroys the current session. Safe to repeat.
func (h *AuthHandlers) Logout(c echo.Context) error {
	h.sessions.Destroy(c.Request())
	c.SetCookie(h.sessions.Clear())
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully."})
}

// CurrentUser returns the authenticated user.
func (h *AuthHandlers) CurrentUser(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not logged in."})
	}
	return c.JSON(http.StatusOK, user)
}

// ForgotPasswordRequest is the request body for forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword issues a reset token. The response is identical whether
// or not the email is registered.
func (h *AuthHandlers) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email is required."})
	}

	err := h.auth.ForgotPassword(c.Request().Context(), req.Email)
	switch {
	case errors.Is(err, auth.ErrDispatchFailed):
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to send password reset email."})
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "If your email is registered, you will receive password reset instructions.",
	})
}

// ResetPasswordRequest is the request body for reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword consumes a reset token and replaces the password.
func (h *AuthHandlers) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.Token == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Token and new password are required."})
	}

	err := h.auth.ResetPassword(c.Request().Context(), req.Token, req.NewPassword)
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Reset token has expired."})
	case errors.Is(err, auth.ErrInvalidToken):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid or expired reset token."})
	case errors.Is(err, auth.ErrWeakPassword):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Password must be at least 8 characters long."})
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Password reset successfully. You can now log in."})
}
