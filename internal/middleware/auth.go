// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package middleware contains the Echo middleware for authentication,
// authorization and request throttling.
package middleware

import (
	"context"
	"net/http"

	"github.com/Toitw/sport-team-manager-sub000/internal/ctxkeys"
	"github.com/Toitw/sport-team-manager-sub000/internal/models"
	"github.com/Toitw/sport-team-manager-sub000/internal/repository"
	"github.com/Toitw/sport-team-manager-sub000/internal/services/session"
	"github.com/labstack/echo/v4"
)

// LoadUser resolves the session cookie and attaches the user record to
// the request context. Requests without a valid session pass through
// with no principal; the gates below decide whether that is acceptable.
func LoadUser(sessions *session.Manager, repo *repository.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := sessions.Resolve(c.Request())
			if ok {
				user, err := repo.GetUserByID(c.Request().Context(), userID)
				if err == nil {
					ctx := context.WithValue(c.Request().Context(), ctxkeys.User{}, user)
					c.SetRequest(c.Request().WithContext(ctx))
				}
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user, or nil.
func CurrentUser(c echo.Context) *models.User {
	if user, ok := c.Request().Context().Value(ctxkeys.User{}).(*models.User); ok {
		return user
	}
	return nil
}

// RequireAuth rejects requests without an authenticated principal.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not logged in."})
		}
		return next(c)
	}
}

// RequireRole rejects requests whose principal does not hold one of the
// allowed roles. Implies RequireAuth; the downstream handler never runs
// on rejection.
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not logged in."})
			}
			if _, ok := allowed[user.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Insufficient permissions."})
			}
			return next(c)
		}
	}
}
