// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package handlers contains the JSON REST handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/Toitw/sport-team-manager-sub000/internal/repository"
	"github.com/labstack/echo/v4"
)

// Handlers contains the basic application handlers.
type Handlers struct {
	repo *repository.Repository
}

// New creates a new Handlers instance.
func New(repo *repository.Repository) *Handlers {
	return &Handlers{repo: repo}
}

// Health responds with a simple health check.
func (h *Handlers) Health(c echo.Context) error {
	if err := h.repo.DB().PingContext(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the :id (or named) path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
