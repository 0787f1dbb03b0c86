// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"

	"github.com/Toitw/sport-team-manager-sub000/internal/middleware"
	"github.com/Toitw/sport-team-manager-sub000/internal/models"
	"github.com/Toitw/sport-team-manager-sub000/internal/repository"
	"github.com/labstack/echo/v4"
)

// TeamHandlers contains handlers for team CRUD.
type TeamHandlers struct {
	repo *repository.Repository
}

// NewTeams creates a new TeamHandlers instance.
func NewTeams(repo *repository.Repository) *TeamHandlers {
	return &TeamHandlers{repo: repo}
}

// TeamRequest is the request body for creating or updating a team.
type TeamRequest struct {
	Name string `json:"name"`
}

// Create adds a new team owned by the current user.
func (h *TeamHandlers) Create(c echo.Context) error {
	var req TeamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name is required."})
	}

	team := &models.Team{
		Name:        req.Name,
		CreatedByID: middleware.CurrentUser(c).ID,
	}
	if err := h.repo.CreateTeam(c.Request().Context(), team); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, team)
}

// List returns all teams.
func (h *TeamHandlers) List(c echo.Context) error {
	teams, err := h.repo.ListTeams(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teams)
}

// Get returns a single team.
func (h *TeamHandlers) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid team id."})
	}

	team, err := h.repo.GetTeamByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Team not found."})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, team)
}

// Update changes a team's name.
func (h *TeamHandlers) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid team id."})
	}

	var req TeamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name is required."})
	}

	team, err := h.repo.GetTeamByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Team not found."})
	}
	if err != nil {
		return err
	}

	team.Name = req.Name
	if err := h.repo.UpdateTeam(c.Request().Context(), team); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, team)
}

// Delete removes a team and everything attached to it.
func (h *TeamHandlers) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid team id."})
	}

	if _, err := h.repo.GetTeamByID(c.Request().Context(), id); errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Team not found."})
	} else if err != nil {
		return err
	}

	if err := h.repo.DeleteTeam(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Team deleted."})
}
