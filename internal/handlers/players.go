// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"

	"github.com/Toitw/sport-team-manager-sub000/internal/models"
	"github.com/Toitw/sport-team-manager-sub000/internal/repository"
	"github.com/labstack/echo/v4"
)

// PlayerHandlers contains handlers for player CRUD.
type PlayerHandlers struct {
	repo *repository.Repository
}

// NewPlayers creates a new PlayerHandlers instance.
func NewPlayers(repo *repository.Repository) *PlayerHandlers {
	return &PlayerHandlers{repo: repo}
}

// PlayerRequest is the request body for creating or updating a player.
type PlayerRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Number   int    `json:"number"`
}

// Create adds a player to a team.
func (h *PlayerHandlers) Create(c echo.Context) error {
	teamID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid team id."})
	}

	var req PlayerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name is required."})
	}

	if _, err := h.repo.GetTeamByID(c.Request().Context(), teamID); errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Team not found."})
	} else if err != nil {
		return err
	}

	player := &models.Player{
		TeamID:   teamID,
		Name:     req.Name,
		Position: req.Position,
		Number:   req.Number,
	}
	if err := h.repo.CreatePlayer(c.Request().Context(), player); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, player)
}

// List returns all players of a team.
func (h *PlayerHandlers) List(c echo.Context) error {
	teamID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid team id."})
	}

	if _, err := h.repo.GetTeamByID(c.Request().Context(), teamID); errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Team not found."})
	} else if err != nil {
		return err
	}

	players, err := h.repo.ListPlayersByTeam(c.Request().Context(), teamID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, players)
}

// Update changes a player's attributes.
func (h *PlayerHandlers) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid player id."})
	}

	var req PlayerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name is required."})
	}

	player, err := h.repo.GetPlayerByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Player not found."})
	}
	if err != nil {
		return err
	}

	player.Name = req.Name
	player.Position = req.Position
	player.Number = req.Number
	if err := h.repo.UpdatePlayer(c.Request().Context(), player); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, player)
}

// Delete removes a player.
func (h *PlayerHandlers) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid player id."})
	}

	if _, err := h.repo.GetPlayerByID(c.Request().Context(), id); errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Player not found."})
	} else if err != nil {
		return err
	}

	if err := h.repo.DeletePlayer(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Player deleted."})
}
