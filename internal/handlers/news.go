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

// NewsHandlers contains handlers for news CRUD.
type NewsHandlers struct {
	repo *repository.Repository
}

// NewNews creates a new NewsHandlers instance.
func NewNews(repo *repository.Repository) *NewsHandlers {
	return &NewsHandlers{repo: repo}
}

// NewsRequest is the request body for creating or updating news.
type NewsRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create publishes a news entry for a team.
func (h *NewsHandlers) Create(c echo.Context) error {
	teamID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid team id."})
	}

	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Title is required."})
	}

	if _, err := h.repo.GetTeamByID(c.Request().Context(), teamID); errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Team not found."})
	} else if err != nil {
		return err
	}

	news := &models.News{
		TeamID:  teamID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := h.repo.CreateNews(c.Request().Context(), news); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, news)
}

// List returns all news of a team, newest first.
func (h *NewsHandlers) List(c echo.Context) error {
	teamID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid team id."})
	}

	if _, err := h.repo.GetTeamByID(c.Request().Context(), teamID); errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Team not found."})
	} else if err != nil {
		return err
	}

	news, err := h.repo.ListNewsByTeam(c.Request().Context(), teamID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, news)
}

// Update changes a news entry.
func (h *NewsHandlers) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid news id."})
	}

	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Title is required."})
	}

	news, err := h.repo.GetNewsByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "News not found."})
	}
	if err != nil {
		return err
	}

	news.Title = req.Title
	news.Content = req.Content
	if err := h.repo.UpdateNews(c.Request().Context(), news); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, news)
}

// Delete removes a news entry.
func (h *NewsHandlers) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid news id."})
	}

	if _, err := h.repo.GetNewsByID(c.Request().Context(), id); errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "News not found."})
	} else if err != nil {
		return err
	}

	if err := h.repo.DeleteNews(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "News deleted."})
}
