// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/Toitw/sport-team-manager-sub000/internal/models"
	"github.com/Toitw/sport-team-manager-sub000/internal/repository"
	"github.com/labstack/echo/v4"
)

// EventHandlers contains handlers for event CRUD.
type EventHandlers struct {
	repo *repository.Repository
}

// NewEvents creates a new EventHandlers instance.
func NewEvents(repo *repository.Repository) *EventHandlers {
	return &EventHandlers{repo: repo}
}

// EventRequest is the request body for creating or updating an event.
type EventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

func (r *EventRequest) endDate() sql.NullTime {
	if r.EndDate == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *r.EndDate, Valid: true}
}

// Create adds an event to a team.
func (h *EventHandlers) Create(c echo.Context) error {
	teamID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid team id."})
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.Title == "" || req.StartDate.IsZero() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Title and start date are required."})
	}
	if req.Type == "" {
		req.Type = "match"
	}

	if _, err := h.repo.GetTeamByID(c.Request().Context(), teamID); errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Team not found."})
	} else if err != nil {
		return err
	}

	event := &models.Event{
		TeamID:      teamID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.endDate(),
	}
	if err := h.repo.CreateEvent(c.Request().Context(), event); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// List returns all events of a team.
func (h *EventHandlers) List(c echo.Context) error {
	teamID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid team id."})
	}

	if _, err := h.repo.GetTeamByID(c.Request().Context(), teamID); errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Team not found."})
	} else if err != nil {
		return err
	}

	events, err := h.repo.ListEventsByTeam(c.Request().Context(), teamID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Update changes an event's attributes.
func (h *EventHandlers) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid event id."})
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.Title == "" || req.StartDate.IsZero() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Title and start date are required."})
	}

	event, err := h.repo.GetEventByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Event not found."})
	}
	if err != nil {
		return err
	}

	event.Title = req.Title
	event.Description = req.Description
	if req.Type != "" {
		event.Type = req.Type
	}
	event.StartDate = req.StartDate
	event.EndDate = req.endDate()
	if err := h.repo.UpdateEvent(c.Request().Context(), event); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete removes an event and its match details.
func (h *EventHandlers) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid event id."})
	}

	if _, err := h.repo.GetEventByID(c.Request().Context(), id); errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Event not found."})
	} else if err != nil {
		return err
	}

	if err := h.repo.DeleteEvent(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Event deleted."})
}
