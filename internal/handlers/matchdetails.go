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

// MatchDetailHandlers contains handlers for the per-match detail
// collections: lineup, goals, cards, substitutions and commentary.
type MatchDetailHandlers struct {
	repo *repository.Repository
}

// NewMatchDetails creates a new MatchDetailHandlers instance.
func NewMatchDetails(repo *repository.Repository) *MatchDetailHandlers {
	return &MatchDetailHandlers{repo: repo}
}

// eventFromPath loads the event named by the :id path parameter. The
// bool reports whether a response has already been written.
func (h *MatchDetailHandlers) eventFromPath(c echo.Context) (*models.Event, bool, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, true, c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid event id."})
	}

	event, err := h.repo.GetEventByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, true, c.JSON(http.StatusNotFound, map[string]string{"error": "Event not found."})
	}
	if err != nil {
		return nil, true, err
	}
	return event, false, nil
}

// LineupEntryRequest is the request body for adding a lineup entry.
type LineupEntryRequest struct {
	PlayerID int64  `json:"player_id"`
	Position string `json:"position"`
}

// CreateLineupEntry adds a player to the event lineup.
func (h *MatchDetailHandlers) CreateLineupEntry(c echo.Context) error {
	event, done, err := h.eventFromPath(c)
	if done {
		return err
	}

	var req LineupEntryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.PlayerID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Player id is required."})
	}

	entry := &models.LineupEntry{
		EventID:  event.ID,
		PlayerID: req.PlayerID,
		Position: req.Position,
	}
	if err := h.repo.CreateLineupEntry(c.Request().Context(), entry); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// ListLineup returns the lineup of an event.
func (h *MatchDetailHandlers) ListLineup(c echo.Context) error {
	event, done, err := h.eventFromPath(c)
	if done {
		return err
	}

	entries, err := h.repo.ListLineupByEvent(c.Request().Context(), event.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// DeleteLineupEntry removes a lineup entry.
func (h *MatchDetailHandlers) DeleteLineupEntry(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid lineup entry id."})
	}
	if err := h.repo.DeleteLineupEntry(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Lineup entry deleted."})
}

// GoalRequest is the request body for recording a goal.
type GoalRequest struct {
	PlayerID int64 `json:"player_id"`
	Minute   int   `json:"minute"`
}

// CreateGoal records a goal for an event.
func (h *MatchDetailHandlers) CreateGoal(c echo.Context) error {
	event, done, err := h.eventFromPath(c)
	if done {
		return err
	}

	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.PlayerID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Player id is required."})
	}

	goal := &models.Goal{
		EventID:  event.ID,
		PlayerID: req.PlayerID,
		Minute:   req.Minute,
	}
	if err := h.repo.CreateGoal(c.Request().Context(), goal); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, goal)
}

// ListGoals returns the goals of an event.
func (h *MatchDetailHandlers) ListGoals(c echo.Context) error {
	event, done, err := h.eventFromPath(c)
	if done {
		return err
	}

	goals, err := h.repo.ListGoalsByEvent(c.Request().Context(), event.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, goals)
}

// DeleteGoal removes a goal.
func (h *MatchDetailHandlers) DeleteGoal(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid goal id."})
	}
	if err := h.repo.DeleteGoal(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Goal deleted."})
}

// CardRequest is the request body for recording a card.
type CardRequest struct {
	PlayerID int64  `json:"player_id"`
	Minute   int    `json:"minute"`
	Color    string `json:"color"`
}

// CreateCard records a card for an event.
func (h *MatchDetailHandlers) CreateCard(c echo.Context) error {
	event, done, err := h.eventFromPath(c)
	if done {
		return err
	}

	var req CardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.PlayerID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Player id is required."})
	}
	if req.Color != models.CardYellow && req.Color != models.CardRed {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Color must be yellow or red."})
	}

	card := &models.Card{
		EventID:  event.ID,
		PlayerID: req.PlayerID,
		Minute:   req.Minute,
		Color:    req.Color,
	}
	if err := h.repo.CreateCard(c.Request().Context(), card); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, card)
}

// ListCards returns the cards of an event.
func (h *MatchDetailHandlers) ListCards(c echo.Context) error {
	event, done, err := h.eventFromPath(c)
	if done {
		return err
	}

	cards, err := h.repo.ListCardsByEvent(c.Request().Context(), event.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cards)
}

// DeleteCard removes a card.
func (h *MatchDetailHandlers) DeleteCard(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid card id."})
	}
	if err := h.repo.DeleteCard(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Card deleted."})
}

// SubstitutionRequest is the request body for recording a substitution.
type SubstitutionRequest struct {
	PlayerOutID int64 `json:"player_out_id"`
	PlayerInID  int64 `json:"player_in_id"`
	Minute      int   `json:"minute"`
}

// CreateSubstitution records a substitution for an event.
func (h *MatchDetailHandlers) CreateSubstitution(c echo.Context) error {
	event, done, err := h.eventFromPath(c)
	if done {
		return err
	}

	var req SubstitutionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.PlayerOutID == 0 || req.PlayerInID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Both player ids are required."})
	}

	sub := &models.Substitution{
		EventID:     event.ID,
		PlayerOutID: req.PlayerOutID,
		PlayerInID:  req.PlayerInID,
		Minute:      req.Minute,
	}
	if err := h.repo.CreateSubstitution(c.Request().Context(), sub); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sub)
}

// ListSubstitutions returns the substitutions of an event.
func (h *MatchDetailHandlers) ListSubstitutions(c echo.Context) error {
	event, done, err := h.eventFromPath(c)
	if done {
		return err
	}

	subs, err := h.repo.ListSubstitutionsByEvent(c.Request().Context(), event.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subs)
}

// DeleteSubstitution removes a substitution.
func (h *MatchDetailHandlers) DeleteSubstitution(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid substitution id."})
	}
	if err := h.repo.DeleteSubstitution(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Substitution deleted."})
}

// CommentaryRequest is the request body for a commentary line.
type CommentaryRequest struct {
	Minute int    `json:"minute"`
	Text   string `json:"text"`
}

// CreateCommentary records a commentary line for an event.
func (h *MatchDetailHandlers) CreateCommentary(c echo.Context) error {
	event, done, err := h.eventFromPath(c)
	if done {
		return err
	}

	var req CommentaryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Text is required."})
	}

	commentary := &models.Commentary{
		EventID: event.ID,
		Minute:  req.Minute,
		Text:    req.Text,
	}
	if err := h.repo.CreateCommentary(c.Request().Context(), commentary); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, commentary)
}

// ListCommentary returns the commentary of an event.
func (h *MatchDetailHandlers) ListCommentary(c echo.Context) error {
	event, done, err := h.eventFromPath(c)
	if done {
		return err
	}

	lines, err := h.repo.ListCommentaryByEvent(c.Request().Context(), event.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lines)
}

// DeleteCommentary removes a commentary line.
func (h *MatchDetailHandlers) DeleteCommentary(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid commentary id."})
	}
	if err := h.repo.DeleteCommentary(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Commentary deleted."})
}
