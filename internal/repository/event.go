// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"github.com/Toitw/sport-team-manager-sub000/internal/models"
)

// CreateEvent inserts a new event.
func (r *Repository) CreateEvent(ctx context.Context, event *models.Event) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO events (team_id, title, description, type, start_date, end_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		event.TeamID, event.Title, event.Description, event.Type, event.StartDate, event.EndDate)
	if err != nil {
		return wrapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	event.ID = id
	return nil
}

// GetEventByID retrieves an event by ID.
func (r *Repository) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	if err := r.db.GetContext(ctx, &event, `SELECT * FROM events WHERE id = ?`, id); err != nil {
		return nil, wrapError(err)
	}
	return &event, nil
}

// ListEventsByTeam returns all events of a team ordered by start date.
func (r *Repository) ListEventsByTeam(ctx context.Context, teamID int64) ([]models.Event, error) {
	events := []models.Event{}
	err := r.db.SelectContext(ctx, &events,
		`SELECT * FROM events WHERE team_id = ? ORDER BY start_date`, teamID)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// UpdateEvent updates an event's attributes.
func (r *Repository) UpdateEvent(ctx context.Context, event *models.Event) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE events SET title = ?, description = ?, type = ?, start_date = ?,
		 end_date = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		event.Title, event.Description, event.Type, event.StartDate, event.EndDate, event.ID)
	return err
}

// DeleteEvent deletes an event; match details cascade.
func (r *Repository) DeleteEvent(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}
