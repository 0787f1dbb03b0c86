// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"github.com/Toitw/sport-team-manager-sub000/internal/models"
)

// CreateTeam inserts a new team.
func (r *Repository) CreateTeam(ctx context.Context, team *models.Team) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO teams (name, created_by_id) VALUES (?, ?)`,
		team.Name, team.CreatedByID)
	if err != nil {
		return wrapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	team.ID = id
	return nil
}

// GetTeamByID retrieves a team by ID.
func (r *Repository) GetTeamByID(ctx context.Context, id int64) (*models.Team, error) {
	var team models.Team
	if err := r.db.GetContext(ctx, &team, `SELECT * FROM teams WHERE id = ?`, id); err != nil {
		return nil, wrapError(err)
	}
	return &team, nil
}

// ListTeams returns all teams ordered by name.
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams := []models.Team{}
	if err := r.db.SelectContext(ctx, &teams, `SELECT * FROM teams ORDER BY name`); err != nil {
		return nil, err
	}
	return teams, nil
}

// UpdateTeam updates a team's name.
func (r *Repository) UpdateTeam(ctx context.Context, team *models.Team) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE teams SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		team.Name, team.ID)
	return err
}

// DeleteTeam deletes a team; dependent rows cascade.
func (r *Repository) DeleteTeam(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	return err
}
