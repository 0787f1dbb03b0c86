// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"github.com/Toitw/sport-team-manager-sub000/internal/models"
)

// CreatePlayer inserts a new player.
func (r *Repository) CreatePlayer(ctx context.Context, player *models.Player) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO players (team_id, name, position, number) VALUES (?, ?, ?, ?)`,
		player.TeamID, player.Name, player.Position, player.Number)
	if err != nil {
		return wrapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	player.ID = id
	return nil
}

// GetPlayerByID retrieves a player by ID.
func (r *Repository) GetPlayerByID(ctx context.Context, id int64) (*models.Player, error) {
	var player models.Player
	if err := r.db.GetContext(ctx, &player, `SELECT * FROM players WHERE id = ?`, id); err != nil {
		return nil, wrapError(err)
	}
	return &player, nil
}

// ListPlayersByTeam returns all players of a team ordered by shirt number.
func (r *Repository) ListPlayersByTeam(ctx context.Context, teamID int64) ([]models.Player, error) {
	players := []models.Player{}
	err := r.db.SelectContext(ctx, &players,
		`SELECT * FROM players WHERE team_id = ? ORDER BY number, name`, teamID)
	if err != nil {
		return nil, err
	}
	return players, nil
}

// UpdatePlayer updates a player's attributes.
func (r *Repository) UpdatePlayer(ctx context.Context, player *models.Player) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE players SET name = ?, position = ?, number = ?,
		 updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		player.Name, player.Position, player.Number, player.ID)
	return err
}

// DeletePlayer deletes a player by ID.
func (r *Repository) DeletePlayer(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
	return err
}
