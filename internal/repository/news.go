// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"github.com/Toitw/sport-team-manager-sub000/internal/models"
)

// CreateNews inserts a new news entry.
func (r *Repository) CreateNews(ctx context.Context, news *models.News) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO news (team_id, title, content) VALUES (?, ?, ?)`,
		news.TeamID, news.Title, news.Content)
	if err != nil {
		return wrapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	news.ID = id
	return nil
}

// GetNewsByID retrieves a news entry by ID.
func (r *Repository) GetNewsByID(ctx context.Context, id int64) (*models.News, error) {
	var news models.News
	if err := r.db.GetContext(ctx, &news, `SELECT * FROM news WHERE id = ?`, id); err != nil {
		return nil, wrapError(err)
	}
	return &news, nil
}

// ListNewsByTeam returns all news of a team, newest first.
func (r *Repository) ListNewsByTeam(ctx context.Context, teamID int64) ([]models.News, error) {
	news := []models.News{}
	err := r.db.SelectContext(ctx, &news,
		`SELECT * FROM news WHERE team_id = ? ORDER BY created_at DESC`, teamID)
	if err != nil {
		return nil, err
	}
	return news, nil
}

// UpdateNews updates a news entry.
func (r *Repository) UpdateNews(ctx context.Context, news *models.News) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE news SET title = ?, content = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		news.Title, news.Content, news.ID)
	return err
}

// DeleteNews deletes a news entry by ID.
func (r *Repository) DeleteNews(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM news WHERE id = ?`, id)
	return err
}
