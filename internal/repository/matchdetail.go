// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"github.com/Toitw/sport-team-manager-sub000/internal/models"
)

// CreateLineupEntry adds a player to an event lineup.
func (r *Repository) CreateLineupEntry(ctx context.Context, entry *models.LineupEntry) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO lineup_entries (event_id, player_id, position) VALUES (?, ?, ?)`,
		entry.EventID, entry.PlayerID, entry.Position)
	if err != nil {
		return wrapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = id
	return nil
}

// ListLineupByEvent returns the lineup of an event.
func (r *Repository) ListLineupByEvent(ctx context.Context, eventID int64) ([]models.LineupEntry, error) {
	entries := []models.LineupEntry{}
	err := r.db.SelectContext(ctx, &entries,
		`SELECT * FROM lineup_entries WHERE event_id = ? ORDER BY id`, eventID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteLineupEntry removes a lineup entry.
func (r *Repository) DeleteLineupEntry(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM lineup_entries WHERE id = ?`, id)
	return err
}

// CreateGoal records a goal for an event.
func (r *Repository) CreateGoal(ctx context.Context, goal *models.Goal) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO goals (event_id, player_id, minute) VALUES (?, ?, ?)`,
		goal.EventID, goal.PlayerID, goal.Minute)
	if err != nil {
		return wrapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	goal.ID = id
	return nil
}

// ListGoalsByEvent returns the goals of an event in match order.
func (r *Repository) ListGoalsByEvent(ctx context.Context, eventID int64) ([]models.Goal, error) {
	goals := []models.Goal{}
	err := r.db.SelectContext(ctx, &goals,
		`SELECT * FROM goals WHERE event_id = ? ORDER BY minute, id`, eventID)
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// DeleteGoal removes a goal.
func (r *Repository) DeleteGoal(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	return err
}

// CreateCard records a card for an event.
func (r *Repository) CreateCard(ctx context.Context, card *models.Card) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO cards (event_id, player_id, minute, color) VALUES (?, ?, ?, ?)`,
		card.EventID, card.PlayerID, card.Minute, card.Color)
	if err != nil {
		return wrapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	card.ID = id
	return nil
}

// ListCardsByEvent returns the cards of an event in match order.
func (r *Repository) ListCardsByEvent(ctx context.Context, eventID int64) ([]models.Card, error) {
	cards := []models.Card{}
	err := r.db.SelectContext(ctx, &cards,
		`SELECT * FROM cards WHERE event_id = ? ORDER BY minute, id`, eventID)
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// DeleteCard removes a card.
func (r *Repository) DeleteCard(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
	return err
}

// CreateSubstitution records a substitution for an event.
func (r *Repository) CreateSubstitution(ctx context.Context, sub *models.Substitution) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO substitutions (event_id, player_out_id, player_in_id, minute)
		 VALUES (?, ?, ?, ?)`,
		sub.EventID, sub.PlayerOutID, sub.PlayerInID, sub.Minute)
	if err != nil {
		return wrapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	sub.ID = id
	return nil
}

// ListSubstitutionsByEvent returns the substitutions of an event in match order.
func (r *Repository) ListSubstitutionsByEvent(ctx context.Context, eventID int64) ([]models.Substitution, error) {
	subs := []models.Substitution{}
	err := r.db.SelectContext(ctx, &subs,
		`SELECT * FROM substitutions WHERE event_id = ? ORDER BY minute, id`, eventID)
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// DeleteSubstitution removes a substitution.
func (r *Repository) DeleteSubstitution(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM substitutions WHERE id = ?`, id)
	return err
}

// CreateCommentary records a commentary line for an event.
func (r *Repository) CreateCommentary(ctx context.Context, commentary *models.Commentary) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO commentaries (event_id, minute, text) VALUES (?, ?, ?)`,
		commentary.EventID, commentary.Minute, commentary.Text)
	if err != nil {
		return wrapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	commentary.ID = id
	return nil
}

// ListCommentaryByEvent returns the commentary of an event in match order.
func (r *Repository) ListCommentaryByEvent(ctx context.Context, eventID int64) ([]models.Commentary, error) {
	lines := []models.Commentary{}
	err := r.db.SelectContext(ctx, &lines,
		`SELECT * FROM commentaries WHERE event_id = ? ORDER BY minute, id`, eventID)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// DeleteCommentary removes a commentary line.
func (r *Repository) DeleteCommentary(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM commentaries WHERE id = ?`, id)
	return err
}
