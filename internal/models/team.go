// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// Team is the root entity; players, events and news hang off it.
type Team struct { //nolint:govet // fieldalignment: readability over optimization
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	CreatedByID int64     `db:"created_by_id" json:"created_by_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Player belongs to a team.
type Player struct { //nolint:govet // fieldalignment: readability over optimization
	ID        int64     `db:"id" json:"id"`
	TeamID    int64     `db:"team_id" json:"team_id"`
	Name      string    `db:"name" json:"name"`
	Position  string    `db:"position" json:"position"`
	Number    int       `db:"number" json:"number"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
