// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import (
	"database/sql"
	"time"
)

// Event is a match, training session or other calendar entry for a team.
type Event struct { //nolint:govet // fieldalignment: readability over optimization
	ID          int64        `db:"id" json:"id"`
	TeamID      int64        `db:"team_id" json:"team_id"`
	Title       string       `db:"title" json:"title"`
	Description string       `db:"description" json:"description"`
	Type        string       `db:"type" json:"type"`
	StartDate   time.Time    `db:"start_date" json:"start_date"`
	EndDate     sql.NullTime `db:"end_date" json:"end_date"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

// News is an announcement published for a team.
type News struct { //nolint:govet // fieldalignment: readability over optimization
	ID        int64     `db:"id" json:"id"`
	TeamID    int64     `db:"team_id" json:"team_id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
