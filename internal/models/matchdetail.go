// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// Card colors.
const (
	CardYellow = "yellow"
	CardRed    = "red"
)

// LineupEntry places a player in the starting lineup of an event.
type LineupEntry struct { //nolint:govet // fieldalignment: readability over optimization
	ID        int64     `db:"id" json:"id"`
	EventID   int64     `db:"event_id" json:"event_id"`
	PlayerID  int64     `db:"player_id" json:"player_id"`
	Position  string    `db:"position" json:"position"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Goal records a goal scored during an event.
type Goal struct { //nolint:govet // fieldalignment: readability over optimization
	ID        int64     `db:"id" json:"id"`
	EventID   int64     `db:"event_id" json:"event_id"`
	PlayerID  int64     `db:"player_id" json:"player_id"`
	Minute    int       `db:"minute" json:"minute"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Card records a yellow or red card shown during an event.
type Card struct { //nolint:govet // fieldalignment: readability over optimization
	ID        int64     `db:"id" json:"id"`
	EventID   int64     `db:"event_id" json:"event_id"`
	PlayerID  int64     `db:"player_id" json:"player_id"`
	Minute    int       `db:"minute" json:"minute"`
	Color     string    `db:"color" json:"color"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Substitution records a player swap during an event.
type Substitution struct { //nolint:govet // fieldalignment: readability over optimization
	ID          int64     `db:"id" json:"id"`
	EventID     int64     `db:"event_id" json:"event_id"`
	PlayerOutID int64     `db:"player_out_id" json:"player_out_id"`
	PlayerInID  int64     `db:"player_in_id" json:"player_in_id"`
	Minute      int       `db:"minute" json:"minute"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Commentary is a minute-stamped live commentary line for an event.
type Commentary struct { //nolint:govet // fieldalignment: readability over optimization
	ID        int64     `db:"id" json:"id"`
	EventID   int64     `db:"event_id" json:"event_id"`
	Minute    int       `db:"minute" json:"minute"`
	Text      string    `db:"text" json:"text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
