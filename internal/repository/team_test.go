// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/Toitw/sport-team-manager-sub000/internal/models"
	"github.com/Toitw/sport-team-manager-sub000/internal/repository"
	"github.com/Toitw/sport-team-manager-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamCRUD(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()
	owner := testutil.NewTestUser(t, repo, "owner@example.com", models.RoleManager)

	team := &models.Team{Name: "FC Example", CreatedByID: owner.ID}
	require.NoError(t, repo.CreateTeam(ctx, team))
	assert.NotZero(t, team.ID)

	stored, err := repo.GetTeamByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "FC Example", stored.Name)
	assert.Equal(t, owner.ID, stored.CreatedByID)

	stored.Name = "FC Renamed"
	require.NoError(t, repo.UpdateTeam(ctx, stored))
	updated, err := repo.GetTeamByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "FC Renamed", updated.Name)

	require.NoError(t, repo.DeleteTeam(ctx, team.ID))
	_, err = repo.GetTeamByID(ctx, team.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListTeamsOrderedByName(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()
	owner := testutil.NewTestUser(t, repo, "owner@example.com", models.RoleManager)

	testutil.NewTestTeam(t, repo, owner.ID, "Zebras")
	testutil.NewTestTeam(t, repo, owner.ID, "Antelopes")

	teams, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Antelopes", teams[0].Name)
	assert.Equal(t, "Zebras", teams[1].Name)
}

func TestListPlayersOrderedByNumber(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()
	owner := testutil.NewTestUser(t, repo, "owner@example.com", models.RoleManager)
	team := testutil.NewTestTeam(t, repo, owner.ID, "FC Example")

	keeper := &models.Player{TeamID: team.ID, Name: "Keeper", Position: "Goalkeeper", Number: 1}
	striker := &models.Player{TeamID: team.ID, Name: "Striker", Position: "Forward", Number: 9}
	require.NoError(t, repo.CreatePlayer(ctx, striker))
	require.NoError(t, repo.CreatePlayer(ctx, keeper))

	players, err := repo.ListPlayersByTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Keeper", players[0].Name)
	assert.Equal(t, "Striker", players[1].Name)
}

func TestDeleteTeamCascades(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()
	owner := testutil.NewTestUser(t, repo, "owner@example.com", models.RoleManager)
	team := testutil.NewTestTeam(t, repo, owner.ID, "FC Example")
	player := testutil.NewTestPlayer(t, repo, team.ID, "Striker")

	event := &models.Event{TeamID: team.ID, Title: "Cup final", Type: "match", StartDate: time.Now()}
	require.NoError(t, repo.CreateEvent(ctx, event))
	require.NoError(t, repo.CreateGoal(ctx, &models.Goal{EventID: event.ID, PlayerID: player.ID, Minute: 12}))

	require.NoError(t, repo.DeleteTeam(ctx, team.ID))

	_, err := repo.GetPlayerByID(ctx, player.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.GetEventByID(ctx, event.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	goals, err := repo.ListGoalsByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestMatchDetailsOrderedByMinute(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()
	owner := testutil.NewTestUser(t, repo, "owner@example.com", models.RoleManager)
	team := testutil.NewTestTeam(t, repo, owner.ID, "FC Example")
	player := testutil.NewTestPlayer(t, repo, team.ID, "Striker")

	event := &models.Event{TeamID: team.ID, Title: "Derby", Type: "match", StartDate: time.Now()}
	require.NoError(t, repo.CreateEvent(ctx, event))

	require.NoError(t, repo.CreateGoal(ctx, &models.Goal{EventID: event.ID, PlayerID: player.ID, Minute: 78}))
	require.NoError(t, repo.CreateGoal(ctx, &models.Goal{EventID: event.ID, PlayerID: player.ID, Minute: 12}))

	goals, err := repo.ListGoalsByEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, 12, goals[0].Minute)
	assert.Equal(t, 78, goals[1].Minute)

	require.NoError(t, repo.CreateCommentary(ctx, &models.Commentary{EventID: event.ID, Minute: 90, Text: "Full time"}))
	require.NoError(t, repo.CreateCommentary(ctx, &models.Commentary{EventID: event.ID, Minute: 1, Text: "Kick off"}))

	lines, err := repo.ListCommentaryByEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Kick off", lines[0].Text)
	assert.Equal(t, "Full time", lines[1].Text)
}
