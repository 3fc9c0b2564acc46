package service

import (
	"context"
	"strings"
	"testing"

	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
	"github.com/AdamBeresnev/table-tennis-app/internal/scoring"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPlayer(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	player, err := s.players.AddPlayer(ctx, "  Ma   Long ")
	require.NoError(t, err)
	assert.Equal(t, "Ma Long", player.Name)
	assert.NotEmpty(t, player.ID)
	assert.Zero(t, player.TotalMatches())

	fetched, err := s.players.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, player.Name, fetched.Name)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.PlayersAdded))
}

func TestAddPlayer_Rejected(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	_, err := s.players.AddPlayer(ctx, "Fan Zhendong")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "empty", input: "", expected: ErrInvalidPlayerName},
		{name: "whitespace", input: "   ", expected: ErrInvalidPlayerName},
		{name: "too long", input: strings.Repeat("x", MaxNameLength+1), expected: ErrInvalidPlayerName},
		{name: "duplicate", input: "Fan Zhendong", expected: ErrDuplicatePlayer},
		{name: "duplicate other case", input: "fan  ZHENDONG", expected: ErrDuplicatePlayer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.players.AddPlayer(ctx, tc.input)
			assert.ErrorIs(t, err, tc.expected)
		})
	}

	players, err := s.players.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 1)

	_, err = s.players.AddPlayer(ctx, strings.Repeat("x", MaxNameLength))
	assert.NoError(t, err)
}

func TestDeletePlayer(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	players := addPlayers(t, s.players, 2)
	require.NoError(t, s.players.DeletePlayer(ctx, players[0].ID))

	_, err := s.players.GetPlayer(ctx, players[0].ID)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.ErrorIs(t, s.players.DeletePlayer(ctx, players[0].ID), ErrPlayerNotFound)

	remaining, err := s.players.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, players[1].ID, remaining[0].ID)
}

func TestEntrants(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	players := addPlayers(t, s.players, 3)
	ids := []string{players[2].ID, players[0].ID, players[2].ID, players[1].ID}

	entrants, err := s.players.Entrants(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, []bracket.Entrant{players[2].Entrant(), players[0].Entrant(), players[1].Entrant()}, entrants)

	_, err = s.players.Entrants(ctx, []string{players[0].ID, "missing"})
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestLeaderboardAfterMatches(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	players := addPlayers(t, s.players, 3)
	a, b, c := players[0], players[1], players[2]

	play := func(winner, loser string) {
		session, err := s.matches.StartFreestyle(ctx, winner, loser, 1)
		require.NoError(t, err)
		require.NoError(t, session.Point(scoring.SideA))
		_, err = s.matches.Complete(ctx, session)
		require.NoError(t, err)
	}
	play(c.ID, a.ID)
	play(c.ID, b.ID)
	play(b.ID, a.ID)

	board, err := s.players.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, c.ID, board[0].ID)
	assert.Equal(t, b.ID, board[1].ID)
	assert.Equal(t, a.ID, board[2].ID)
	assert.Equal(t, 2, board[0].Wins)
	assert.Equal(t, 2, board[2].Losses)
}
