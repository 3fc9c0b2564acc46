package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
	"github.com/AdamBeresnev/table-tennis-app/internal/roster"
	"github.com/AdamBeresnev/table-tennis-app/internal/scoring"
	"github.com/AdamBeresnev/table-tennis-app/internal/utils"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndGetTournament(t *testing.T) {
	ctx := context.Background()
	store := NewTournamentStore(setupTestKV(t))

	entrants := []bracket.Entrant{
		{ID: uuid.NewString(), Name: "Entry 1"},
		{ID: uuid.NewString(), Name: "Entry 2"},
		{ID: uuid.NewString(), Name: "Entry 3"},
	}
	tournament, err := bracket.Build("Test Tournament", entrants, 3)
	require.NoError(t, err)

	require.NoError(t, store.SaveTournament(ctx, tournament))

	fetched, err := store.GetTournament(ctx, tournament.ID)
	require.NoError(t, err)

	assert.Equal(t, tournament.ID, fetched.ID)
	assert.Equal(t, tournament.Name, fetched.Name)
	assert.Equal(t, tournament.Format, fetched.Format)
	assert.Equal(t, tournament.Entrants, fetched.Entrants)
	assert.Equal(t, tournament.Rounds, fetched.Rounds)
	assert.Equal(t, tournament.Matches, fetched.Matches)
	assert.False(t, fetched.Completed)
	assert.Nil(t, fetched.Winner)
	assert.WithinDuration(t, tournament.CreatedAt, fetched.CreatedAt, time.Second)

	// Slots survive the round trip with their state
	bye := fetched.RoundMatches(1)[1]
	assert.True(t, bye.SlotB.IsBye())
	assert.True(t, bye.Completed)
}

func TestSaveTournamentOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewTournamentStore(setupTestKV(t))

	tournament, err := bracket.Build("Final", []bracket.Entrant{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}, 1)
	require.NoError(t, err)
	require.NoError(t, store.SaveTournament(ctx, tournament))

	m := tournament.Matches[0]
	require.NoError(t, tournament.RecordResult(m.ID, 1, 0, *m.SlotA.Entrant))
	require.NoError(t, store.SaveTournament(ctx, tournament))

	fetched, err := store.GetTournament(ctx, tournament.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Completed)
	assert.Equal(t, utils.OrZero(tournament.Winner), utils.OrZero(fetched.Winner))

	all, err := store.GetTournaments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetTournamentsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewTournamentStore(setupTestKV(t))

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"Old", "Newest", "Middle"} {
		offsets := []time.Duration{0, 48 * time.Hour, 24 * time.Hour}
		tournament := &bracket.Tournament{
			ID:        uuid.NewString(),
			Name:      name,
			Format:    3,
			CreatedAt: base.Add(offsets[i]),
		}
		require.NoError(t, store.SaveTournament(ctx, tournament))
	}

	tournaments, err := store.GetTournaments(ctx)
	require.NoError(t, err)
	require.Len(t, tournaments, 3)
	assert.Equal(t, "Newest", tournaments[0].Name)
	assert.Equal(t, "Middle", tournaments[1].Name)
	assert.Equal(t, "Old", tournaments[2].Name)
}

func TestDeleteTournament(t *testing.T) {
	ctx := context.Background()
	store := NewTournamentStore(setupTestKV(t))

	tournament := &bracket.Tournament{ID: uuid.NewString(), Name: "Gone", Format: 3}
	require.NoError(t, store.SaveTournament(ctx, tournament))

	require.NoError(t, store.DeleteTournament(ctx, tournament.ID))
	_, err := store.GetTournament(ctx, tournament.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.DeleteTournament(ctx, tournament.ID), ErrNotFound)
}

func TestPlayerStore(t *testing.T) {
	ctx := context.Background()
	store := NewPlayerStore(setupTestKV(t))
	faker := gofakeit.New(7)

	var saved []roster.Player
	for i := 0; i < 5; i++ {
		p := roster.Player{
			ID:        uuid.NewString(),
			Name:      faker.Name(),
			Wins:      faker.Number(0, 10),
			Losses:    faker.Number(0, 10),
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, store.SavePlayer(ctx, &p))
		saved = append(saved, p)
	}

	fetched, err := store.GetPlayer(ctx, saved[2].ID)
	require.NoError(t, err)
	assert.Equal(t, saved[2].Name, fetched.Name)
	assert.Equal(t, saved[2].Wins, fetched.Wins)

	players, err := store.GetPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 5)
	for i := 1; i < len(players); i++ {
		assert.LessOrEqual(t, strings.ToLower(players[i-1].Name), strings.ToLower(players[i].Name))
	}

	require.NoError(t, store.DeletePlayer(ctx, saved[0].ID))
	_, err = store.GetPlayer(ctx, saved[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMatchStore(t *testing.T) {
	ctx := context.Background()
	store := NewMatchStore(setupTestKV(t))

	base := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	records := []scoring.MatchRecord{
		{ID: "1", Player1: "A", Player1ID: "a", Player2: "B", Player2ID: "b", Score1: 2, Score2: 0, Date: base},
		{ID: "2", Player1: "C", Player1ID: "c", Player2: "A", Player2ID: "a", Score1: 1, Score2: 2, Date: base.Add(time.Hour), TournamentID: utils.Ptr("t1")},
		{ID: "3", Player1: "B", Player1ID: "b", Player2: "C", Player2ID: "c", Score1: 3, Score2: 1, Date: base.Add(2 * time.Hour)},
	}
	for i := range records {
		require.NoError(t, store.SaveMatch(ctx, &records[i]))
	}

	all, err := store.GetMatches(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "3", all[0].ID)
	assert.Equal(t, "1", all[2].ID)
	require.NotNil(t, all[1].TournamentID)
	assert.Equal(t, "t1", *all[1].TournamentID)

	forA, err := store.GetMatchesForPlayer(ctx, "a")
	require.NoError(t, err)
	require.Len(t, forA, 2)
	assert.Equal(t, "2", forA[0].ID)
	assert.Equal(t, "1", forA[1].ID)
}
