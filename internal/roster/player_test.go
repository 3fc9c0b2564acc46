package roster

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPlayerStats(t *testing.T) {
	p := Player{ID: "1", Name: "Ma Long"}
	assert.Equal(t, 0, p.TotalMatches())
	assert.Zero(t, p.WinRate())
	assert.Zero(t, p.AverageGamesPerMatch())

	p.RecordWin(3, 1)
	p.RecordWin(3, 2)
	p.RecordLoss(1, 3)
	p.RecordWin(3, 0)

	assert.Equal(t, 4, p.TotalMatches())
	assert.Equal(t, 3, p.Wins)
	assert.Equal(t, 1, p.Losses)
	assert.Equal(t, 10, p.GamesWon)
	assert.Equal(t, 6, p.GamesLost)
	assert.InDelta(t, 75.0, p.WinRate(), 0.001)
	assert.InDelta(t, 2.5, p.AverageGamesPerMatch(), 0.001)
}

func TestPlayerEntrant(t *testing.T) {
	p := Player{ID: "42", Name: "Timo Boll", Wins: 9}
	e := p.Entrant()
	assert.Equal(t, "42", e.ID)
	assert.Equal(t, "Timo Boll", e.Name)

	// Entrants are copies
	e.Name = "Other"
	assert.Equal(t, "Timo Boll", p.Name)
}

func TestLeaderboard(t *testing.T) {
	players := []Player{
		{ID: "1", Name: "carol", Wins: 2, Losses: 2},
		{ID: "2", Name: "alice", Wins: 5, Losses: 1},
		{ID: "3", Name: "Bob", Wins: 2, Losses: 0},
		{ID: "4", Name: "dave", Wins: 2, Losses: 2},
		{ID: "5", Name: "erin"},
	}

	ranked := Leaderboard(players)

	var names []string
	for _, p := range ranked {
		names = append(names, p.Name)
	}
	expected := []string{"alice", "Bob", "carol", "dave", "erin"}
	if diff := cmp.Diff(expected, names); diff != "" {
		t.Errorf("leaderboard order mismatch (-want +got):\n%s", diff)
	}

	// Input is left alone
	assert.Equal(t, "carol", players[0].Name)
}

func TestSortByName(t *testing.T) {
	players := []Player{{Name: "zed"}, {Name: "Anna"}, {Name: "bert"}}
	SortByName(players)
	assert.Equal(t, "Anna", players[0].Name)
	assert.Equal(t, "bert", players[1].Name)
	assert.Equal(t, "zed", players[2].Name)
}
