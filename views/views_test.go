package views

import (
	"bytes"
	"context"
	"math/rand/v2"
	"net/http/httptest"
	"testing"

	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
	"github.com/AdamBeresnev/table-tennis-app/internal/roster"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTournament(t *testing.T, names ...string) *bracket.Tournament {
	t.Helper()
	entrants := make([]bracket.Entrant, len(names))
	for i, n := range names {
		entrants[i] = bracket.Entrant{ID: n, Name: n}
	}
	tournament, err := bracket.NewBuilder(rand.New(rand.NewPCG(3, 4))).Build("Open <Cup>", entrants, 3)
	require.NoError(t, err)
	return tournament
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestPrepareBracketData(t *testing.T) {
	tournament := buildTournament(t, "A", "B", "C", "D", "E")

	data := PrepareBracketData(tournament)
	require.Len(t, data.Rounds, 3)
	assert.Equal(t, "Round 1", data.Rounds[0].Name)
	assert.Equal(t, "Semi-Finals", data.Rounds[1].Name)
	assert.Equal(t, "Finals", data.Rounds[2].Name)
	assert.Len(t, data.Rounds[0].Matches, 3)
	assert.Len(t, data.Rounds[1].Matches, 2)
	assert.Equal(t, 1, data.Current)
	assert.Empty(t, data.Champion)

	for i, m := range data.Rounds[0].Matches {
		assert.Equal(t, i+1, m.Order)
	}
}

func TestTournamentView(t *testing.T) {
	tournament := buildTournament(t, "Ann", "Bob", "Cid")

	html := render(t, TournamentView(tournament))
	assert.Contains(t, html, "Open &lt;Cup&gt;")
	assert.NotContains(t, html, "<Cup>")
	assert.Contains(t, html, "BYE")
	assert.Contains(t, html, `class="match ready"`)
	assert.Contains(t, html, `class="match bye"`)

	m := tournament.PlayableMatches()[0]
	require.NoError(t, tournament.RecordResult(m.ID, 2, 0, *m.SlotA.Entrant))
	final := tournament.Final()
	require.NoError(t, tournament.RecordResult(final.ID, 2, 1, *final.SlotA.Entrant))

	html = render(t, TournamentView(tournament))
	assert.Contains(t, html, "Champion: "+*tournament.Winner)
	assert.Contains(t, html, `class="slot winner"`)
}

func TestIndex(t *testing.T) {
	assert.Contains(t, render(t, Index(nil)), "No tournaments yet.")

	tournament := buildTournament(t, "Ann", "Bob")
	html := render(t, Index([]bracket.Tournament{*tournament}))
	assert.Contains(t, html, `href="/tournaments/`+tournament.ID+`"`)
	assert.Contains(t, html, "Best of 3")
	assert.Contains(t, html, "In progress, Finals")
}

func TestLeaderboardView(t *testing.T) {
	players := []roster.Player{
		{ID: "1", Name: "Tim & Tom", Wins: 3, Losses: 1, GamesWon: 7, GamesLost: 3},
		{ID: "2", Name: "Newcomer"},
	}

	rec := httptest.NewRecorder()
	require.NoError(t, Render(rec, httptest.NewRequest("GET", "/leaderboard", nil), LeaderboardView(players)))

	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Tim &amp; Tom")
	assert.Contains(t, body, "75.0%")
	assert.Contains(t, body, "7-3")
	assert.Contains(t, body, "<th>Games/match</th>")
	assert.Contains(t, body, "<td>1.75</td>")
	assert.Contains(t, body, "<td>0.00</td>")
	assert.Contains(t, body, "<title>Leaderboard | Table Tennis Pro</title>")
}

func TestRoundColumnMarksCurrentRound(t *testing.T) {
	tournament := buildTournament(t, "Ann", "Bob", "Cid", "Dan")
	data := PrepareBracketData(tournament)

	assert.Contains(t, render(t, RoundColumn(data.Rounds[0], true)), `<section class="round current">`)
	assert.Contains(t, render(t, RoundColumn(data.Rounds[1], false)), `<section class="round">`)
}
