package views

import (
	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
	"github.com/AdamBeresnev/table-tennis-app/internal/utils"
)

type RoundView struct {
	Number  int
	Name    string
	Matches []bracket.Match
}

type BracketData struct {
	Rounds  []RoundView
	Current int
	// Champion is empty until the final is decided
	Champion string
}

// PrepareBracketData lays the tournament out round by round in bracket
// order, ready for rendering
func PrepareBracketData(t *bracket.Tournament) BracketData {
	data := BracketData{
		Current:  t.CurrentRound(),
		Champion: utils.OrZero(t.Winner),
	}

	for _, r := range t.Rounds {
		rv := RoundView{Number: r.Number, Name: t.RoundName(r.Number)}
		for _, m := range t.RoundMatches(r.Number) {
			rv.Matches = append(rv.Matches, *m)
		}
		data.Rounds = append(data.Rounds, rv)
	}
	return data
}
