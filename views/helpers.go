package views

import (
	"fmt"

	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
)

// matchClass is the css class of a match card
func matchClass(m bracket.Match) string {
	switch m.State() {
	case bracket.MatchReady:
		return "match ready"
	case bracket.MatchCompleted:
		return "match completed"
	case bracket.MatchAutoCompleted:
		return "match bye"
	default:
		return "match pending"
	}
}

func slotClass(m bracket.Match, s bracket.Slot) string {
	if m.IsWinner(s) {
		return "slot winner"
	}
	return "slot"
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func formatAverage(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func tournamentStatus(t bracket.Tournament) string {
	if t.Completed && t.Winner != nil {
		return "Winner: " + *t.Winner
	}
	return fmt.Sprintf("In progress, %s", t.RoundName(t.CurrentRound()))
}
