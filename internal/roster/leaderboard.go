package roster

import (
	"cmp"
	"slices"
	"strings"
)

// Leaderboard orders players by wins, then win rate, then name
func Leaderboard(players []Player) []Player {
	ranked := slices.Clone(players)
	slices.SortStableFunc(ranked, func(a, b Player) int {
		if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
			return c
		}
		if c := cmp.Compare(b.WinRate(), a.WinRate()); c != 0 {
			return c
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return ranked
}

func SortByName(players []Player) {
	slices.SortFunc(players, func(a, b Player) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}
