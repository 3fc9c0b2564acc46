package roster

import (
	"time"

	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
)

// Player is a roster member together with their running stats. Games are the
// individual games inside a best-of-N match.
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Wins      int       `json:"wins"`
	Losses    int       `json:"losses"`
	GamesWon  int       `json:"gamesWon"`
	GamesLost int       `json:"gamesLost"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *Player) TotalMatches() int {
	return p.Wins + p.Losses
}

// WinRate is a percentage, 0 for a player without matches
func (p *Player) WinRate() float64 {
	total := p.TotalMatches()
	if total == 0 {
		return 0
	}
	return float64(p.Wins) / float64(total) * 100
}

func (p *Player) AverageGamesPerMatch() float64 {
	total := p.TotalMatches()
	if total == 0 {
		return 0
	}
	return float64(p.GamesWon) / float64(total)
}

func (p *Player) RecordWin(gamesWon, gamesLost int) {
	p.Wins++
	p.GamesWon += gamesWon
	p.GamesLost += gamesLost
}

func (p *Player) RecordLoss(gamesWon, gamesLost int) {
	p.Losses++
	p.GamesWon += gamesWon
	p.GamesLost += gamesLost
}

// Entrant is the copy of the player that goes into a bracket
func (p *Player) Entrant() bracket.Entrant {
	return bracket.Entrant{ID: p.ID, Name: p.Name}
}
