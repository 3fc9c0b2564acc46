package scoring

import "time"

// MatchRecord is an entry in the match history. Names are kept so the
// history still reads after a player is deleted.
type MatchRecord struct {
	ID           string    `json:"id"`
	Player1      string    `json:"player1"`
	Player2      string    `json:"player2"`
	Player1ID    string    `json:"player1Id"`
	Player2ID    string    `json:"player2Id"`
	Score1       int       `json:"score1"`
	Score2       int       `json:"score2"`
	TournamentID *string   `json:"tournamentId,omitempty"`
	Date         time.Time `json:"date"`
}

func (r *MatchRecord) WinnerName() string {
	if r.Score1 > r.Score2 {
		return r.Player1
	}
	return r.Player2
}
