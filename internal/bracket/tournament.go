package bracket

import (
	"fmt"
	"time"
)

type Round struct {
	Number   int      `json:"number"`
	MatchIDs []string `json:"matchIds"`
}

type Tournament struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Format    int       `json:"format"`
	Entrants  []Entrant `json:"entrants"`
	Matches   []Match   `json:"matches"`
	Rounds    []Round   `json:"rounds"`
	Completed bool      `json:"completed"`
	Winner    *string   `json:"winner,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FirstTo is the number of games needed to take a best-of-Format match
func (t *Tournament) FirstTo() int {
	return FirstTo(t.Format)
}

func FirstTo(format int) int {
	return (format + 1) / 2
}

func (t *Tournament) Match(id string) (*Match, error) {
	for i := range t.Matches {
		if t.Matches[i].ID == id {
			return &t.Matches[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownMatch, id)
}

// Final returns the single match of the last round
func (t *Tournament) Final() *Match {
	if len(t.Rounds) == 0 {
		return nil
	}
	last := t.Rounds[len(t.Rounds)-1]
	if len(last.MatchIDs) != 1 {
		return nil
	}
	m, err := t.Match(last.MatchIDs[0])
	if err != nil {
		return nil
	}
	return m
}

func (t *Tournament) PlayableMatches() []*Match {
	var playable []*Match
	for _, r := range t.Rounds {
		for _, id := range r.MatchIDs {
			if m, err := t.Match(id); err == nil && m.Playable() {
				playable = append(playable, m)
			}
		}
	}
	return playable
}

// CurrentRound is the lowest round that still has an undecided match, or the
// last round once the tournament is over
func (t *Tournament) CurrentRound() int {
	for _, r := range t.Rounds {
		for _, id := range r.MatchIDs {
			if m, err := t.Match(id); err == nil && !m.Completed {
				return r.Number
			}
		}
	}
	return len(t.Rounds)
}

func (t *Tournament) RoundMatches(number int) []*Match {
	if number < 1 || number > len(t.Rounds) {
		return nil
	}
	ids := t.Rounds[number-1].MatchIDs
	matches := make([]*Match, 0, len(ids))
	for _, id := range ids {
		if m, err := t.Match(id); err == nil {
			matches = append(matches, m)
		}
	}
	return matches
}

func (t *Tournament) RoundName(number int) string {
	switch {
	case number == len(t.Rounds):
		return "Finals"
	case number == len(t.Rounds)-1:
		return "Semi-Finals"
	default:
		return fmt.Sprintf("Round %d", number)
	}
}

func (t *Tournament) Clone() *Tournament {
	c := *t
	c.Entrants = append([]Entrant(nil), t.Entrants...)
	c.Matches = make([]Match, len(t.Matches))
	for i := range t.Matches {
		c.Matches[i] = t.Matches[i].clone()
	}
	c.Rounds = make([]Round, len(t.Rounds))
	for i, r := range t.Rounds {
		c.Rounds[i] = Round{Number: r.Number, MatchIDs: append([]string(nil), r.MatchIDs...)}
	}
	if t.Winner != nil {
		w := *t.Winner
		c.Winner = &w
	}
	return &c
}
