package bracket

type MatchState string

const (
	MatchPending       MatchState = "pending"
	MatchReady         MatchState = "ready"
	MatchCompleted     MatchState = "completed"
	MatchAutoCompleted MatchState = "auto_completed"
)

type Match struct {
	ID string `json:"id"`

	// Position in the bracket for reconstructing the view
	Round int `json:"round"`
	Order int `json:"order"`

	SlotA Slot `json:"slotA"`
	SlotB Slot `json:"slotB"`

	ScoreA int `json:"scoreA"`
	ScoreB int `json:"scoreB"`

	Winner    *Entrant `json:"winner,omitempty"`
	Completed bool     `json:"completed"`
	IsBye     bool     `json:"isBye"`

	NextMatchID *string `json:"nextMatchId,omitempty"`
}

// Playable reports whether a result can be recorded against the match
func (m *Match) Playable() bool {
	return !m.Completed &&
		m.SlotA.IsFilled() && m.SlotB.IsFilled()
}

func (m *Match) State() MatchState {
	switch {
	case m.Completed && m.IsBye:
		return MatchAutoCompleted
	case m.Completed:
		return MatchCompleted
	case m.Playable():
		return MatchReady
	default:
		return MatchPending
	}
}

func (m *Match) IsFinal() bool {
	return m.NextMatchID == nil
}

func (m *Match) HasEntrant(id string) bool {
	return m.SlotA.holds(id) || m.SlotB.holds(id)
}

func (m *Match) IsWinner(slot Slot) bool {
	return m.Completed && m.Winner != nil && slot.holds(m.Winner.ID)
}

func (m *Match) clone() Match {
	c := *m
	c.SlotA = m.SlotA.clone()
	c.SlotB = m.SlotB.clone()
	if m.Winner != nil {
		w := *m.Winner
		c.Winner = &w
	}
	if m.NextMatchID != nil {
		id := *m.NextMatchID
		c.NextMatchID = &id
	}
	return c
}

// autoComplete resolves a match whose only present entrant faces a bye
func (m *Match) autoComplete() {
	e := *m.SlotA.Entrant
	m.Winner = &e
	m.Completed = true
	m.IsBye = true
}
