package bracket

import "fmt"

// RecordResult stores the outcome of a playable match and moves the winner
// forward. On error the tournament is left exactly as it was.
func (t *Tournament) RecordResult(matchID string, scoreA, scoreB int, winner Entrant) error {
	m, err := t.Match(matchID)
	if err != nil {
		return err
	}

	if m.Completed {
		return fmt.Errorf("%w: match %s is already completed", ErrInvalidResult, matchID)
	}
	if !m.Playable() {
		return fmt.Errorf("%w: match %s is not ready to be played", ErrInvalidResult, matchID)
	}
	if scoreA < 0 || scoreB < 0 {
		return fmt.Errorf("%w: scores cannot be negative", ErrInvalidResult)
	}
	if !m.HasEntrant(winner.ID) {
		return fmt.Errorf("%w: winner is not part of this match", ErrInvalidResult)
	}

	work := t.Clone()
	wm, _ := work.Match(matchID)

	w := *wm.SlotA.Entrant
	if wm.SlotB.holds(winner.ID) {
		w = *wm.SlotB.Entrant
	}
	wm.ScoreA = scoreA
	wm.ScoreB = scoreB
	wm.Winner = &w
	wm.Completed = true

	if err := work.advance(wm); err != nil {
		return err
	}

	*t = *work
	return nil
}

// Advance moves the winner of an already decided match into its successor, or
// finishes the tournament when the match is the final.
func (t *Tournament) Advance(matchID string) error {
	m, err := t.Match(matchID)
	if err != nil {
		return err
	}
	if !m.Completed || m.Winner == nil {
		return fmt.Errorf("%w: match %s has no winner yet", ErrInvalidResult, matchID)
	}

	work := t.Clone()
	wm, _ := work.Match(matchID)
	if err := work.advance(wm); err != nil {
		return err
	}

	*t = *work
	return nil
}

// advance mutates t in place, callers working on a live tournament go through
// a clone so a failure halfway leaves nothing behind
func (t *Tournament) advance(m *Match) error {
	if m.NextMatchID == nil {
		if t.Completed {
			return fmt.Errorf("%w: tournament %s already has a winner", ErrAlreadyResolved, t.ID)
		}
		name := m.Winner.Name
		t.Completed = true
		t.Winner = &name
		return nil
	}

	next, err := t.Match(*m.NextMatchID)
	if err != nil {
		return err
	}

	if next.HasEntrant(m.Winner.ID) {
		return fmt.Errorf("%w: %s already advanced to match %s", ErrAlreadyResolved, m.Winner.Name, next.ID)
	}

	switch {
	case next.SlotA.IsUnresolved():
		next.SlotA = Filled(*m.Winner)
	case next.SlotB.IsUnresolved():
		next.SlotB = Filled(*m.Winner)
	default:
		return fmt.Errorf("%w: match %s has both slots filled", ErrAlreadyResolved, next.ID)
	}

	// A placeholder with a single feeder resolves as soon as that feeder does
	if !next.Completed && next.SlotA.IsFilled() && next.SlotB.IsBye() {
		next.autoComplete()
		return t.advance(next)
	}

	return nil
}
