package scoring

import (
	"errors"
	"fmt"
	"time"

	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
)

type Side string

const (
	SideA Side = "a"
	SideB Side = "b"
)

var (
	ErrSamePlayer     = errors.New("a player cannot play against themselves")
	ErrInvalidFormat  = errors.New("format must be a positive number of games")
	ErrInvalidSide    = errors.New("side must be a or b")
	ErrMatchDecided   = errors.New("match is already decided")
	ErrMatchUndecided = errors.New("match is not decided yet")
)

// Session is a match being scored game by game. It belongs to a tournament
// when TournamentMatchID is set.
type Session struct {
	PlayerA bracket.Entrant `json:"playerA"`
	PlayerB bracket.Entrant `json:"playerB"`
	ScoreA  int             `json:"scoreA"`
	ScoreB  int             `json:"scoreB"`
	Format  int             `json:"format"`
	FirstTo int             `json:"firstTo"`

	TournamentID      *string `json:"tournamentId,omitempty"`
	TournamentMatchID *string `json:"tournamentMatchId,omitempty"`

	StartedAt time.Time `json:"startedAt"`
}

func NewSession(a, b bracket.Entrant, format int) (*Session, error) {
	if a.ID == b.ID {
		return nil, ErrSamePlayer
	}
	if format < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFormat, format)
	}
	return &Session{
		PlayerA:   a,
		PlayerB:   b,
		Format:    format,
		FirstTo:   bracket.FirstTo(format),
		StartedAt: time.Now().UTC(),
	}, nil
}

// ForTournament ties the session to a bracket match
func (s *Session) ForTournament(tournamentID, matchID string) *Session {
	s.TournamentID = &tournamentID
	s.TournamentMatchID = &matchID
	return s
}

func (s *Session) Decided() bool {
	return s.ScoreA >= s.FirstTo || s.ScoreB >= s.FirstTo
}

func (s *Session) Point(side Side) error {
	if s.Decided() {
		return ErrMatchDecided
	}
	switch side {
	case SideA:
		s.ScoreA++
	case SideB:
		s.ScoreB++
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidSide, side)
	}
	return nil
}

func (s *Session) Undo(side Side) error {
	switch side {
	case SideA:
		if s.ScoreA > 0 {
			s.ScoreA--
		}
	case SideB:
		if s.ScoreB > 0 {
			s.ScoreB--
		}
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidSide, side)
	}
	return nil
}

type Outcome struct {
	Winner      bracket.Entrant
	Loser       bracket.Entrant
	WinnerScore int
	LoserScore  int
}

func (s *Session) Outcome() (Outcome, error) {
	if !s.Decided() {
		return Outcome{}, ErrMatchUndecided
	}
	return s.standing(), nil
}

// Leader is the outcome of a match stopped early: whoever is ahead wins.
// A level score has no leader.
func (s *Session) Leader() (Outcome, error) {
	if s.ScoreA == s.ScoreB {
		return Outcome{}, fmt.Errorf("%w: level at %d-%d", ErrMatchUndecided, s.ScoreA, s.ScoreB)
	}
	return s.standing(), nil
}

func (s *Session) standing() Outcome {
	if s.ScoreA > s.ScoreB {
		return Outcome{Winner: s.PlayerA, Loser: s.PlayerB, WinnerScore: s.ScoreA, LoserScore: s.ScoreB}
	}
	return Outcome{Winner: s.PlayerB, Loser: s.PlayerA, WinnerScore: s.ScoreB, LoserScore: s.ScoreA}
}
