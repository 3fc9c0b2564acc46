package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
	"github.com/AdamBeresnev/table-tennis-app/internal/metrics"
	"github.com/AdamBeresnev/table-tennis-app/internal/scoring"
	"github.com/AdamBeresnev/table-tennis-app/internal/store"
	"github.com/google/uuid"
)

// MatchService runs scoring sessions and turns finished ones into stats,
// history and bracket results
type MatchService struct {
	history     *store.MatchStore
	players     *PlayerService
	tournaments *TournamentService
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewMatchService(history *store.MatchStore, players *PlayerService, tournaments *TournamentService, m *metrics.Metrics) *MatchService {
	return &MatchService{
		history:     history,
		players:     players,
		tournaments: tournaments,
		metrics:     m,
		now:         time.Now,
	}
}

func (s *MatchService) StartFreestyle(ctx context.Context, playerAID, playerBID string, format int) (*scoring.Session, error) {
	if playerAID == playerBID {
		return nil, ErrSamePlayer
	}
	a, err := s.players.GetPlayer(ctx, playerAID)
	if err != nil {
		return nil, err
	}
	b, err := s.players.GetPlayer(ctx, playerBID)
	if err != nil {
		return nil, err
	}
	return scoring.NewSession(a.Entrant(), b.Entrant(), format)
}

// StartTournamentMatch opens a session for a ready bracket match, player A
// being the entrant in slot A
func (s *MatchService) StartTournamentMatch(ctx context.Context, tournamentID, matchID string) (*scoring.Session, error) {
	tournament, err := s.tournaments.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	m, err := tournament.Match(matchID)
	if err != nil {
		return nil, err
	}
	if !m.Playable() {
		return nil, fmt.Errorf("%w: match %s is not ready to be played", bracket.ErrInvalidResult, matchID)
	}

	session, err := scoring.NewSession(*m.SlotA.Entrant, *m.SlotB.Entrant, tournament.Format)
	if err != nil {
		return nil, err
	}
	return session.ForTournament(tournament.ID, m.ID), nil
}

// Complete finishes a decided session. Writes go bracket, then player
// stats, then history. The bracket goes first so a rejected result leaves
// stats and history untouched. Once any write has landed, a later failure
// is reported as ErrResultCommitted.
func (s *MatchService) Complete(ctx context.Context, session *scoring.Session) (*scoring.MatchRecord, error) {
	outcome, err := session.Outcome()
	if err != nil {
		return nil, fmt.Errorf("%w: %d-%d, first to %d", ErrMatchNotDecided, session.ScoreA, session.ScoreB, session.FirstTo)
	}

	if session.TournamentMatchID != nil {
		if err := s.recordTournamentResult(ctx, session, outcome); err != nil {
			return nil, err
		}
		return s.finish(ctx, session, outcome, true)
	}

	s.metrics.ResultRecorded(metrics.ResultFreestyle)
	return s.finish(ctx, session, outcome, false)
}

// CompleteAnyway finishes a freestyle session that nobody has won yet, the
// player ahead taking the match. Tournament matches must be played out.
func (s *MatchService) CompleteAnyway(ctx context.Context, session *scoring.Session) (*scoring.MatchRecord, error) {
	if session.Decided() {
		return s.Complete(ctx, session)
	}
	if session.TournamentMatchID != nil {
		return nil, fmt.Errorf("%w: tournament matches are played to %d", ErrMatchNotDecided, session.FirstTo)
	}

	outcome, err := session.Leader()
	if err != nil {
		return nil, fmt.Errorf("%w: %d-%d has no leader", ErrMatchNotDecided, session.ScoreA, session.ScoreB)
	}
	s.metrics.ResultRecorded(metrics.ResultFreestyle)
	return s.finish(ctx, session, outcome, false)
}

// finish applies the outcome to player stats and appends the history record
func (s *MatchService) finish(ctx context.Context, session *scoring.Session, outcome scoring.Outcome, committed bool) (*scoring.MatchRecord, error) {
	if err := s.players.recordOutcome(ctx, outcome); err != nil {
		if committed {
			return nil, fmt.Errorf("%w: failed to update player stats: %w", ErrResultCommitted, err)
		}
		return nil, fmt.Errorf("failed to update player stats: %w", err)
	}

	record := &scoring.MatchRecord{
		ID:           uuid.NewString(),
		Player1:      session.PlayerA.Name,
		Player2:      session.PlayerB.Name,
		Player1ID:    session.PlayerA.ID,
		Player2ID:    session.PlayerB.ID,
		Score1:       session.ScoreA,
		Score2:       session.ScoreB,
		TournamentID: session.TournamentID,
		Date:         s.now().UTC(),
	}
	if err := s.history.SaveMatch(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: failed to save match record: %w", ErrResultCommitted, err)
	}
	return record, nil
}

// RecordTournamentResult scores a bracket match directly, without a live
// session. Scores are per slot and must be a finished best-of-N result: the
// winner on exactly FirstTo games, the loser below it.
func (s *MatchService) RecordTournamentResult(ctx context.Context, tournamentID, matchID string, scoreA, scoreB int) (*scoring.MatchRecord, error) {
	session, err := s.StartTournamentMatch(ctx, tournamentID, matchID)
	if err != nil {
		return nil, err
	}

	hi, lo := max(scoreA, scoreB), min(scoreA, scoreB)
	if lo < 0 || hi != session.FirstTo || lo >= session.FirstTo {
		s.metrics.ResultRejected()
		return nil, fmt.Errorf("%w: %d-%d is not a best of %d result", bracket.ErrInvalidResult, scoreA, scoreB, session.Format)
	}
	session.ScoreA, session.ScoreB = scoreA, scoreB
	return s.Complete(ctx, session)
}

func (s *MatchService) recordTournamentResult(ctx context.Context, session *scoring.Session, outcome scoring.Outcome) error {
	if session.TournamentID == nil {
		return fmt.Errorf("%w: session has a match but no tournament", ErrTournamentNotFound)
	}
	tournament, err := s.tournaments.GetTournament(ctx, *session.TournamentID)
	if err != nil {
		return err
	}
	m, err := tournament.Match(*session.TournamentMatchID)
	if err != nil {
		return err
	}

	scoreA, scoreB := session.ScoreA, session.ScoreB
	if m.SlotA.Entrant != nil && m.SlotA.Entrant.ID == session.PlayerB.ID {
		scoreA, scoreB = scoreB, scoreA
	}

	_, err = s.tournaments.RecordResult(ctx, tournament.ID, m.ID, scoreA, scoreB, outcome.Winner.ID)
	return err
}

func (s *MatchService) History(ctx context.Context) ([]scoring.MatchRecord, error) {
	return s.history.GetMatches(ctx)
}

func (s *MatchService) PlayerHistory(ctx context.Context, playerID string) ([]scoring.MatchRecord, error) {
	return s.history.GetMatchesForPlayer(ctx, playerID)
}
