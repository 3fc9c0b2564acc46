package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
	"github.com/AdamBeresnev/table-tennis-app/internal/metrics"
	"github.com/AdamBeresnev/table-tennis-app/internal/store"
	"github.com/AdamBeresnev/table-tennis-app/internal/utils"
)

// Notifier is told about every tournament state change that was persisted
type Notifier interface {
	TournamentUpdated(t *bracket.Tournament)
}

type TournamentService struct {
	// mu serialises load, mutate and save of tournaments
	mu       sync.Mutex
	store    *store.TournamentStore
	players  *PlayerService
	builder  *bracket.Builder
	notifier Notifier
	metrics  *metrics.Metrics
}

type TournamentOption func(*TournamentService)

func WithBuilder(b *bracket.Builder) TournamentOption {
	return func(s *TournamentService) { s.builder = b }
}

func WithNotifier(n Notifier) TournamentOption {
	return func(s *TournamentService) { s.notifier = n }
}

func WithMetrics(m *metrics.Metrics) TournamentOption {
	return func(s *TournamentService) { s.metrics = m }
}

func NewTournamentService(store *store.TournamentStore, players *PlayerService, opts ...TournamentOption) *TournamentService {
	s := &TournamentService{
		store:   store,
		players: players,
		builder: bracket.NewBuilder(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TournamentService) CreateTournament(ctx context.Context, name string, format int, playerIDs []string) (*bracket.Tournament, error) {
	name = utils.CleanName(name)
	if name == "" {
		return nil, ErrInvalidTournamentName
	}

	entrants, err := s.players.Entrants(ctx, playerIDs)
	if err != nil {
		return nil, err
	}

	// the builder's rand source is not safe for concurrent use
	s.mu.Lock()
	defer s.mu.Unlock()

	tournament, err := s.builder.Build(name, entrants, format)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveTournament(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to save tournament: %w", err)
	}
	s.metrics.TournamentCreated()
	return tournament, nil
}

func (s *TournamentService) GetTournament(ctx context.Context, id string) (*bracket.Tournament, error) {
	tournament, err := s.store.GetTournament(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrTournamentNotFound, id)
	}
	return tournament, err
}

// ListTournaments returns every tournament, newest first
func (s *TournamentService) ListTournaments(ctx context.Context) ([]bracket.Tournament, error) {
	return s.store.GetTournaments(ctx)
}

func (s *TournamentService) ListActive(ctx context.Context) ([]bracket.Tournament, error) {
	tournaments, err := s.store.GetTournaments(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(tournaments, func(t bracket.Tournament) bool {
		return t.Completed
	}), nil
}

func (s *TournamentService) DeleteTournament(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.DeleteTournament(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrTournamentNotFound, id)
	}
	return err
}

// RecordResult applies a result to one bracket match. Scores are given per
// slot, scoreA belongs to whoever sits in slot A.
func (s *TournamentService) RecordResult(ctx context.Context, tournamentID, matchID string, scoreA, scoreB int, winnerID string) (*bracket.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tournament, err := s.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	winner := bracket.Entrant{ID: winnerID}
	for _, e := range tournament.Entrants {
		if e.ID == winnerID {
			winner = e
			break
		}
	}

	if err := tournament.RecordResult(matchID, scoreA, scoreB, winner); err != nil {
		s.metrics.ResultRejected()
		return nil, err
	}

	if err := s.store.SaveTournament(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to save tournament: %w", err)
	}

	s.metrics.ResultRecorded(metrics.ResultTournament)
	if tournament.Completed {
		s.metrics.TournamentCompleted()
	}
	if s.notifier != nil {
		s.notifier.TournamentUpdated(tournament)
	}
	return tournament, nil
}
