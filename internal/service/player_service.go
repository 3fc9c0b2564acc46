package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
	"github.com/AdamBeresnev/table-tennis-app/internal/metrics"
	"github.com/AdamBeresnev/table-tennis-app/internal/roster"
	"github.com/AdamBeresnev/table-tennis-app/internal/scoring"
	"github.com/AdamBeresnev/table-tennis-app/internal/store"
	"github.com/AdamBeresnev/table-tennis-app/internal/utils"
	"github.com/google/uuid"
)

const MaxNameLength = 50

type PlayerService struct {
	mu      sync.Mutex
	store   *store.PlayerStore
	metrics *metrics.Metrics
}

func NewPlayerService(store *store.PlayerStore, m *metrics.Metrics) *PlayerService {
	return &PlayerService{store: store, metrics: m}
}

func (s *PlayerService) AddPlayer(ctx context.Context, name string) (*roster.Player, error) {
	name = utils.CleanName(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is empty", ErrInvalidPlayerName)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, fmt.Errorf("%w: name '%s' exceeds %d characters", ErrInvalidPlayerName, name, MaxNameLength)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.store.GetPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	for _, p := range players {
		if strings.EqualFold(p.Name, name) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
		}
	}

	player := &roster.Player{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.SavePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}
	s.metrics.PlayerAdded()
	return player, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id string) (*roster.Player, error) {
	player, err := s.store.GetPlayer(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	return player, err
}

// DeletePlayer removes a player from the roster. Brackets and history keep
// their own copy of the name.
func (s *PlayerService) DeletePlayer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.DeletePlayer(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	return err
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]roster.Player, error) {
	return s.store.GetPlayers(ctx)
}

func (s *PlayerService) Leaderboard(ctx context.Context) ([]roster.Player, error) {
	players, err := s.store.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return roster.Leaderboard(players), nil
}

// Entrants resolves player ids into bracket entrants, keeping the first
// occurrence of a repeated id
func (s *PlayerService) Entrants(ctx context.Context, ids []string) ([]bracket.Entrant, error) {
	seen := make(map[string]bool, len(ids))
	entrants := make([]bracket.Entrant, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		player, err := s.GetPlayer(ctx, id)
		if err != nil {
			return nil, err
		}
		entrants = append(entrants, player.Entrant())
	}
	return entrants, nil
}

// recordOutcome updates the stats of both players. A player deleted since
// the match started is skipped.
func (s *PlayerService) recordOutcome(ctx context.Context, outcome scoring.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	update := func(id string, apply func(p *roster.Player)) error {
		player, err := s.store.GetPlayer(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get player %s: %w", id, err)
		}
		apply(player)
		if err := s.store.SavePlayer(ctx, player); err != nil {
			return fmt.Errorf("failed to save player %s: %w", id, err)
		}
		return nil
	}

	if err := update(outcome.Winner.ID, func(p *roster.Player) {
		p.RecordWin(outcome.WinnerScore, outcome.LoserScore)
	}); err != nil {
		return err
	}
	return update(outcome.Loser.ID, func(p *roster.Player) {
		p.RecordLoss(outcome.LoserScore, outcome.WinnerScore)
	})
}
