package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
)

const tournamentKind = "tournament"

type TournamentStore struct {
	kv KV
}

func NewTournamentStore(kv KV) *TournamentStore {
	return &TournamentStore{kv: kv}
}

func (s *TournamentStore) SaveTournament(ctx context.Context, tournament *bracket.Tournament) error {
	return putJSON(ctx, s.kv, recordKey(tournamentKind, tournament.ID), tournament)
}

func (s *TournamentStore) GetTournament(ctx context.Context, id string) (*bracket.Tournament, error) {
	return getJSON[bracket.Tournament](ctx, s.kv, recordKey(tournamentKind, id))
}

// GetTournaments returns every tournament, newest first
func (s *TournamentStore) GetTournaments(ctx context.Context) ([]bracket.Tournament, error) {
	tournaments, err := listJSON[bracket.Tournament](ctx, s.kv, kindPrefix(tournamentKind))
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(tournaments, func(a, b bracket.Tournament) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return tournaments, nil
}

func (s *TournamentStore) DeleteTournament(ctx context.Context, id string) error {
	err := s.kv.Delete(ctx, recordKey(tournamentKind, id))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to delete tournament %s: %w", id, err)
	}
	return err
}
