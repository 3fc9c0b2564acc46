package store

import (
	"context"
	"slices"

	"github.com/AdamBeresnev/table-tennis-app/internal/scoring"
)

const matchKind = "match"

// MatchStore keeps the history of finished matches
type MatchStore struct {
	kv KV
}

func NewMatchStore(kv KV) *MatchStore {
	return &MatchStore{kv: kv}
}

func (s *MatchStore) SaveMatch(ctx context.Context, record *scoring.MatchRecord) error {
	return putJSON(ctx, s.kv, recordKey(matchKind, record.ID), record)
}

// GetMatches returns the history, most recent first
func (s *MatchStore) GetMatches(ctx context.Context) ([]scoring.MatchRecord, error) {
	records, err := listJSON[scoring.MatchRecord](ctx, s.kv, kindPrefix(matchKind))
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(records, func(a, b scoring.MatchRecord) int {
		return b.Date.Compare(a.Date)
	})
	return records, nil
}

func (s *MatchStore) GetMatchesForPlayer(ctx context.Context, playerID string) ([]scoring.MatchRecord, error) {
	records, err := s.GetMatches(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(records, func(r scoring.MatchRecord) bool {
		return r.Player1ID != playerID && r.Player2ID != playerID
	}), nil
}
