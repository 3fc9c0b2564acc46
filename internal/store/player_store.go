package store

import (
	"context"

	"github.com/AdamBeresnev/table-tennis-app/internal/roster"
)

const playerKind = "player"

type PlayerStore struct {
	kv KV
}

func NewPlayerStore(kv KV) *PlayerStore {
	return &PlayerStore{kv: kv}
}

func (s *PlayerStore) SavePlayer(ctx context.Context, player *roster.Player) error {
	return putJSON(ctx, s.kv, recordKey(playerKind, player.ID), player)
}

func (s *PlayerStore) GetPlayer(ctx context.Context, id string) (*roster.Player, error) {
	return getJSON[roster.Player](ctx, s.kv, recordKey(playerKind, id))
}

func (s *PlayerStore) GetPlayers(ctx context.Context) ([]roster.Player, error) {
	players, err := listJSON[roster.Player](ctx, s.kv, kindPrefix(playerKind))
	if err != nil {
		return nil, err
	}
	roster.SortByName(players)
	return players, nil
}

func (s *PlayerStore) DeletePlayer(ctx context.Context, id string) error {
	return s.kv.Delete(ctx, recordKey(playerKind, id))
}
