package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
	"github.com/AdamBeresnev/table-tennis-app/internal/db"
	"github.com/AdamBeresnev/table-tennis-app/internal/metrics"
	"github.com/AdamBeresnev/table-tennis-app/internal/roster"
	"github.com/AdamBeresnev/table-tennis-app/internal/store"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	updates []*bracket.Tournament
}

func (n *recordingNotifier) TournamentUpdated(t *bracket.Tournament) {
	n.updates = append(n.updates, t.Clone())
}

type testServices struct {
	players     *PlayerService
	tournaments *TournamentService
	matches     *MatchService
	notifier    *recordingNotifier
	metrics     *metrics.Metrics
	kv          store.KV
}

// setupServices wires every service on an in-memory SQLite database with
// migrations applied
func setupServices(t *testing.T) *testServices {
	t.Helper()

	database, err := db.InitMemoryDB()
	require.NoError(t, err, "Failed to create in-memory DB")
	t.Cleanup(func() { database.Close() })

	kv := store.NewSQLiteKV(database)
	m := metrics.New()
	notifier := &recordingNotifier{}

	players := NewPlayerService(store.NewPlayerStore(kv), m)
	tournaments := NewTournamentService(
		store.NewTournamentStore(kv),
		players,
		WithBuilder(bracket.NewBuilder(rand.New(rand.NewPCG(1, 2)))),
		WithNotifier(notifier),
		WithMetrics(m),
	)
	matches := NewMatchService(store.NewMatchStore(kv), players, tournaments, m)

	return &testServices{
		players:     players,
		tournaments: tournaments,
		matches:     matches,
		notifier:    notifier,
		metrics:     m,
		kv:          kv,
	}
}

// addPlayers creates n players with distinct fake names
func addPlayers(t *testing.T, s *PlayerService, n int) []roster.Player {
	t.Helper()

	faker := gofakeit.New(uint64(n))
	seen := make(map[string]bool)
	var players []roster.Player
	for len(players) < n {
		name := faker.FirstName() + " " + faker.LastName()
		if seen[name] {
			continue
		}
		seen[name] = true

		p, err := s.AddPlayer(context.Background(), name)
		require.NoError(t, err)
		players = append(players, *p)
	}
	return players
}

// failingKV refuses writes to keys under prefix
type failingKV struct {
	store.KV
	prefix string
}

func (f failingKV) Put(ctx context.Context, key string, value []byte) error {
	if strings.HasPrefix(key, f.prefix) {
		return errors.New("disk full")
	}
	return f.KV.Put(ctx, key, value)
}

func playerIDs(players []roster.Player) []string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids
}
