package main

import (
	"context"
	"fmt"
	"log"

	"github.com/AdamBeresnev/table-tennis-app/internal/config"
	"github.com/AdamBeresnev/table-tennis-app/internal/db"
	"github.com/AdamBeresnev/table-tennis-app/internal/live"
	"github.com/AdamBeresnev/table-tennis-app/internal/metrics"
	"github.com/AdamBeresnev/table-tennis-app/internal/service"
	"github.com/AdamBeresnev/table-tennis-app/internal/store"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

type application struct {
	players        *service.PlayerService
	tournaments    *service.TournamentService
	matches        *service.MatchService
	sessionManager *scs.SessionManager
	hub            *live.Hub
	metrics        *metrics.Metrics
	corsOrigins    []string
}

// newApplication opens the configured backend and wires the services. The
// returned cleanup releases every connection that was opened.
func newApplication(ctx context.Context, cfg config.Config) (*application, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	sessionManager := scs.New()
	sessionManager.Lifetime = cfg.SessionLifetime

	var kv store.KV
	switch cfg.StoreBackend {
	case config.BackendMemory:
		// Sessions stay in the scs default in-memory store as well
		kv = store.NewMemoryKV()

	case config.BackendSQLite, config.BackendRedis:
		database, err := db.InitDB(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { database.Close() })

		if err := db.RunMigrations(database.DB); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		sessionManager.Store = sqlite3store.New(database.DB)
		kv = store.NewSQLiteKV(database)

		if cfg.StoreBackend == config.BackendRedis {
			client, err := store.ConnectRedis(ctx, cfg.RedisURL)
			if err != nil {
				cleanup()
				return nil, nil, err
			}
			closers = append(closers, func() { client.Close() })
			kv = store.NewRedisKV(client)
			log.Println("Using Redis for records at", cfg.RedisURL)
		}

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	m := metrics.New()
	hub := live.NewHub(m, cfg.CORSOrigins...)
	return newServices(kv, sessionManager, hub, m, cfg.CORSOrigins), cleanup, nil
}

func newServices(kv store.KV, sessionManager *scs.SessionManager, hub *live.Hub, m *metrics.Metrics, corsOrigins []string) *application {
	players := service.NewPlayerService(store.NewPlayerStore(kv), m)
	tournaments := service.NewTournamentService(
		store.NewTournamentStore(kv),
		players,
		service.WithNotifier(hub),
		service.WithMetrics(m),
	)
	matches := service.NewMatchService(store.NewMatchStore(kv), players, tournaments, m)

	return &application{
		players:        players,
		tournaments:    tournaments,
		matches:        matches,
		sessionManager: sessionManager,
		hub:            hub,
		metrics:        m,
		corsOrigins:    corsOrigins,
	}
}
