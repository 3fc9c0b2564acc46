package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdamBeresnev/table-tennis-app/internal/config"
	"github.com/AdamBeresnev/table-tennis-app/internal/db"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	cliApp := &cli.App{
		Name:  "table-tennis",
		Usage: "table tennis matches, stats and single elimination tournaments",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Usage: "SQLite database path", Value: cfg.DatabasePath, Destination: &cfg.DatabasePath},
		},
		Commands: []*cli.Command{
			serveCommand(&cfg),
			migrateCommand(&cfg),
		},
		DefaultCommand: "serve",
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the web server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address", Value: cfg.Addr, Destination: &cfg.Addr},
			&cli.StringFlag{Name: "store", Usage: "record backend: sqlite, redis or memory", Value: cfg.StoreBackend, Destination: &cfg.StoreBackend},
			&cli.StringFlag{Name: "redis-url", Usage: "Redis URL for the redis backend", Value: cfg.RedisURL, Destination: &cfg.RedisURL},
			&cli.StringSliceFlag{Name: "cors-origin", Usage: "allowed browser origin, repeatable"},
		},
		Action: func(c *cli.Context) error {
			if origins := c.StringSlice("cors-origin"); len(origins) > 0 {
				cfg.CORSOrigins = origins
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(c.Context, *cfg)
		},
	}
}

func migrateCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply database migrations and exit",
		Action: func(c *cli.Context) error {
			database, err := db.InitDB(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := db.RunMigrations(database.DB); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			log.Println("Migrations applied to", cfg.DatabasePath)
			return nil
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.hub.Run(gCtx)
		return nil
	})
	g.Go(func() error {
		log.Printf("Server starting on %s (store: %s)", cfg.Addr, cfg.StoreBackend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Println("Shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
