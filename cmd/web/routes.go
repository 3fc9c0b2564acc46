package main

import (
	"errors"
	"net/http"

	"github.com/AdamBeresnev/table-tennis-app/internal/httputil"
	"github.com/AdamBeresnev/table-tennis-app/internal/middleware"
	"github.com/AdamBeresnev/table-tennis-app/views"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func newRouter(app *application) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	if len(app.corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   app.corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Serve static files
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.Handle("/metrics", app.metrics.Handler())
	r.Get("/ws/tournaments/{id}", app.serveLive)

	r.Group(func(r chi.Router) {
		r.Use(app.sessionManager.LoadAndSave)

		r.Get("/", app.indexPage)
		r.Get("/leaderboard", app.leaderboardPage)
		r.Get("/tournaments/{id}", app.tournamentPage)

		r.Route("/api", func(r chi.Router) {
			r.Use(httputil.JSONErrors)

			r.Get("/players", app.listPlayers)
			r.Post("/players", app.addPlayer)
			r.Delete("/players/{id}", app.deletePlayer)
			r.Get("/players/{id}/matches", app.playerHistory)
			r.Get("/leaderboard", app.leaderboard)
			r.Get("/matches", app.history)

			r.Get("/tournaments", app.listTournaments)
			r.Post("/tournaments", app.createTournament)
			r.Get("/tournaments/{id}", app.getTournament)
			r.Delete("/tournaments/{id}", app.deleteTournament)
			r.Post("/tournaments/{id}/matches/{matchID}/result", app.recordResult)

			r.Route("/session", func(r chi.Router) {
				r.Use(middleware.LoadScoringSession(app.sessionManager))

				r.Post("/", app.startSession)
				r.Delete("/", app.discardSession)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireScoringSession)

					r.Get("/", app.getSession)
					r.Post("/point", app.sessionPoint)
					r.Post("/undo", app.sessionUndo)
					r.Post("/complete", app.completeSession)
				})
			})
		})
	})

	return r
}

func (app *application) indexPage(w http.ResponseWriter, r *http.Request) {
	tournaments, err := app.tournaments.ListTournaments(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to get tournaments", err)
		return
	}
	renderPage(w, r, views.Index(tournaments))
}

func (app *application) leaderboardPage(w http.ResponseWriter, r *http.Request) {
	players, err := app.players.Leaderboard(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to get leaderboard", err)
		return
	}
	renderPage(w, r, views.LeaderboardView(players))
}

func (app *application) tournamentPage(w http.ResponseWriter, r *http.Request) {
	tournament, err := app.tournaments.GetTournament(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "Failed to get tournament", err)
		return
	}
	renderPage(w, r, views.TournamentView(tournament))
}

func renderPage(w http.ResponseWriter, r *http.Request, page templ.Component) {
	if err := views.Render(w, r, page); err != nil {
		httputil.InternalServerError(w, "Failed to render page", err)
	}
}

func (app *application) serveLive(w http.ResponseWriter, r *http.Request) {
	tournament, err := app.tournaments.GetTournament(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "Failed to get tournament", err)
		return
	}
	app.hub.ServeWS(w, r, tournament.ID, tournament)
}

func (app *application) listPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := app.players.ListPlayers(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to get players", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, players)
}

func (app *application) addPlayer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := httputil.DecodeJSON(w, r, &body); err != nil {
		httputil.BadRequest(w, "Invalid player data", err)
		return
	}

	player, err := app.players.AddPlayer(r.Context(), body.Name)
	if err != nil {
		writeError(w, "Failed to add player", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, player)
}

func (app *application) deletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := app.players.DeletePlayer(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, "Failed to delete player", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) playerHistory(w http.ResponseWriter, r *http.Request) {
	records, err := app.matches.PlayerHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.InternalServerError(w, "Failed to get match history", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, records)
}

func (app *application) leaderboard(w http.ResponseWriter, r *http.Request) {
	players, err := app.players.Leaderboard(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to get leaderboard", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, players)
}

func (app *application) history(w http.ResponseWriter, r *http.Request) {
	records, err := app.matches.History(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to get match history", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, records)
}

func (app *application) listTournaments(w http.ResponseWriter, r *http.Request) {
	list := app.tournaments.ListTournaments
	if r.URL.Query().Get("active") == "true" {
		list = app.tournaments.ListActive
	}
	tournaments, err := list(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to get tournaments", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tournaments)
}

func (app *application) createTournament(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name      string   `json:"name"`
		Format    int      `json:"format"`
		PlayerIDs []string `json:"playerIds"`
	}
	if err := httputil.DecodeJSON(w, r, &body); err != nil {
		httputil.BadRequest(w, "Invalid tournament data", err)
		return
	}

	tournament, err := app.tournaments.CreateTournament(r.Context(), body.Name, body.Format, body.PlayerIDs)
	if err != nil {
		writeError(w, "Failed to create tournament", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, tournament)
}

func (app *application) getTournament(w http.ResponseWriter, r *http.Request) {
	tournament, err := app.tournaments.GetTournament(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "Failed to get tournament", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tournament)
}

func (app *application) deleteTournament(w http.ResponseWriter, r *http.Request) {
	if err := app.tournaments.DeleteTournament(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, "Failed to delete tournament", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) recordResult(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ScoreA *int `json:"scoreA"`
		ScoreB *int `json:"scoreB"`
	}
	if err := httputil.DecodeJSON(w, r, &body); err != nil {
		httputil.BadRequest(w, "Invalid result data", err)
		return
	}
	if body.ScoreA == nil || body.ScoreB == nil {
		httputil.BadRequest(w, "Both scores are required", errors.New("missing score"))
		return
	}

	tournamentID := chi.URLParam(r, "id")
	if _, err := app.matches.RecordTournamentResult(r.Context(), tournamentID, chi.URLParam(r, "matchID"), *body.ScoreA, *body.ScoreB); err != nil {
		writeError(w, "Failed to record result", err)
		return
	}

	tournament, err := app.tournaments.GetTournament(r.Context(), tournamentID)
	if err != nil {
		writeError(w, "Failed to get tournament", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tournament)
}
