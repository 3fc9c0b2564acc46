package main

import (
	"errors"
	"net/http"

	"github.com/AdamBeresnev/table-tennis-app/internal/httputil"
	"github.com/AdamBeresnev/table-tennis-app/internal/middleware"
	"github.com/AdamBeresnev/table-tennis-app/internal/scoring"
	"github.com/AdamBeresnev/table-tennis-app/internal/service"
	"github.com/AdamBeresnev/table-tennis-app/internal/utils"
)

func (app *application) getSession(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetScoringSession(r.Context())
	httputil.WriteJSON(w, http.StatusOK, session)
}

// startSession begins a freestyle match between two players, or a bracket
// match when tournamentId and matchId are given. It replaces any match the
// browser was scoring.
func (app *application) startSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PlayerA      string `json:"playerA"`
		PlayerB      string `json:"playerB"`
		Format       int    `json:"format"`
		TournamentID string `json:"tournamentId"`
		MatchID      string `json:"matchId"`
	}
	if err := httputil.DecodeJSON(w, r, &body); err != nil {
		httputil.BadRequest(w, "Invalid match data", err)
		return
	}

	var (
		session *scoring.Session
		err     error
	)
	if tournamentID := utils.StringOrNil(body.TournamentID); tournamentID != nil {
		session, err = app.matches.StartTournamentMatch(r.Context(), *tournamentID, body.MatchID)
	} else {
		session, err = app.matches.StartFreestyle(r.Context(), body.PlayerA, body.PlayerB, body.Format)
	}
	if err != nil {
		writeError(w, "Failed to start match", err)
		return
	}

	if err := middleware.SaveScoringSession(r.Context(), app.sessionManager, session); err != nil {
		httputil.InternalServerError(w, "Failed to save scoring session", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, session)
}

func (app *application) discardSession(w http.ResponseWriter, r *http.Request) {
	middleware.ClearScoringSession(r.Context(), app.sessionManager)
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) sessionPoint(w http.ResponseWriter, r *http.Request) {
	app.updateSession(w, r, (*scoring.Session).Point)
}

func (app *application) sessionUndo(w http.ResponseWriter, r *http.Request) {
	app.updateSession(w, r, (*scoring.Session).Undo)
}

func (app *application) updateSession(w http.ResponseWriter, r *http.Request, apply func(*scoring.Session, scoring.Side) error) {
	var body struct {
		Side scoring.Side `json:"side"`
	}
	if err := httputil.DecodeJSON(w, r, &body); err != nil {
		httputil.BadRequest(w, "Invalid score data", err)
		return
	}

	session, _ := middleware.GetScoringSession(r.Context())
	if err := apply(session, body.Side); err != nil {
		writeError(w, "Failed to update score", err)
		return
	}
	if err := middleware.SaveScoringSession(r.Context(), app.sessionManager, session); err != nil {
		httputil.InternalServerError(w, "Failed to save scoring session", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, session)
}

// completeSession saves the match being scored. With force set, a freestyle
// match nobody has won yet is awarded to the player ahead.
func (app *application) completeSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Force bool `json:"force"`
	}
	if r.ContentLength != 0 {
		if err := httputil.DecodeJSON(w, r, &body); err != nil {
			httputil.BadRequest(w, "Invalid completion data", err)
			return
		}
	}

	session, _ := middleware.GetScoringSession(r.Context())

	complete := app.matches.Complete
	if body.Force {
		complete = app.matches.CompleteAnyway
	}
	record, err := complete(r.Context(), session)
	if err != nil {
		if errors.Is(err, service.ErrResultCommitted) {
			middleware.ClearScoringSession(r.Context(), app.sessionManager)
		}
		writeError(w, "Failed to complete match", err)
		return
	}

	middleware.ClearScoringSession(r.Context(), app.sessionManager)
	httputil.WriteJSON(w, http.StatusOK, record)
}
