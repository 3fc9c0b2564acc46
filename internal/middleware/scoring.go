package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AdamBeresnev/table-tennis-app/internal/httputil"
	"github.com/AdamBeresnev/table-tennis-app/internal/scoring"
	"github.com/alexedwards/scs/v2"
)

type ContextKey string

const SessionKey ContextKey = "scoringSession"

// ScoringSessionKey is where the match being scored lives in the browser session
const ScoringSessionKey = "scoring.session"

// LoadScoringSession puts the match the browser is scoring, if any, in the
// request context. Must run inside sessionManager.LoadAndSave.
func LoadScoringSession(sessionManager *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data := sessionManager.GetBytes(r.Context(), ScoringSessionKey)
			if len(data) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			var session scoring.Session
			if err := json.Unmarshal(data, &session); err != nil {
				// Left over from an older format, start over
				sessionManager.Remove(r.Context(), ScoringSessionKey)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, &session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireScoringSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetScoringSession(r.Context()); !ok {
			httputil.NotFound(w, "no match is being scored", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetScoringSession(ctx context.Context) (*scoring.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*scoring.Session)
	return session, ok && session != nil
}

func SaveScoringSession(ctx context.Context, sessionManager *scs.SessionManager, session *scoring.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode scoring session: %w", err)
	}
	sessionManager.Put(ctx, ScoringSessionKey, data)
	return nil
}

func ClearScoringSession(ctx context.Context, sessionManager *scs.SessionManager) {
	sessionManager.Remove(ctx, ScoringSessionKey)
}
