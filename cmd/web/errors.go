package main

import (
	"errors"
	"net/http"

	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
	"github.com/AdamBeresnev/table-tennis-app/internal/httputil"
	"github.com/AdamBeresnev/table-tennis-app/internal/scoring"
	"github.com/AdamBeresnev/table-tennis-app/internal/service"
	"github.com/AdamBeresnev/table-tennis-app/internal/store"
)

var (
	notFoundErrors = []error{
		service.ErrPlayerNotFound,
		service.ErrTournamentNotFound,
		bracket.ErrUnknownMatch,
		store.ErrNotFound,
	}
	conflictErrors = []error{
		service.ErrDuplicatePlayer,
		bracket.ErrAlreadyResolved,
		scoring.ErrMatchDecided,
	}
	badRequestErrors = []error{
		service.ErrInvalidPlayerName,
		service.ErrInvalidTournamentName,
		service.ErrSamePlayer,
		service.ErrMatchNotDecided,
		bracket.ErrInvalidResult,
		bracket.ErrInvalidEntrantCount,
		bracket.ErrInvalidFormat,
		scoring.ErrInvalidFormat,
		scoring.ErrInvalidSide,
	}
)

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// writeError answers with the status matching a domain error, anything
// unknown is logged as an internal error
func writeError(w http.ResponseWriter, msg string, err error) {
	switch {
	case isAny(err, notFoundErrors):
		httputil.NotFound(w, err.Error(), err)
	case isAny(err, conflictErrors):
		httputil.Conflict(w, err.Error(), err)
	case isAny(err, badRequestErrors):
		httputil.BadRequest(w, err.Error(), err)
	default:
		httputil.InternalServerError(w, msg, err)
	}
}
