package service

import (
	"errors"

	"github.com/AdamBeresnev/table-tennis-app/internal/scoring"
)

var (
	ErrPlayerNotFound        = errors.New("player not found")
	ErrTournamentNotFound    = errors.New("tournament not found")
	ErrInvalidPlayerName     = errors.New("invalid player name")
	ErrInvalidTournamentName = errors.New("tournament name is required")
	ErrDuplicatePlayer       = errors.New("a player with that name already exists")
	ErrMatchNotDecided       = errors.New("match is not decided yet")
	// ErrResultCommitted means the result was applied but a later write
	// failed. Submitting the same match again would count it twice.
	ErrResultCommitted       = errors.New("match result was recorded but bookkeeping failed")
	ErrSamePlayer            = scoring.ErrSamePlayer
)
