package bracket

import "errors"

var (
	ErrInvalidEntrantCount = errors.New("a tournament needs at least 2 entrants")
	ErrInvalidFormat       = errors.New("format must be a positive number of games")
	ErrInvalidResult       = errors.New("invalid match result")
	ErrAlreadyResolved     = errors.New("slot already resolved")
	ErrUnknownMatch        = errors.New("unknown match")
)
