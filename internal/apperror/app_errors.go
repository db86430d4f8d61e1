package apperror

import "errors"

var (
	ErrGameNotFound       = errors.New("game not found")
	ErrInvalidMove        = errors.New("invalid move")
	ErrInvalidPlayerOrder = errors.New("invalid player order")
	ErrNoPendingMove      = errors.New("no pending model move")
	ErrInvalidRequest     = errors.New("invalid request body")
)
