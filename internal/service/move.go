package service

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type MoveService interface {
	PickColumn() int
}

type moveService struct {
	intN func(n int) int
}

// NewMoveService - picks columns with the process-wide generator, safe for concurrent use.
func NewMoveService() MoveService {
	return &moveService{intN: rand.IntN} //nolint: gosec // move choice is not security sensitive
}

// NewMoveServiceWithSource - picks columns from the given generator; the generator must not be shared across goroutines.
func NewMoveServiceWithSource(rnd *rand.Rand) MoveService {
	return &moveService{intN: rnd.IntN}
}

// PickColumn - uniform over every column; the board is not consulted.
func (that *moveService) PickColumn() int {
	return that.intN(entity.Columns)
}
