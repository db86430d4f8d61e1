package entity

import (
	"math"
	"time"
)

const (
	OrderFirst  = "first"
	OrderSecond = "second"
)

// Session is a short-lived game in which the model answers every human move.
type Session struct {
	ID               string    `json:"id"`
	PlayerOrder      string    `json:"player_order"`
	LastHumanMove    *int      `json:"last_human_move,omitempty"`
	PendingModelMove *int      `json:"pending_model_move,omitempty"`
	Moves            int       `json:"moves"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewSession(id, playerOrder string, now time.Time) *Session {
	return &Session{
		ID:          id,
		PlayerOrder: playerOrder,
		CreatedAt:   now,
	}
}

func IsValidPlayerOrder(order string) bool {
	return order == OrderFirst || order == OrderSecond
}

func (that *Session) ModelMovesFirst() bool {
	return that.PlayerOrder == OrderSecond
}

func (that *Session) HasPendingMove() bool {
	return that.PendingModelMove != nil
}

func (that *Session) RecordHumanMove(column int) {
	that.LastHumanMove = &column
	that.Moves++
}

func (that *Session) QueueModelMove(column int) {
	that.PendingModelMove = &column
}

// TakeModelMove - returns the pending move and clears it.
func (that *Session) TakeModelMove() (int, bool) {
	if that.PendingModelMove == nil {
		return 0, false
	}

	move := *that.PendingModelMove
	that.PendingModelMove = nil
	that.Moves++

	return move, true
}

type StartGameRequest struct {
	GameID      string `json:"gameId"`
	PlayerOrder string `json:"playerOrder"`
}

type SendMoveRequest struct {
	GameID string   `json:"gameId"`
	Move   *float64 `json:"move"`
}

// Column - the move as an integer; false when absent or fractional.
func (that *SendMoveRequest) Column() (int, bool) {
	if that.Move == nil {
		return 0, false
	}

	move := *that.Move
	if move != math.Trunc(move) || math.Abs(move) > math.MaxInt32 {
		return 0, false
	}

	return int(move), true
}
