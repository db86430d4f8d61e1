package entity

import (
	"encoding/json"
	"fmt"
)

// Columns is the number of board columns; valid column indexes are 0..Columns-1.
const Columns = 7

// MoveRequest is read permissively: every field may be absent or of any JSON type.
type MoveRequest struct {
	GameID    any `json:"gameId"`
	Board     any `json:"board"`
	MoveOrder any `json:"moveOrder"`
}

type MoveResponse struct {
	Move int `json:"move"`
}

func (that *MoveRequest) GameIDString() string {
	return stringify(that.GameID)
}

func (that *MoveRequest) MoveOrderString() string {
	return stringify(that.MoveOrder)
}

// BoardString - renders the board as compact JSON, "" when absent.
func (that *MoveRequest) BoardString() string {
	if that.Board == nil {
		return ""
	}

	raw, err := json.Marshal(that.Board)
	if err != nil {
		return fmt.Sprint(that.Board)
	}

	return string(raw)
}

func IsValidColumn(column int) bool {
	return column >= 0 && column < Columns
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
