package websocket

import (
	"encoding/json"
)

const (
	actionMoveGet       = "move:get"
	actionGameStart     = "game:start"
	actionGameMove      = "game:move"
	actionGameModelMove = "game:model-move"
	actionGameEnd       = "game:end"
)

// Message - every frame in both directions has this shape.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

type GamePayload struct {
	GameID      string `json:"gameId"`
	PlayerOrder string `json:"playerOrder,omitempty"`
	Move        *int   `json:"move,omitempty"`
}

func newMessage(action string, payload any) *Message {
	data, err := json.Marshal(payload)
	if err != nil {
		return errorMessage(action, "internal server error")
	}

	return &Message{Action: action, Payload: data}
}

func errorMessage(action, text string) *Message {
	data, _ := json.Marshal(ErrorPayload{Error: text})

	return &Message{Action: action, Payload: data}
}
