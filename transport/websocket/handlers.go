package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
)

func (that *Server) handleGetMove(ctx context.Context, msg *Message) (any, error) {
	var req entity.MoveRequest
	if err := decodePayload(msg, &req); err != nil {
		return nil, err
	}

	return that.moves.GetMove(ctx, usecase.SourceWebSocket, &req), nil
}

func (that *Server) handleStartGame(ctx context.Context, msg *Message) (any, error) {
	var req entity.StartGameRequest
	if err := decodePayload(msg, &req); err != nil {
		return nil, err
	}

	session, err := that.moves.StartGame(ctx, req.GameID, req.PlayerOrder)
	if err != nil {
		return nil, err
	}

	return GamePayload{GameID: session.ID, PlayerOrder: session.PlayerOrder}, nil
}

func (that *Server) handleSendMove(ctx context.Context, msg *Message) (any, error) {
	var req entity.SendMoveRequest
	if err := decodePayload(msg, &req); err != nil {
		return nil, err
	}

	column, ok := req.Column()
	if !ok {
		return nil, apperror.ErrInvalidMove
	}

	if err := that.moves.SendMove(ctx, req.GameID, column); err != nil {
		return nil, err
	}

	return GamePayload{GameID: req.GameID, Move: &column}, nil
}

func (that *Server) handleGetModelMove(ctx context.Context, msg *Message) (any, error) {
	var req GamePayload
	if err := decodePayload(msg, &req); err != nil {
		return nil, err
	}

	resp, err := that.moves.GetModelMove(ctx, req.GameID)
	if err != nil {
		return nil, err
	}

	return GamePayload{GameID: req.GameID, Move: &resp.Move}, nil
}

func (that *Server) handleEndGame(ctx context.Context, msg *Message) (any, error) {
	var req GamePayload
	if err := decodePayload(msg, &req); err != nil {
		return nil, err
	}

	if err := that.moves.EndGame(ctx, req.GameID); err != nil {
		return nil, err
	}

	return GamePayload{GameID: req.GameID}, nil
}

// errorText - known errors are reported by their sentinel text, anything else is logged and hidden.
func (that *Server) errorText(action string, err error) string {
	for _, known := range []error{
		apperror.ErrInvalidRequest,
		apperror.ErrInvalidMove,
		apperror.ErrInvalidPlayerOrder,
		apperror.ErrGameNotFound,
		apperror.ErrNoPendingMove,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	that.logger.Error("action failed", "action", action, "error", err)

	return "internal server error"
}

// decodePayload - a missing payload decodes as an empty object.
func decodePayload(msg *Message, dst any) error {
	if len(msg.Payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(msg.Payload, dst); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err)
	}

	return nil
}
