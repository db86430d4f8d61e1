package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	SourceREST      = "rest"
	SourceWebSocket = "websocket"
	sourceModel     = "model"
)

type moveService interface {
	PickColumn() int
}

type sessionService interface {
	StartGame(ctx context.Context, gameID, playerOrder string) (*entity.Session, error)
	SendMove(ctx context.Context, gameID string, column int) (*entity.Session, error)
	GetModelMove(ctx context.Context, gameID string) (int, error)
	EndGame(ctx context.Context, gameID string) error
}

type moveRecorder interface {
	ObserveMove(source string, column int)
	ObserveSessionStarted(playerOrder string)
}

type MoveManager struct {
	logger *slog.Logger

	moveService    moveService
	sessionService sessionService
	recorder       moveRecorder
}

func NewMoveManager(logger *slog.Logger, moveService moveService, sessionService sessionService, recorder moveRecorder) *MoveManager {
	return &MoveManager{
		logger: logger.With("component", "move_manager"),

		moveService:    moveService,
		sessionService: sessionService,
		recorder:       recorder,
	}
}

// GetMove - answers a stateless move request; the request content is only logged.
func (that *MoveManager) GetMove(_ context.Context, source string, req *entity.MoveRequest) *entity.MoveResponse {
	log := that.logger.With("method", "GetMove", "source", source)

	log.Info("received move request", "game_id", req.GameIDString(), "move_order", req.MoveOrderString())
	log.Info("board state", "board", req.Board)

	move := that.moveService.PickColumn()
	that.recorder.ObserveMove(source, move)

	log.Info("returning move", "move", move)

	return &entity.MoveResponse{Move: move}
}

func (that *MoveManager) StartGame(ctx context.Context, gameID, playerOrder string) (*entity.Session, error) {
	session, err := that.sessionService.StartGame(ctx, gameID, playerOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	that.recorder.ObserveSessionStarted(session.PlayerOrder)
	that.logger.Info("game started", "game_id", session.ID, "player_order", session.PlayerOrder)

	return session, nil
}

func (that *MoveManager) SendMove(ctx context.Context, gameID string, column int) error {
	session, err := that.sessionService.SendMove(ctx, gameID, column)
	if err != nil {
		return fmt.Errorf("failed to send move: %w", err)
	}

	that.logger.Debug("human move recorded", "game_id", session.ID, "move", column, "moves", session.Moves)

	return nil
}

func (that *MoveManager) GetModelMove(ctx context.Context, gameID string) (*entity.MoveResponse, error) {
	move, err := that.sessionService.GetModelMove(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get model move: %w", err)
	}

	that.recorder.ObserveMove(sourceModel, move)
	that.logger.Info("returning model move", "game_id", gameID, "move", move)

	return &entity.MoveResponse{Move: move}, nil
}

func (that *MoveManager) EndGame(ctx context.Context, gameID string) error {
	if err := that.sessionService.EndGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}

	that.logger.Info("game ended", "game_id", gameID)

	return nil
}
