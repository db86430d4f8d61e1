package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
)

type SessionService interface {
	StartGame(ctx context.Context, gameID, playerOrder string) (*entity.Session, error)
	SendMove(ctx context.Context, gameID string, column int) (*entity.Session, error)
	GetModelMove(ctx context.Context, gameID string) (int, error)
	EndGame(ctx context.Context, gameID string) error
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session, ttl time.Duration) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type sessionService struct {
	sessionRepo sessionRepo
	moveService MoveService
	ttl         time.Duration
	now         func() time.Time
}

func NewSessionService(sessionRepo sessionRepo, moveService MoveService, ttl time.Duration) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		moveService: moveService,
		ttl:         ttl,
		now:         time.Now,
	}
}

// StartGame - creates a session, replacing any existing one with the same id.
func (that *sessionService) StartGame(ctx context.Context, gameID, playerOrder string) (*entity.Session, error) {
	if playerOrder == "" {
		playerOrder = entity.OrderFirst
	}

	if !entity.IsValidPlayerOrder(playerOrder) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayerOrder, playerOrder)
	}

	if gameID == "" {
		gameID = uuid.NewString()
	}

	session := entity.NewSession(gameID, playerOrder, that.now())
	if session.ModelMovesFirst() {
		session.QueueModelMove(that.moveService.PickColumn())
	}

	if err := that.sessionRepo.CreateOrUpdate(ctx, session, that.ttl); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// SendMove - records the human move and queues the model reply.
func (that *sessionService) SendMove(ctx context.Context, gameID string, column int) (*entity.Session, error) {
	session, err := that.getSession(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !entity.IsValidColumn(column) {
		return nil, fmt.Errorf("%w: column %d", apperror.ErrInvalidMove, column)
	}

	session.RecordHumanMove(column)
	session.QueueModelMove(that.moveService.PickColumn())

	if err = that.sessionRepo.CreateOrUpdate(ctx, session, that.ttl); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

func (that *sessionService) GetModelMove(ctx context.Context, gameID string) (int, error) {
	session, err := that.getSession(ctx, gameID)
	if err != nil {
		return 0, err
	}

	move, ok := session.TakeModelMove()
	if !ok {
		return 0, apperror.ErrNoPendingMove
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session, that.ttl); err != nil {
		return 0, fmt.Errorf("failed to update session: %w", err)
	}

	return move, nil
}

func (that *sessionService) EndGame(ctx context.Context, gameID string) error {
	if _, err := that.getSession(ctx, gameID); err != nil {
		return err
	}

	if err := that.sessionRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (that *sessionService) getSession(ctx context.Context, gameID string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, gameID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, gameID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}
