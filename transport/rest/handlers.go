package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
)

const maxBodyBytes = 1 << 20

type moveUseCase interface {
	GetMove(ctx context.Context, source string, req *entity.MoveRequest) *entity.MoveResponse

	StartGame(ctx context.Context, gameID, playerOrder string) (*entity.Session, error)
	SendMove(ctx context.Context, gameID string, column int) error
	GetModelMove(ctx context.Context, gameID string) (*entity.MoveResponse, error)
	EndGame(ctx context.Context, gameID string) error
}

type Handlers struct {
	logger *slog.Logger
	moves  moveUseCase
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	GameID  string `json:"gameId,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHandlers(logger *slog.Logger, moves moveUseCase) *Handlers {
	return &Handlers{
		logger: logger.With("component", "rest_handlers"),
		moves:  moves,
	}
}

// GetMove - POST /api/get-move.
func (that *Handlers) GetMove(w http.ResponseWriter, r *http.Request) {
	var req entity.MoveRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, that.moves.GetMove(r.Context(), usecase.SourceREST, &req))
}

// StartGame - POST /api/start-game.
func (that *Handlers) StartGame(w http.ResponseWriter, r *http.Request) {
	var req entity.StartGameRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	session, err := that.moves.StartGame(r.Context(), req.GameID, req.PlayerOrder)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Success: true, Message: "Game started", GameID: session.ID})
}

// SendMove - POST /api/send-move.
func (that *Handlers) SendMove(w http.ResponseWriter, r *http.Request) {
	var req entity.SendMoveRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	column, ok := req.Column()
	if !ok {
		that.writeError(w, apperror.ErrInvalidMove)
		return
	}

	if err := that.moves.SendMove(r.Context(), req.GameID, column); err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Success: true, Message: "Move sent"})
}

// GetModelMove - GET /api/get-model-move?gameId=.
func (that *Handlers) GetModelMove(w http.ResponseWriter, r *http.Request) {
	resp, err := that.moves.GetModelMove(r.Context(), r.URL.Query().Get("gameId"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// EndGame - DELETE /api/games/{gameID}.
func (that *Handlers) EndGame(w http.ResponseWriter, r *http.Request) {
	if err := that.moves.EndGame(r.Context(), chi.URLParam(r, "gameID")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Handlers) writeError(w http.ResponseWriter, err error) {
	status, message := errorStatus(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	}

	writeJSON(w, status, errorResponse{Error: message})
}

func errorStatus(err error) (int, string) {
	for _, known := range []struct {
		err    error
		status int
	}{
		{apperror.ErrInvalidRequest, http.StatusBadRequest},
		{apperror.ErrInvalidMove, http.StatusBadRequest},
		{apperror.ErrInvalidPlayerOrder, http.StatusBadRequest},
		{apperror.ErrGameNotFound, http.StatusNotFound},
		{apperror.ErrNoPendingMove, http.StatusConflict},
	} {
		if errors.Is(err, known.err) {
			return known.status, known.err.Error()
		}
	}

	return http.StatusInternalServerError, "internal server error"
}

// decodeBody - any body that is not a single JSON object (or null) is ErrInvalidRequest.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
