package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	writeWait      = 10 * time.Second
	readWait       = 60 * time.Second
	maxMessageSize = 1 << 16
)

var errUnknownAction = errors.New("unknown action")

type moveUseCase interface {
	GetMove(ctx context.Context, source string, req *entity.MoveRequest) *entity.MoveResponse

	StartGame(ctx context.Context, gameID, playerOrder string) (*entity.Session, error)
	SendMove(ctx context.Context, gameID string, column int) error
	GetModelMove(ctx context.Context, gameID string) (*entity.MoveResponse, error)
	EndGame(ctx context.Context, gameID string) error
}

type handlerFunc func(ctx context.Context, message *Message) (any, error)

type Server struct {
	logger   *slog.Logger
	moves    moveUseCase
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, moves moveUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		moves:  moves,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionMoveGet] = server.handleGetMove
	server.handlers[actionGameStart] = server.handleStartGame
	server.handlers[actionGameMove] = server.handleSendMove
	server.handlers[actionGameModelMove] = server.handleGetModelMove
	server.handlers[actionGameEnd] = server.handleEndGame

	return server
}

// ServeHTTP - upgrades the connection and serves it until the client goes away.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Debug("connection established", "remote_addr", r.RemoteAddr)

	if err = that.handleMessages(r.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - answers each frame in order on the same connection.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	conn.SetReadLimit(maxMessageSize)

	for {
		if err := conn.SetReadDeadline(time.Now().Add(readWait)); err != nil {
			return fmt.Errorf("failed to set read deadline: %w", err)
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				return fmt.Errorf("failed to read message: %w", err)
			}
			return nil
		}

		response := that.dispatch(ctx, data)

		if err = conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return fmt.Errorf("failed to set write deadline: %w", err)
		}

		if err = conn.WriteJSON(response); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
	}
}

func (that *Server) dispatch(ctx context.Context, data []byte) *Message {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		return errorMessage("", "invalid message")
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		return errorMessage(message.Action, errUnknownAction.Error())
	}

	payload, err := handler(ctx, &message)
	if err != nil {
		return errorMessage(message.Action, that.errorText(message.Action, err))
	}

	return newMessage(message.Action, payload)
}
