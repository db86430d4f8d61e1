package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options - collaborators of the router besides the move use case.
type Options struct {
	AllowedOrigins []string
	Observer       requestObserver
	Metrics        http.Handler
	WebSocket      http.Handler
}

type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

// NewRouter - registers every route behind the permissive CORS layer.
func NewRouter(logger *slog.Logger, moves moveUseCase, opts Options) http.Handler {
	handlers := NewHandlers(logger, moves)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	if opts.Observer != nil {
		router.Use(observeRequests(opts.Observer))
	}

	router.Get("/ping", PingHandler)

	router.Route("/api", func(r chi.Router) {
		r.Post("/get-move", handlers.GetMove)
		r.Post("/start-game", handlers.StartGame)
		r.Post("/send-move", handlers.SendMove)
		r.Get("/get-model-move", handlers.GetModelMove)
		r.Delete("/games/{gameID}", handlers.EndGame)
	})

	if opts.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	if opts.WebSocket != nil {
		router.Method(http.MethodGet, "/ws", opts.WebSocket)
	}

	return router
}

func New(logger *slog.Logger, port string, handler http.Handler) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      handler,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

// Start - serves until the context is canceled, then shuts down within shutdownTimeout.
func (that *Server) Start(ctx context.Context, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		that.logger.Info("listening", "addr", that.srv.Addr)
		if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := that.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	that.logger.Info("server stopped")

	return nil
}
