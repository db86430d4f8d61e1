package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rocketscienceinc/connectfour-backend/internal/config"
	"github.com/rocketscienceinc/connectfour-backend/internal/metrics"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour-backend/internal/service"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
	"github.com/rocketscienceinc/connectfour-backend/transport/rest"
	"github.com/rocketscienceinc/connectfour-backend/transport/websocket"
)

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, logger, conf)
}

// Run - wires every component and serves HTTP and websocket traffic on one port until ctx is done.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	sessionRepo, closeRepo, err := newSessionRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	appMetrics := metrics.New()
	moveService := service.NewMoveService()
	sessionService := service.NewSessionService(sessionRepo, moveService, conf.SessionTTL)
	moveManager := usecase.NewMoveManager(logger, moveService, sessionService, appMetrics)

	router := rest.NewRouter(logger, moveManager, rest.Options{
		AllowedOrigins: conf.CORS.AllowedOrigins,
		Observer:       appMetrics,
		Metrics:        promhttp.HandlerFor(appMetrics.Registry, promhttp.HandlerOpts{}),
		WebSocket:      websocket.New(logger, moveManager),
	})

	log.Info("Starting HTTP server", "port", conf.HTTPPort)

	if err = rest.New(logger, conf.HTTPPort, router).Start(ctx, conf.ShutdownTimeout); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// newSessionRepository - redis when a host is configured, process memory otherwise.
func newSessionRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.SessionRepository, func(), error) {
	if !conf.Redis.Enabled() {
		log.Info("redis host is empty, keeping sessions in memory")
		return repository.NewMemorySessionRepository(), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewSessionRepository(redisStorage.Connection), closeFn, nil
}
