package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	wheelhttp "github.com/tactilelab/wheelforge/internal/domains/wheels/adapters/http"
	wheelmemory "github.com/tactilelab/wheelforge/internal/domains/wheels/adapters/memory"
	"github.com/tactilelab/wheelforge/internal/domains/wheels/adapters/mesh"
	wheelobs "github.com/tactilelab/wheelforge/internal/domains/wheels/adapters/observability"
	wheelpostgres "github.com/tactilelab/wheelforge/internal/domains/wheels/adapters/persistence/postgres"
	"github.com/tactilelab/wheelforge/internal/domains/wheels/application"
	"github.com/tactilelab/wheelforge/internal/domains/wheels/ports"
	"github.com/tactilelab/wheelforge/internal/platform/metrics"
	platformobservability "github.com/tactilelab/wheelforge/internal/platform/observability"
	platformpostgres "github.com/tactilelab/wheelforge/internal/platform/postgres"
)

// Run boots the wheel generator HTTP API with observability, the mesh
// generator, and the history repository wired. It blocks until ctx is
// canceled, then drains in-flight requests.
func Run(ctx context.Context) error {
	const serviceName = "wheelforge-api"
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	history, cleanupHistory := buildHistoryRepository(ctx, cfg, logger)
	defer cleanupHistory()

	coreService := application.NewService(mesh.NewGenerator(), history)
	wheelService := wheelobs.New(
		coreService,
		wheelobs.WithLogger(logger),
		wheelobs.WithTracer(instruments.Tracer("internal.wheels.application")),
		wheelobs.WithMeter(instruments.Meter("internal.wheels.application")),
	)

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	wheelAPI := wheelhttp.NewWheelAPI(wheelService, cfg.HistoryLimit)
	router := NewRouter(serviceName, wheelAPI, collector)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("wheel generator API listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("wheel generator API server exited", slog.String("error", err.Error()))
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down wheel generator API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to drain server", slog.String("error", err.Error()))
			return err
		}
		return <-errCh
	}
}

func buildHistoryRepository(ctx context.Context, cfg Config, logger *slog.Logger) (ports.HistoryRepository, func()) {
	db, cleanup := platformpostgres.TryConnect(ctx, cfg.PostgresDSN, logger)
	if db == nil {
		return wheelmemory.NewHistoryRepository(), cleanup
	}
	logger.Info("generation history configured with postgres")
	return wheelpostgres.NewHistoryRepository(db), cleanup
}
