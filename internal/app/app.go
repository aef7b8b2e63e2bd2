package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/K-svg-lab/palabra-sub002/internal/adapter/postgres"
	"github.com/K-svg-lab/palabra-sub002/internal/adapter/postgres/reviewlog"
	"github.com/K-svg-lab/palabra-sub002/internal/adapter/postgres/reviewrecord"
	"github.com/K-svg-lab/palabra-sub002/internal/adapter/postgres/srmetadata"
	"github.com/K-svg-lab/palabra-sub002/internal/config"
	"github.com/K-svg-lab/palabra-sub002/internal/service/study"
	"github.com/K-svg-lab/palabra-sub002/internal/transport/middleware"
	"github.com/K-svg-lab/palabra-sub002/internal/transport/rest"
	"github.com/K-svg-lab/palabra-sub002/migrations"
)

// limiterSweepInterval controls how often idle rate-limit buckets are dropped.
const limiterSweepInterval = time.Minute

// Run loads configuration, connects to PostgreSQL, applies migrations and
// serves the HTTP API until ctx is cancelled. Cancellation triggers a
// graceful shutdown bounded by server.shutdown_timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return err
		}
	}

	limiter := middleware.NewRateLimiter(limiterSweepInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newHandler(pool, cfg, logger, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// newHandler wires storage, services and transport into one http.Handler.
func newHandler(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger, limiter *middleware.RateLimiter) http.Handler {
	records := reviewrecord.New(pool)
	metadata := srmetadata.New(pool)
	reviews := reviewlog.New(pool)
	txm := postgres.NewTxManager(pool)

	studySvc := study.NewService(logger, records, metadata, reviews, txm, cfg.SRS.ToDomain(), cfg.Answer.ToDomain())

	mux := http.NewServeMux()
	rest.NewHealthHandler(map[string]rest.Pinger{"postgres": pool}, BuildVersion()).Register(mux)
	rest.NewReviewHandler(studySvc, logger).Register(mux, limiter.Limit(cfg.Server.SubmitRatePerMinute))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.UserID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(mux)
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
