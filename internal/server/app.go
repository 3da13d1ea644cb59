// Package server initializes and runs the application tracker server.
// It opens the configured store, wires services behind the HTTP API,
// and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Anish2905/JobApplicantTracker/internal/logging"
	"github.com/Anish2905/JobApplicantTracker/internal/server/blob"
	"github.com/Anish2905/JobApplicantTracker/internal/server/config"
	"github.com/Anish2905/JobApplicantTracker/internal/server/httpapi"
	"github.com/Anish2905/JobApplicantTracker/internal/server/repositories/repomanager"
	"github.com/Anish2905/JobApplicantTracker/internal/server/services"
	"github.com/labstack/echo/v4"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	router *echo.Echo
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	repos, err := repomanager.New(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	var blobs blob.Store
	if s3cfg, ok := cfg.S3(); ok {
		blobs, err = blob.NewS3Store(ctx, s3cfg)
		if err != nil {
			repos.Close()
			return nil, fmt.Errorf("s3 init error: %w", err)
		}
		logger.Info(ctx, "résumé payload offload enabled", "bucket", s3cfg.Bucket)
	}

	var limiter *httpapi.AuthRateLimiter
	if cfg.RateLimitEnabled {
		rdb, err := httpapi.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			// degrade to in-memory counters rather than refuse to start
			logger.Warn(ctx, "redis unavailable, using in-memory rate limiting", "error", err)
		}
		limiter = httpapi.NewAuthRateLimiter(ctx, cfg.RateLimitMaxAttempts, cfg.RateLimitWindow, rdb, logger)
	}

	us := services.NewUserService(repos, cfg)
	ss := services.NewSyncService(repos, logger)
	as := services.NewApplicationService(repos)
	rs := services.NewResumeService(repos, blobs, logger)

	router := httpapi.NewRouter([]byte(cfg.SecretKey), logger, limiter, us, ss, as, rs)

	return &App{config: cfg, logger: logger, repos: repos, router: router}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr, "driver", app.config.DatabaseDriver)

	app.initSignalHandler(cancelFunc)

	errCh := make(chan error, 1)
	go func() {
		if err := app.router.Start(app.config.EndpointAddr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		app.logger.Error(ctx, "server error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.router.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(ctx, "shutdown error", "error", err)
	}
	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "store close error", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}
