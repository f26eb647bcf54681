package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"courier-dispatch/internal/logx"
)

type serversIn struct {
	dig.In

	Main  *http.Server
	Pprof *http.Server `name:"pprof_server" optional:"true"`
}

// Runner runs the HTTP servers.
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP servers using the provided DI container
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := resolveLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Info("startup aborted: startup timeout exceeded")
	default:
		log.Fatalf("run error: %v", err)
	}
}

// MustRun starts the HTTP servers using the provided DI container
func MustRun(container *dig.Container) {
	NewRunner().MustRun(container)
}

func resolveLogger(container *dig.Container) logx.Logger {
	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })
	return logger
}

func run(container *dig.Container) error {
	return container.Invoke(func(in serversIn, ctx context.Context, pool *pgxpool.Pool, logger logx.Logger) error {
		startServer(in.Main, "dispatch-engine", logger)
		if in.Pprof != nil {
			startServer(in.Pprof, "pprof", logger)
		}
		waitForShutdown(ctx, logger)
		gracefulShutdown(in.Main, logger, 15*time.Second)
		if in.Pprof != nil {
			gracefulShutdown(in.Pprof, logger, time.Second)
		}
		closeResources(pool, in.Main, logger)
		return ctx.Err()
	})
}

func startServer(server *http.Server, name string, logger logx.Logger) {
	go func() {
		logger.Info(name+" listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down dispatch-engine...")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Any("err", err))
	}
}

func closeResources(pool *pgxpool.Pool, server *http.Server, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Error("server close error", logx.Any("err", err))
	}
	if pool != nil {
		pool.Close()
	}
}
