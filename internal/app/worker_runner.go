package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"
	"golang.org/x/sync/errgroup"

	"courier-dispatch/internal/gateway/notify"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/transport/kafka"
	"courier-dispatch/internal/worker"
)

// WorkerRunner runs the background worker: the order-event consumer plus the
// expiry/escalation sweeper.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun runs the worker using the provided DI container
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	logger logx.Logger,
	consumer *kafka.Consumer,
	sweeper *worker.Sweeper,
	publisher *notify.Publisher,
) error {
	if sweeper == nil {
		return fmt.Errorf("sweeper is nil: worker container misconfigured")
	}
	defer closeWorker(pool, logger, consumer, publisher)

	logger.Info("dispatch-worker started")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sweeper.Run(gctx) })
	if consumer != nil {
		g.Go(func() error { return consumer.Run(gctx) })
	}
	return g.Wait()
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer, publisher *notify.Publisher) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Any("err", err))
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Error("notify close error", logx.Any("err", err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
