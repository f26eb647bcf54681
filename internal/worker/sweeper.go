package worker

import (
	"context"
	"time"

	"courier-dispatch/internal/logx"
)

// escalator is the slice of the dispatch service the sweeper drives.
type escalator interface {
	ExpireStale(ctx context.Context) (int64, error)
	AdvanceDue(ctx context.Context) (int, error)
}

// Sweeper periodically expires stale offers and advances due broadcasts.
type Sweeper struct {
	svc      escalator
	interval time.Duration
	logger   logx.Logger
}

// NewSweeper creates a Sweeper. A non-positive interval falls back to 2s.
func NewSweeper(svc escalator, interval time.Duration, logger logx.Logger) *Sweeper {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Sweeper{svc: svc, interval: interval, logger: logger}
}

// Run ticks until ctx is cancelled. A failed sweep is logged and the next
// tick retries; nothing else depends on a sweep succeeding.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	expired, err := s.svc.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("offer expiry sweep failed", logx.Any("err", err))
	} else if expired > 0 {
		s.logger.Info("expired stale offers", logx.Int64("count", expired))
	}

	advanced, err := s.svc.AdvanceDue(ctx)
	if err != nil {
		s.logger.Error("broadcast advance sweep failed",
			logx.Int("advanced", advanced),
			logx.Any("err", err),
		)
		return
	}
	if advanced > 0 {
		s.logger.Info("advanced due broadcasts", logx.Int("count", advanced))
	}
}
