package dispatch

import (
	"context"
	"errors"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/ports/dispatchtx"
)

// ExpireStale sweeps pending offers whose window closed. Idempotent; safe to
// run concurrently with accepts.
func (s *Service) ExpireStale(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.requests.ExpireStale(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		add(s.counters.RequestsExpired, float64(n))
		s.logger.Debug("stale offers expired", logx.Int64("count", n))
	}
	return n, nil
}

// AdvanceDue walks every searching broadcast whose phase deadline elapsed and
// advances it: controlled_parallel escalates to extended, extended fails.
// Each advance is its own transaction guarded by compare-and-set, so a
// duplicate or late tick is a no-op, and one broken broadcast does not stall
// the rest of the sweep.
func (s *Service) AdvanceDue(ctx context.Context) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	due, err := s.broadcasts.ListDue(ctx, s.now(), s.cfg.SweepBatch)
	if err != nil {
		return 0, err
	}

	advanced := 0
	var firstErr error
	for _, b := range due {
		if ctx.Err() != nil {
			break
		}
		if err := s.advance(ctx, b); err != nil {
			s.logger.Error("broadcast advance failed",
				logx.Int64("broadcast_id", b.ID),
				logx.String("phase", string(b.Phase)),
				logx.Any("err", err),
			)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		advanced++
	}
	return advanced, firstErr
}

func (s *Service) advance(ctx context.Context, b domain.Broadcast) error {
	switch b.Phase {
	case domain.PhaseControlledParallel:
		return s.escalate(ctx, b)
	case domain.PhaseExtended:
		return s.exhaust(ctx, b)
	default:
		return apperr.ErrInvalid
	}
}

// escalate widens the scope: new radius, higher limit, fresh deadline, offers
// for couriers not yet notified. Phase advance and request opening share one
// transaction, so a failed tick leaves no partial escalation behind.
func (s *Service) escalate(ctx context.Context, b domain.Broadcast) error {
	var (
		escalated bool
		opened    []domain.Request
		next      domain.Broadcast
	)

	err := s.broadcasts.WithTx(ctx, func(tx dispatchtx.Repository) error {
		now := s.now()
		radius := b.RadiusKm * s.cfg.ExtendedRadiusFactor
		deadline := now.Add(s.cfg.PhaseWindow)

		ok, err := tx.AdvancePhase(ctx, b.ID, domain.PhaseControlledParallel, domain.PhaseExtended, radius, deadline, now)
		if err != nil {
			return err
		}
		if !ok {
			// Someone else advanced or terminated it. Not an error.
			return nil
		}
		escalated = true

		next = b
		next.Phase = domain.PhaseExtended
		next.RadiusKm = radius
		next.PhaseDeadline = deadline

		notified, err := tx.NotifiedCourierIDs(ctx, b.ID)
		if err != nil {
			return err
		}

		cands, err := s.locator.FindCandidates(ctx, b.Origin, radius, notified, s.cfg.ExtendedLimit)
		if err != nil {
			return err
		}

		for _, c := range cands {
			req := domain.Request{
				BroadcastID: b.ID,
				OrderID:     b.OrderID,
				CourierID:   c.CourierID,
				Status:      domain.RequestPending,
				DistanceKm:  c.DistanceKm,
				ExpiresAt:   deadline,
			}
			if err := tx.InsertRequest(ctx, &req); err != nil {
				if errors.Is(err, apperr.ErrDuplicateRequest) {
					// The locator already excluded notified couriers; the
					// unique constraint is the backstop.
					continue
				}
				return err
			}
			opened = append(opened, req)
		}
		return nil
	})
	if err != nil || !escalated {
		return err
	}

	inc(s.counters.Escalations)
	s.logger.Info("broadcast escalated",
		logx.Int64("broadcast_id", b.ID),
		logx.String("order_id", b.OrderID),
		logx.Float64("radius_km", next.RadiusKm),
		logx.Int("new_offers", len(opened)),
	)

	s.announceOffers(ctx, opened)
	s.announceStatus(ctx, next, len(opened))
	return nil
}

// exhaust fails a broadcast whose extended deadline elapsed with no winner.
// Failure is definitive; any retry is an explicit vendor action.
func (s *Service) exhaust(ctx context.Context, b domain.Broadcast) error {
	var failed bool

	err := s.broadcasts.WithTx(ctx, func(tx dispatchtx.Repository) error {
		ok, err := tx.MarkFailed(ctx, b.ID)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		failed = true
		_, err = tx.SupersedePending(ctx, b.ID, 0)
		return err
	})
	if err != nil || !failed {
		return err
	}

	inc(s.counters.Failed)
	s.logger.Warn("broadcast exhausted",
		logx.Int64("broadcast_id", b.ID),
		logx.String("order_id", b.OrderID),
	)

	done := b
	done.Status = domain.BroadcastFailed
	s.announceStatus(ctx, done, 0)
	return nil
}
