// Package dispatch implements the broadcast state machine and the assignment
// arbiter. The broadcast status column is the single lock point: accept,
// cancel and exhaustion all terminate a broadcast through a compare-and-set
// on it, so concurrent callers resolve to exactly one winner by construction.
package dispatch

import (
	"context"
	"strings"
	"time"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/ports/dispatchtx"
)

// Config stores the matching-engine knobs. The phase window drives both the
// offer expiry and the broadcast phase deadline; they are always equal.
type Config struct {
	PhaseWindow          time.Duration
	InitialLimit         int
	ExtendedLimit        int
	ExtendedRadiusFactor float64
	OperationTimeout     time.Duration
	SweepBatch           int
}

func (c Config) withDefaults() Config {
	if c.PhaseWindow <= 0 {
		c.PhaseWindow = 15 * time.Second
	}
	if c.InitialLimit <= 0 {
		c.InitialLimit = 3
	}
	if c.ExtendedLimit <= 0 {
		c.ExtendedLimit = 10
	}
	if c.ExtendedRadiusFactor < 1 {
		c.ExtendedRadiusFactor = 1
	}
	if c.OperationTimeout <= 0 {
		c.OperationTimeout = 3 * time.Second
	}
	if c.SweepBatch <= 0 {
		c.SweepBatch = 100
	}
	return c
}

// Service is the dispatch engine.
type Service struct {
	broadcasts BroadcastLedger
	requests   RequestLedger
	locator    CandidateFinder
	notifier   Notifier
	orders     OrdersGateway
	counters   Counters
	cfg        Config
	logger     logx.Logger
	now        func() time.Time
}

// NewService creates the dispatch engine. notifier and orders may be nil when
// the corresponding collaborator is not configured.
func NewService(broadcasts BroadcastLedger, requests RequestLedger, finder CandidateFinder, notifier Notifier, orders OrdersGateway, counters Counters, cfg Config, logger logx.Logger) *Service {
	return &Service{
		broadcasts: broadcasts,
		requests:   requests,
		locator:    finder,
		notifier:   notifier,
		orders:     orders,
		counters:   counters,
		cfg:        cfg.withDefaults(),
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.OperationTimeout)
}

// StartBroadcast creates a broadcast for an order entering ready_for_pickup
// (or an explicit re-search after a failed one). The first phase notifies a
// small top-K of the closest couriers; when that scope is empty and the
// extended scope is materially larger, the broadcast starts extended right
// away; when even that is empty it fails immediately.
func (s *Service) StartBroadcast(ctx context.Context, orderID string, origin domain.Point, radiusKm float64) (domain.Broadcast, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" || !origin.Valid() || radiusKm <= 0 {
		return domain.Broadcast{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		b      domain.Broadcast
		opened []domain.Request
	)

	err := s.broadcasts.WithTx(ctx, func(tx dispatchtx.Repository) error {
		now := s.now()

		cands, err := s.locator.FindCandidates(ctx, origin, radiusKm, nil, s.cfg.InitialLimit)
		if err != nil {
			return err
		}

		phase := domain.PhaseControlledParallel
		radius := radiusKm
		if len(cands) == 0 && s.cfg.ExtendedRadiusFactor > 1 {
			// Nobody in the narrow scope; retrying the same empty scope later
			// is pointless, so jump straight to the wide one.
			phase = domain.PhaseExtended
			radius = radiusKm * s.cfg.ExtendedRadiusFactor
			cands, err = s.locator.FindCandidates(ctx, origin, radius, nil, s.cfg.ExtendedLimit)
			if err != nil {
				return err
			}
		}

		b = domain.Broadcast{
			OrderID:       orderID,
			Origin:        origin,
			RadiusKm:      radius,
			Phase:         phase,
			Status:        domain.BroadcastSearching,
			PhaseDeadline: now.Add(s.cfg.PhaseWindow),
		}
		if err := tx.InsertBroadcast(ctx, &b); err != nil {
			return err
		}

		if len(cands) == 0 {
			ok, err := tx.MarkFailed(ctx, b.ID)
			if err != nil {
				return err
			}
			if ok {
				b.Status = domain.BroadcastFailed
			}
			return nil
		}

		opened, err = s.openRequests(ctx, tx, &b, cands)
		return err
	})
	if err != nil {
		return domain.Broadcast{}, err
	}

	inc(s.counters.Started)
	if b.Status == domain.BroadcastFailed {
		inc(s.counters.Failed)
		s.logger.Warn("broadcast exhausted on start",
			logx.String("order_id", orderID),
			logx.Int64("broadcast_id", b.ID),
		)
	} else {
		s.logger.Info("broadcast started",
			logx.String("order_id", orderID),
			logx.Int64("broadcast_id", b.ID),
			logx.String("phase", string(b.Phase)),
			logx.Float64("radius_km", b.RadiusKm),
			logx.Int("notified", len(opened)),
		)
	}

	// Offer rows are committed at this point; only now are couriers told.
	s.announceOffers(ctx, opened)
	s.announceStatus(ctx, b, len(opened))

	return b, nil
}

// openRequests opens one offer per candidate with the broadcast's current
// deadline as the expiry.
func (s *Service) openRequests(ctx context.Context, tx dispatchtx.Repository, b *domain.Broadcast, cands []domain.Candidate) ([]domain.Request, error) {
	opened := make([]domain.Request, 0, len(cands))
	for _, c := range cands {
		req := domain.Request{
			BroadcastID: b.ID,
			OrderID:     b.OrderID,
			CourierID:   c.CourierID,
			Status:      domain.RequestPending,
			DistanceKm:  c.DistanceKm,
			ExpiresAt:   b.PhaseDeadline,
		}
		if err := tx.InsertRequest(ctx, &req); err != nil {
			return nil, err
		}
		opened = append(opened, req)
	}
	return opened, nil
}

// AcceptOffer converts one courier's accept into the durable, exclusive
// binding between order and courier. The compare-and-set on the broadcast
// status guarantees at most one winner regardless of arrival order.
func (s *Service) AcceptOffer(ctx context.Context, requestID, courierID int64) (domain.Assignment, error) {
	if requestID <= 0 || courierID <= 0 {
		return domain.Assignment{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		result  domain.Assignment
		outcome error // conflict outcomes that must still commit their writes
	)

	err := s.broadcasts.WithTx(ctx, func(tx dispatchtx.Repository) error {
		ref, err := tx.GetRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if ref == nil {
			return apperr.ErrNotFound
		}
		if ref.CourierID != courierID {
			return apperr.ErrNotAuthorized
		}

		// Lock order is broadcast first, then the offer row. Cancel,
		// exhaustion and the winner's supersede all write in that order;
		// two accepts taking locks the other way around would deadlock.
		if err := tx.LockBroadcast(ctx, ref.BroadcastID); err != nil {
			return err
		}

		req, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return apperr.ErrNotFound
		}
		if req.Status != domain.RequestPending {
			// A concurrent winner superseded this offer between the unlocked
			// read and the lock. Report the broadcast outcome, not the row's.
			b, err := tx.GetBroadcast(ctx, req.BroadcastID)
			if err != nil {
				return err
			}
			if b != nil && b.Status == domain.BroadcastAssigned {
				outcome = apperr.ErrAlreadyAssigned
			} else {
				outcome = apperr.ErrStaleRequest
			}
			return nil
		}

		now := s.now()
		if req.Expired(now) {
			// Expire the row even though the accept fails, so the sweep has
			// less to do; the error must not roll this back.
			if _, err := tx.SetRequestStatus(ctx, req.ID, domain.RequestPending, domain.RequestExpired); err != nil {
				return err
			}
			outcome = apperr.ErrStaleRequest
			return nil
		}

		won, err := tx.MarkAssigned(ctx, req.BroadcastID, courierID)
		if err != nil {
			return err
		}
		if !won {
			// Another courier's accept (or a cancel) committed first.
			if _, err := tx.SetRequestStatus(ctx, req.ID, domain.RequestPending, domain.RequestSuperseded); err != nil {
				return err
			}
			outcome = apperr.ErrAlreadyAssigned
			return nil
		}

		if _, err := tx.SetRequestStatus(ctx, req.ID, domain.RequestPending, domain.RequestAccepted); err != nil {
			return err
		}
		if _, err := tx.SupersedePending(ctx, req.BroadcastID, req.ID); err != nil {
			return err
		}
		if err := tx.SetCourierAvailability(ctx, courierID, false); err != nil {
			return err
		}

		result = domain.Assignment{
			BroadcastID: req.BroadcastID,
			OrderID:     req.OrderID,
			CourierID:   courierID,
			DistanceKm:  req.DistanceKm,
			AssignedAt:  now,
		}
		return nil
	})
	if err != nil {
		return domain.Assignment{}, err
	}
	if outcome != nil {
		inc(s.counters.AcceptConflicts)
		return domain.Assignment{}, outcome
	}

	inc(s.counters.Assigned)
	s.logger.Info("courier assigned",
		logx.String("event", "courier_assigned"),
		logx.String("order_id", result.OrderID),
		logx.Int64("broadcast_id", result.BroadcastID),
		logx.Int64("courier_id", result.CourierID),
		logx.Float64("distance_km", result.DistanceKm),
	)

	s.bindOrder(ctx, result)
	s.announceAssigned(ctx, result)

	return result, nil
}

// RejectOffer marks a pending offer rejected. A rejection only kills that one
// offer; the phase clock is unaffected.
func (s *Service) RejectOffer(ctx context.Context, requestID, courierID int64) error {
	if requestID <= 0 || courierID <= 0 {
		return apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var outcome error

	err := s.broadcasts.WithTx(ctx, func(tx dispatchtx.Repository) error {
		req, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return apperr.ErrNotFound
		}
		if req.CourierID != courierID {
			return apperr.ErrNotAuthorized
		}
		if req.Status != domain.RequestPending {
			return apperr.ErrStaleRequest
		}
		if req.Expired(s.now()) {
			if _, err := tx.SetRequestStatus(ctx, req.ID, domain.RequestPending, domain.RequestExpired); err != nil {
				return err
			}
			outcome = apperr.ErrStaleRequest
			return nil
		}
		if _, err := tx.SetRequestStatus(ctx, req.ID, domain.RequestPending, domain.RequestRejected); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	if outcome != nil {
		return outcome
	}

	s.logger.Info("offer rejected",
		logx.Int64("request_id", requestID),
		logx.Int64("courier_id", courierID),
	)
	return nil
}

// CancelBroadcast terminates a searching broadcast on vendor request. It uses
// the same compare-and-set as accept, so a cancel racing an accept cannot both
// succeed.
func (s *Service) CancelBroadcast(ctx context.Context, broadcastID int64) error {
	if broadcastID <= 0 {
		return apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var b domain.Broadcast

	err := s.broadcasts.WithTx(ctx, func(tx dispatchtx.Repository) error {
		cur, err := tx.GetBroadcast(ctx, broadcastID)
		if err != nil {
			return err
		}
		if cur == nil {
			return apperr.ErrNotFound
		}

		ok, err := tx.MarkFailed(ctx, broadcastID)
		if err != nil {
			return err
		}
		if !ok {
			if cur.Status == domain.BroadcastAssigned {
				return apperr.ErrAlreadyAssigned
			}
			return apperr.ErrConflict
		}

		if _, err := tx.SupersedePending(ctx, broadcastID, 0); err != nil {
			return err
		}

		b = *cur
		b.Status = domain.BroadcastFailed
		return nil
	})
	if err != nil {
		return err
	}

	inc(s.counters.Failed)
	s.logger.Info("broadcast cancelled",
		logx.Int64("broadcast_id", broadcastID),
		logx.String("order_id", b.OrderID),
	)
	s.announceStatus(ctx, b, 0)
	return nil
}

// BroadcastStatus returns the latest broadcast for an order with its offer
// counts, or nil when the order was never dispatched.
func (s *Service) BroadcastStatus(ctx context.Context, orderID string) (*domain.BroadcastView, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	b, err := s.broadcasts.LatestByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}

	notified, pending, err := s.broadcasts.RequestCounts(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	return &domain.BroadcastView{Broadcast: *b, NotifiedCount: notified, PendingCount: pending}, nil
}

// PendingOffers lists a courier's live offers.
func (s *Service) PendingOffers(ctx context.Context, courierID int64) ([]domain.Request, error) {
	if courierID <= 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.requests.ListPendingByCourier(ctx, courierID, s.now())
}

func (s *Service) bindOrder(ctx context.Context, a domain.Assignment) {
	if s.orders == nil {
		return
	}
	if err := s.orders.BindCourier(ctx, a.OrderID, a.CourierID); err != nil {
		// The assignment is already durable; the order store catches up via
		// its own reconciliation. Surface the failure, do not unwind.
		s.logger.Error("order binding failed",
			logx.String("order_id", a.OrderID),
			logx.Int64("courier_id", a.CourierID),
			logx.Any("err", err),
		)
	}
}

func (s *Service) announceOffers(ctx context.Context, offers []domain.Request) {
	if s.notifier == nil {
		return
	}
	for _, req := range offers {
		if err := s.notifier.OfferOpened(ctx, req); err != nil {
			inc(s.counters.NotifyFailures)
			s.logger.Error("offer notification failed",
				logx.Int64("request_id", req.ID),
				logx.Int64("courier_id", req.CourierID),
				logx.Any("err", err),
			)
		}
	}
}

func (s *Service) announceStatus(ctx context.Context, b domain.Broadcast, notified int) {
	if s.notifier == nil || b.ID == 0 {
		return
	}
	if err := s.notifier.BroadcastStatus(ctx, b, notified); err != nil {
		inc(s.counters.NotifyFailures)
		s.logger.Error("status notification failed",
			logx.Int64("broadcast_id", b.ID),
			logx.Any("err", err),
		)
	}
}

func (s *Service) announceAssigned(ctx context.Context, a domain.Assignment) {
	if s.notifier == nil {
		return
	}
	winner := a.CourierID
	b := domain.Broadcast{
		ID:              a.BroadcastID,
		OrderID:         a.OrderID,
		Status:          domain.BroadcastAssigned,
		WinnerCourierID: &winner,
	}
	if err := s.notifier.BroadcastStatus(ctx, b, 0); err != nil {
		inc(s.counters.NotifyFailures)
		s.logger.Error("status notification failed",
			logx.Int64("broadcast_id", a.BroadcastID),
			logx.Any("err", err),
		)
	}
}
