//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch_test

package dispatch

import (
	"context"
	"time"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/ports/dispatchtx"
)

// BroadcastLedger is the broadcast repository surface: the transaction runner
// plus the pool-level reads the engine and its projections need.
type BroadcastLedger interface {
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
	GetByID(ctx context.Context, id int64) (*domain.Broadcast, error)
	LatestByOrder(ctx context.Context, orderID string) (*domain.Broadcast, error)
	ListDue(ctx context.Context, now time.Time, limit int) ([]domain.Broadcast, error)
	RequestCounts(ctx context.Context, broadcastID int64) (notified, pending int, err error)
}

// RequestLedger is the offer repository surface outside a transaction.
type RequestLedger interface {
	ListPendingByCourier(ctx context.Context, courierID int64, now time.Time) ([]domain.Request, error)
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

// CandidateFinder abstracts the Partner Locator.
type CandidateFinder interface {
	FindCandidates(ctx context.Context, origin domain.Point, radiusKm float64, excludeIDs []int64, limit int) ([]domain.Candidate, error)
}

// Notifier is the notification fan-out collaborator. Offers are only announced
// after their rows are committed; publish failures never unwind a transition.
type Notifier interface {
	OfferOpened(ctx context.Context, req domain.Request) error
	BroadcastStatus(ctx context.Context, b domain.Broadcast, notified int) error
}

// OrdersGateway binds the winning courier to the order in the order store.
type OrdersGateway interface {
	BindCourier(ctx context.Context, orderID string, courierID int64) error
}

type counter interface {
	Inc()
	Add(float64)
}

// Counters groups the engine's Prometheus counters. Nil fields are skipped.
type Counters struct {
	Started         counter
	Assigned        counter
	Failed          counter
	Escalations     counter
	AcceptConflicts counter
	RequestsExpired counter
	NotifyFailures  counter
}

func inc(c counter) {
	if c != nil {
		c.Inc()
	}
}

func add(c counter, v float64) {
	if c != nil && v > 0 {
		c.Add(v)
	}
}
