//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/ports/dispatchtx"
)

// DispatchPort abstracts the subset of dispatch engine operations
// needed by orders Processor when handling order events
type DispatchPort interface {
	StartBroadcast(ctx context.Context, orderID string, origin domain.Point, radiusKm float64) (domain.Broadcast, error)
	CancelBroadcast(ctx context.Context, broadcastID int64) error
}

// BroadcastIndex abstracts the broadcast lookups and the transaction runner
// the Processor needs around the engine calls
type BroadcastIndex interface {
	LatestByOrder(ctx context.Context, orderID string) (*domain.Broadcast, error)
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
}
