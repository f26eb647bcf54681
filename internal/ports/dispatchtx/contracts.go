// Package dispatchtx declares the transactional repository surface the
// dispatch service runs its state transitions against. Every terminating
// transition is expressed as a compare-and-set returning whether it won.
package dispatchtx

import (
	"context"
	"time"

	"courier-dispatch/internal/domain"
)

// Repository is the per-transaction view of the dispatch tables.
type Repository interface {
	// InsertBroadcast creates a searching broadcast. Returns
	// apperr.ErrAlreadyActive when the order already has one.
	InsertBroadcast(ctx context.Context, b *domain.Broadcast) error

	// GetBroadcast reads a broadcast by id; nil when absent.
	GetBroadcast(ctx context.Context, id int64) (*domain.Broadcast, error)

	// LockBroadcast takes the broadcast row lock without changing the row.
	// Every writer that touches a broadcast together with its offers locks
	// the broadcast first; the shared order is what keeps concurrent accepts
	// from deadlocking each other.
	LockBroadcast(ctx context.Context, id int64) error

	// GetRequest reads an offer without locking it; nil when absent. Used to
	// discover the broadcast before taking locks in broadcast-then-offer order.
	GetRequest(ctx context.Context, id int64) (*domain.Request, error)

	// GetRequestForUpdate reads an offer with a row lock; nil when absent.
	// Callers must hold the broadcast row lock first.
	GetRequestForUpdate(ctx context.Context, id int64) (*domain.Request, error)

	// InsertRequest opens an offer. Returns apperr.ErrDuplicateRequest when
	// the (broadcast, courier) pair already has one.
	InsertRequest(ctx context.Context, r *domain.Request) error

	// MarkAssigned sets status=assigned and the winner only if the broadcast
	// is still searching. False means the CAS lost.
	MarkAssigned(ctx context.Context, broadcastID, courierID int64) (bool, error)

	// MarkFailed sets status=failed only if the broadcast is still searching.
	MarkFailed(ctx context.Context, broadcastID int64) (bool, error)

	// AdvancePhase moves a searching broadcast from one phase to the next with
	// a fresh deadline and widened radius, only if it is still in `from` with
	// an elapsed deadline. False means another ticker got there first.
	AdvancePhase(ctx context.Context, broadcastID int64, from, to domain.BroadcastPhase, radiusKm float64, deadline, now time.Time) (bool, error)

	// SetRequestStatus transitions an offer between statuses, guarded on the
	// current status. False means the offer already left `from`.
	SetRequestStatus(ctx context.Context, requestID int64, from, to domain.RequestStatus) (bool, error)

	// SupersedePending terminates every pending sibling offer except the given
	// one (0 to supersede all) and returns how many rows changed.
	SupersedePending(ctx context.Context, broadcastID, exceptRequestID int64) (int64, error)

	// NotifiedCourierIDs lists every courier ever offered this broadcast.
	NotifiedCourierIDs(ctx context.Context, broadcastID int64) ([]int64, error)

	// SetCourierAvailability flips the directory availability flag, guarded
	// on the current value. Returns apperr.ErrConflict when the flag already
	// held the target value.
	SetCourierAvailability(ctx context.Context, courierID int64, available bool) error
}
