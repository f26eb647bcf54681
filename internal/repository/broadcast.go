package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/ports/dispatchtx"
)

// BroadcastRepo represents the delivery broadcast repository.
type BroadcastRepo struct {
	db DB
}

// NewBroadcastRepo creates a new BroadcastRepo.
func NewBroadcastRepo(db DB) *BroadcastRepo {
	return &BroadcastRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *BroadcastRepo) WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

const broadcastColumns = `id, order_id, origin_lat, origin_lon, radius_km,
       phase, status, phase_deadline, winner_courier_id, created_at`

func scanBroadcast(row pgx.Row) (*domain.Broadcast, error) {
	var b domain.Broadcast
	err := row.Scan(&b.ID, &b.OrderID, &b.Origin.Lat, &b.Origin.Lon, &b.RadiusKm,
		&b.Phase, &b.Status, &b.PhaseDeadline, &b.WinnerCourierID, &b.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// GetByID - returns a broadcast by its ID, nil when absent.
func (r *BroadcastRepo) GetByID(ctx context.Context, id int64) (*domain.Broadcast, error) {
	b, err := scanBroadcast(r.db.QueryRow(ctx,
		`SELECT `+broadcastColumns+` FROM delivery_broadcasts WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get broadcast %d: %w", id, err)
	}
	return b, nil
}

// LatestByOrder - returns the most recent broadcast for an order, nil when the
// order was never dispatched.
func (r *BroadcastRepo) LatestByOrder(ctx context.Context, orderID string) (*domain.Broadcast, error) {
	b, err := scanBroadcast(r.db.QueryRow(ctx,
		`SELECT `+broadcastColumns+`
         FROM delivery_broadcasts
         WHERE order_id = $1
         ORDER BY id DESC
         LIMIT 1`, orderID))
	if err != nil {
		return nil, fmt.Errorf("latest broadcast for order %q: %w", orderID, err)
	}
	return b, nil
}

// ListDue - lists searching broadcasts whose phase deadline elapsed, oldest
// deadline first. Used by the escalation sweeper.
func (r *BroadcastRepo) ListDue(ctx context.Context, now time.Time, limit int) ([]domain.Broadcast, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+broadcastColumns+`
         FROM delivery_broadcasts
         WHERE status = $1 AND phase_deadline <= $2
         ORDER BY phase_deadline ASC
         LIMIT $3`, string(domain.BroadcastSearching), now, limit)
	if err != nil {
		return nil, fmt.Errorf("list due broadcasts: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Broadcast, 0, limit)
	for rows.Next() {
		var b domain.Broadcast
		if err := rows.Scan(&b.ID, &b.OrderID, &b.Origin.Lat, &b.Origin.Lon, &b.RadiusKm,
			&b.Phase, &b.Status, &b.PhaseDeadline, &b.WinnerCourierID, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// RequestCounts - returns how many couriers were ever notified for a broadcast
// and how many offers are still pending.
func (r *BroadcastRepo) RequestCounts(ctx context.Context, broadcastID int64) (notified, pending int, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $2)
         FROM delivery_requests
         WHERE broadcast_id = $1`, broadcastID, string(domain.RequestPending),
	).Scan(&notified, &pending)
	if err != nil {
		return 0, 0, fmt.Errorf("request counts for broadcast %d: %w", broadcastID, err)
	}
	return notified, pending, nil
}

// TxRepo represents the transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

var _ dispatchtx.Repository = (*TxRepo)(nil)

// InsertBroadcast - creates a searching broadcast.
func (r *TxRepo) InsertBroadcast(ctx context.Context, b *domain.Broadcast) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO delivery_broadcasts
            (order_id, origin_lat, origin_lon, radius_km, phase, status, phase_deadline)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `, b.OrderID, b.Origin.Lat, b.Origin.Lon, b.RadiusKm,
		string(b.Phase), string(b.Status), b.PhaseDeadline).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrAlreadyActive
		}
		return fmt.Errorf("insert broadcast for order %q: %w", b.OrderID, err)
	}
	return nil
}

// GetBroadcast - reads a broadcast by id, nil when absent.
func (r *TxRepo) GetBroadcast(ctx context.Context, id int64) (*domain.Broadcast, error) {
	b, err := scanBroadcast(r.tx.QueryRow(ctx,
		`SELECT `+broadcastColumns+` FROM delivery_broadcasts WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get broadcast %d: %w", id, err)
	}
	return b, nil
}

// LockBroadcast - takes the broadcast row lock without changing the row.
// Every writer that touches a broadcast together with its offers locks the
// broadcast first, so concurrent accepts serialize here instead of
// deadlocking against the winner's SupersedePending.
func (r *TxRepo) LockBroadcast(ctx context.Context, id int64) error {
	var locked int64
	err := r.tx.QueryRow(ctx,
		`SELECT id FROM delivery_broadcasts WHERE id = $1 FOR UPDATE`, id,
	).Scan(&locked)
	if err != nil {
		if IsNotFound(err) {
			return apperr.ErrNotFound
		}
		return fmt.Errorf("lock broadcast %d: %w", id, err)
	}
	return nil
}

// GetRequest - reads an offer without locking it, nil when absent.
func (r *TxRepo) GetRequest(ctx context.Context, id int64) (*domain.Request, error) {
	req, err := scanRequestRow(r.tx.QueryRow(ctx, `
        SELECT id, broadcast_id, order_id, courier_id, status, distance_km, expires_at, created_at
        FROM delivery_requests
        WHERE id = $1
    `, id))
	if err != nil {
		return nil, fmt.Errorf("get request %d: %w", id, err)
	}
	return req, nil
}

// GetRequestForUpdate - reads an offer with a row lock, nil when absent.
// Callers take the broadcast lock first.
func (r *TxRepo) GetRequestForUpdate(ctx context.Context, id int64) (*domain.Request, error) {
	req, err := scanRequestRow(r.tx.QueryRow(ctx, `
        SELECT id, broadcast_id, order_id, courier_id, status, distance_km, expires_at, created_at
        FROM delivery_requests
        WHERE id = $1
        FOR UPDATE
    `, id))
	if err != nil {
		return nil, fmt.Errorf("get request %d for update: %w", id, err)
	}
	return req, nil
}

func scanRequestRow(row pgx.Row) (*domain.Request, error) {
	var req domain.Request
	err := row.Scan(&req.ID, &req.BroadcastID, &req.OrderID, &req.CourierID,
		&req.Status, &req.DistanceKm, &req.ExpiresAt, &req.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

// InsertRequest - opens an offer for a (broadcast, courier) pair.
func (r *TxRepo) InsertRequest(ctx context.Context, req *domain.Request) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO delivery_requests
            (broadcast_id, order_id, courier_id, status, distance_km, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `, req.BroadcastID, req.OrderID, req.CourierID,
		string(req.Status), req.DistanceKm, req.ExpiresAt).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrDuplicateRequest
		}
		return fmt.Errorf("insert request (broadcast %d, courier %d): %w",
			req.BroadcastID, req.CourierID, err)
	}
	return nil
}

// MarkAssigned - compare-and-set searching → assigned with the winner recorded.
func (r *TxRepo) MarkAssigned(ctx context.Context, broadcastID, courierID int64) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE delivery_broadcasts
        SET status = $3, winner_courier_id = $2, updated_at = now()
        WHERE id = $1 AND status = $4
    `, broadcastID, courierID,
		string(domain.BroadcastAssigned), string(domain.BroadcastSearching))
	if err != nil {
		return false, fmt.Errorf("mark broadcast %d assigned: %w", broadcastID, err)
	}
	return ct.RowsAffected() == 1, nil
}

// MarkFailed - compare-and-set searching → failed.
func (r *TxRepo) MarkFailed(ctx context.Context, broadcastID int64) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE delivery_broadcasts
        SET status = $2, updated_at = now()
        WHERE id = $1 AND status = $3
    `, broadcastID, string(domain.BroadcastFailed), string(domain.BroadcastSearching))
	if err != nil {
		return false, fmt.Errorf("mark broadcast %d failed: %w", broadcastID, err)
	}
	return ct.RowsAffected() == 1, nil
}

// AdvancePhase - compare-and-set phase transition with a fresh deadline and
// widened radius. The deadline guard keeps a late or duplicate ticker harmless.
func (r *TxRepo) AdvancePhase(ctx context.Context, broadcastID int64, from, to domain.BroadcastPhase, radiusKm float64, deadline, now time.Time) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE delivery_broadcasts
        SET phase = $3, radius_km = $4, phase_deadline = $5, updated_at = now()
        WHERE id = $1 AND status = $6 AND phase = $2 AND phase_deadline <= $7
    `, broadcastID, string(from), string(to), radiusKm, deadline,
		string(domain.BroadcastSearching), now)
	if err != nil {
		return false, fmt.Errorf("advance broadcast %d to %s: %w", broadcastID, to, err)
	}
	return ct.RowsAffected() == 1, nil
}

// SetRequestStatus - compare-and-set offer transition guarded on the current status.
func (r *TxRepo) SetRequestStatus(ctx context.Context, requestID int64, from, to domain.RequestStatus) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE delivery_requests
        SET status = $3, updated_at = now()
        WHERE id = $1 AND status = $2
    `, requestID, string(from), string(to))
	if err != nil {
		return false, fmt.Errorf("set request %d %s→%s: %w", requestID, from, to, err)
	}
	return ct.RowsAffected() == 1, nil
}

// SupersedePending - terminates every pending sibling offer except the given one.
func (r *TxRepo) SupersedePending(ctx context.Context, broadcastID, exceptRequestID int64) (int64, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE delivery_requests
        SET status = $3, updated_at = now()
        WHERE broadcast_id = $1 AND status = $4 AND id <> $2
    `, broadcastID, exceptRequestID,
		string(domain.RequestSuperseded), string(domain.RequestPending))
	if err != nil {
		return 0, fmt.Errorf("supersede pending for broadcast %d: %w", broadcastID, err)
	}
	return ct.RowsAffected(), nil
}

// NotifiedCourierIDs - lists every courier ever offered this broadcast.
// Offer rows are never deleted, so the set only grows.
func (r *TxRepo) NotifiedCourierIDs(ctx context.Context, broadcastID int64) ([]int64, error) {
	rows, err := r.tx.Query(ctx, `
        SELECT courier_id FROM delivery_requests WHERE broadcast_id = $1
    `, broadcastID)
	if err != nil {
		return nil, fmt.Errorf("notified couriers for broadcast %d: %w", broadcastID, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SetCourierAvailability - compare-and-set on the availability flag, guarded
// on the current value. Zero rows means the flag already held the target
// value: for the arbiter flipping a winner off, that courier was taken by a
// concurrent assignment and the accept must not stand.
func (r *TxRepo) SetCourierAvailability(ctx context.Context, courierID int64, available bool) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE couriers
        SET available = $2, updated_at = now()
        WHERE id = $1 AND available <> $2
    `, courierID, available)
	if err != nil {
		return fmt.Errorf("set courier %d availability: %w", courierID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrConflict
	}
	return nil
}
