package repository

import (
	"context"
	"fmt"
	"time"

	"courier-dispatch/internal/domain"
)

// RequestRepo represents the offer ledger outside a transaction: courier-facing
// reads and the batch expiry sweep.
type RequestRepo struct {
	db DB
}

// NewRequestRepo creates a new RequestRepo.
func NewRequestRepo(db DB) *RequestRepo {
	return &RequestRepo{db: db}
}

const requestColumns = `id, broadcast_id, order_id, courier_id, status, distance_km, expires_at, created_at`

// ListPendingByCourier - lists live offers for a courier. Rows whose window
// already closed are filtered out even when the sweeper has not run yet.
func (r *RequestRepo) ListPendingByCourier(ctx context.Context, courierID int64, now time.Time) ([]domain.Request, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+requestColumns+`
        FROM delivery_requests
        WHERE courier_id = $1 AND status = $2 AND expires_at > $3
        ORDER BY expires_at ASC, id ASC
    `, courierID, string(domain.RequestPending), now)
	if err != nil {
		return nil, fmt.Errorf("list pending requests for courier %d: %w", courierID, err)
	}
	defer rows.Close()

	var out []domain.Request
	for rows.Next() {
		var req domain.Request
		if err := rows.Scan(&req.ID, &req.BroadcastID, &req.OrderID, &req.CourierID,
			&req.Status, &req.DistanceKm, &req.ExpiresAt, &req.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// ListByBroadcast - lists every offer under one broadcast, oldest first.
func (r *RequestRepo) ListByBroadcast(ctx context.Context, broadcastID int64) ([]domain.Request, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+requestColumns+`
        FROM delivery_requests
        WHERE broadcast_id = $1
        ORDER BY id ASC
    `, broadcastID)
	if err != nil {
		return nil, fmt.Errorf("list requests for broadcast %d: %w", broadcastID, err)
	}
	defer rows.Close()

	var out []domain.Request
	for rows.Next() {
		var req domain.Request
		if err := rows.Scan(&req.ID, &req.BroadcastID, &req.OrderID, &req.CourierID,
			&req.Status, &req.DistanceKm, &req.ExpiresAt, &req.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// ExpireStale - batch compare-and-set pending → expired for offers whose
// window closed. Safe to run concurrently with accepts: an accept that commits
// first leaves the row out of the WHERE clause.
func (r *RequestRepo) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE delivery_requests
        SET status = $1, updated_at = now()
        WHERE status = $2 AND expires_at <= $3
    `, string(domain.RequestExpired), string(domain.RequestPending), now)
	if err != nil {
		return 0, fmt.Errorf("expire stale requests: %w", err)
	}
	return ct.RowsAffected(), nil
}
