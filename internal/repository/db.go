package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the pgx pool surface the repositories depend on. Satisfied by
// *pgxpool.Pool and by pgxmock pools in unit tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var _ DB = (*pgxpool.Pool)(nil)

// NewPool creates and pings a new pgx connection pool.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// InitSchema creates the dispatch tables when they do not exist yet.
// The partial unique index on order_id is what enforces one active broadcast
// per order; UNIQUE (broadcast_id, courier_id) is what makes duplicate offers
// impossible within one broadcast.
func InitSchema(ctx context.Context, db DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS couriers (
			id            BIGSERIAL PRIMARY KEY,
			name          TEXT NOT NULL,
			phone         TEXT NOT NULL UNIQUE,
			available     BOOLEAN NOT NULL DEFAULT TRUE,
			lat           DOUBLE PRECISION NOT NULL,
			lon           DOUBLE PRECISION NOT NULL,
			max_radius_km DOUBLE PRECISION NOT NULL DEFAULT 25,
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS delivery_broadcasts (
			id                BIGSERIAL PRIMARY KEY,
			order_id          TEXT NOT NULL,
			origin_lat        DOUBLE PRECISION NOT NULL,
			origin_lon        DOUBLE PRECISION NOT NULL,
			radius_km         DOUBLE PRECISION NOT NULL,
			phase             TEXT NOT NULL,
			status            TEXT NOT NULL,
			phase_deadline    TIMESTAMPTZ NOT NULL,
			winner_courier_id BIGINT,
			created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_broadcasts_active_order
			ON delivery_broadcasts (order_id) WHERE status = 'searching'`,
		`CREATE INDEX IF NOT EXISTS idx_broadcasts_due
			ON delivery_broadcasts (phase_deadline) WHERE status = 'searching'`,
		`CREATE TABLE IF NOT EXISTS delivery_requests (
			id           BIGSERIAL PRIMARY KEY,
			broadcast_id BIGINT NOT NULL REFERENCES delivery_broadcasts (id),
			order_id     TEXT NOT NULL,
			courier_id   BIGINT NOT NULL REFERENCES couriers (id),
			status       TEXT NOT NULL,
			distance_km  DOUBLE PRECISION NOT NULL DEFAULT 0,
			expires_at   TIMESTAMPTZ NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (broadcast_id, courier_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_requests_courier_pending
			ON delivery_requests (courier_id) WHERE status = 'pending'`,
		`CREATE INDEX IF NOT EXISTS idx_requests_expiry
			ON delivery_requests (expires_at) WHERE status = 'pending'`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
