package repository

import (
	"context"
	"fmt"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
)

// CourierRepo represents the courier directory. The dispatch engine treats it
// as read-mostly: the only write it ever performs is the availability flip.
type CourierRepo struct {
	db DB
}

// NewCourierRepo creates a new CourierRepo.
func NewCourierRepo(db DB) *CourierRepo {
	return &CourierRepo{db: db}
}

const courierColumns = `id, name, phone, available, lat, lon, max_radius_km`

// Get - returns a courier by its ID, nil when absent.
func (r *CourierRepo) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	var c domain.Courier
	err := r.db.QueryRow(ctx,
		`SELECT `+courierColumns+` FROM couriers WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Available, &c.Location.Lat, &c.Location.Lon, &c.MaxRadiusKm)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier %d: %w", id, err)
	}
	return &c, nil
}

// ListAvailable - lists available couriers, excluding the given ids. Distance
// filtering and ranking happen in the locator, not in SQL.
func (r *CourierRepo) ListAvailable(ctx context.Context, excludeIDs []int64) ([]domain.Courier, error) {
	if excludeIDs == nil {
		excludeIDs = []int64{}
	}
	rows, err := r.db.Query(ctx, `
        SELECT `+courierColumns+`
        FROM couriers
        WHERE available AND NOT (id = ANY($1))
        ORDER BY id
    `, excludeIDs)
	if err != nil {
		return nil, fmt.Errorf("list available couriers: %w", err)
	}
	defer rows.Close()

	var out []domain.Courier
	for rows.Next() {
		var c domain.Courier
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Available,
			&c.Location.Lat, &c.Location.Lon, &c.MaxRadiusKm); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Create - registers a courier in the directory.
func (r *CourierRepo) Create(ctx context.Context, c *domain.Courier) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO couriers (name, phone, available, lat, lon, max_radius_km)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, c.Name, c.Phone, c.Available, c.Location.Lat, c.Location.Lon, c.MaxRadiusKm).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create courier: %w", err)
	}
	return id, nil
}

// UpdateLocation - stores the courier's latest reported position.
func (r *CourierRepo) UpdateLocation(ctx context.Context, id int64, p domain.Point) error {
	ct, err := r.db.Exec(ctx, `
        UPDATE couriers SET lat = $2, lon = $3, updated_at = now() WHERE id = $1
    `, id, p.Lat, p.Lon)
	if err != nil {
		return fmt.Errorf("update courier %d location: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// SetAvailability - flips the availability flag outside a dispatch transaction
// (operator tooling; the arbiter flips it in-tx via dispatchtx).
func (r *CourierRepo) SetAvailability(ctx context.Context, id int64, available bool) error {
	ct, err := r.db.Exec(ctx, `
        UPDATE couriers SET available = $2, updated_at = now() WHERE id = $1
    `, id, available)
	if err != nil {
		return fmt.Errorf("set courier %d availability: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
