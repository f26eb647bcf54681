package courier

import (
	"context"

	"courier-dispatch/internal/domain"
)

// courierRepository defines storage operations required by the business layer.
type courierRepository interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	Create(ctx context.Context, c *domain.Courier) (int64, error)
	UpdateLocation(ctx context.Context, id int64, p domain.Point) error
	SetAvailability(ctx context.Context, id int64, available bool) error
}
