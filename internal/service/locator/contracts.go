package locator

import (
	"context"

	"courier-dispatch/internal/domain"
)

// CourierDirectory abstracts the read side of the courier directory.
type CourierDirectory interface {
	ListAvailable(ctx context.Context, excludeIDs []int64) ([]domain.Courier, error)
}
