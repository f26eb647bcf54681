package handlers

import (
	"context"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/service/courier"
	"courier-dispatch/internal/service/dispatch"
)

type dispatchUsecase interface {
	StartBroadcast(ctx context.Context, orderID string, origin domain.Point, radiusKm float64) (domain.Broadcast, error)
	AcceptOffer(ctx context.Context, requestID, courierID int64) (domain.Assignment, error)
	RejectOffer(ctx context.Context, requestID, courierID int64) error
	CancelBroadcast(ctx context.Context, broadcastID int64) error
	BroadcastStatus(ctx context.Context, orderID string) (*domain.BroadcastView, error)
	PendingOffers(ctx context.Context, courierID int64) ([]domain.Request, error)
}

// NewDispatchUsecase wires the dispatch engine into a dispatchUsecase.
func NewDispatchUsecase(svc *dispatch.Service) dispatchUsecase {
	return svc
}

type courierUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	Create(ctx context.Context, c *domain.Courier) (int64, error)
	UpdateLocation(ctx context.Context, id int64, p domain.Point) error
	SetAvailability(ctx context.Context, id int64, available bool) error
}

// NewCourierUsecase wires a courier Service into a courierUsecase.
func NewCourierUsecase(service *courier.Service) courierUsecase {
	return service
}
