package app

import (
	"context"
	"time"

	order "courier-dispatch/internal/gateway/orders"
	"courier-dispatch/internal/service/orders"
	"courier-dispatch/internal/transport/kafka"
)

type ordersHandler interface {
	Handle(ctx context.Context, e orders.Event) error
}

type orderLookup interface {
	GetByID(ctx context.Context, id string) (*order.Order, error)
}

// makeOrdersKafka builds the consumer handler. With an orders gateway
// configured the order is re-read before acting: events can arrive late and
// the stored status wins over the payload.
func makeOrdersKafka(p ordersHandler, gw orderLookup) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		if gw == nil {
			return p.Handle(ctx, event)
		}

		gwCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		ord, err := gw.GetByID(gwCtx, event.OrderID)
		if err != nil {
			return err
		}

		if ord == nil {
			return nil
		}

		event.Status = ord.Status
		event.CreatedAt = ord.CreatedAt
		return p.Handle(ctx, event)
	}
}
