package orders

import (
	"context"
	"errors"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/ports/dispatchtx"
	"courier-dispatch/internal/repository"
	"courier-dispatch/internal/service/dispatch"
)

// Processor processes orders events
type Processor struct {
	dispatch      DispatchPort
	broadcasts    BroadcastIndex
	defaultRadius float64
	factory       *actionFactory
}

// NewProcessorWithDeps creates a Processor from interfaces (handy for tests).
func NewProcessorWithDeps(dispatchSvc DispatchPort, broadcasts BroadcastIndex, defaultRadiusKm float64) *Processor {
	return newProcessor(dispatchSvc, broadcasts, defaultRadiusKm)
}

// NewProcessor creates a new orders.Processor
func NewProcessor(dispatchSvc *dispatch.Service, repo *repository.BroadcastRepo, defaultRadiusKm float64) *Processor {
	return newProcessor(dispatchSvc, repo, defaultRadiusKm)
}

func newProcessor(dispatchSvc DispatchPort, broadcasts BroadcastIndex, defaultRadiusKm float64) *Processor {
	p := &Processor{
		dispatch:      dispatchSvc,
		broadcasts:    broadcasts,
		defaultRadius: defaultRadiusKm,
	}
	p.factory = newActionFactory(p.onReady, p.onCancelled, p.onCompleted)
	return p
}

// Handle processes a single orders.Event
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onReady(ctx context.Context, e Event) error {
	radius := e.RadiusKm
	if radius <= 0 {
		radius = p.defaultRadius
	}
	origin := domain.Point{Lat: e.PickupLat, Lon: e.PickupLon}

	_, err := p.dispatch.StartBroadcast(ctx, e.OrderID, origin, radius)
	switch {
	case errors.Is(err, apperr.ErrAlreadyActive):
		// Redelivered event; the search is already running.
		return nil
	case errors.Is(err, apperr.ErrInvalid):
		// Malformed event; retrying cannot fix it.
		return nil
	}
	return err
}

func (p *Processor) onCancelled(ctx context.Context, e Event) error {
	b, err := p.broadcasts.LatestByOrder(ctx, e.OrderID)
	if err != nil {
		return err
	}
	if b == nil || b.Terminal() {
		return nil
	}

	err = p.dispatch.CancelBroadcast(ctx, b.ID)
	switch {
	case errors.Is(err, apperr.ErrNotFound),
		errors.Is(err, apperr.ErrConflict),
		errors.Is(err, apperr.ErrAlreadyAssigned):
		return nil
	}
	return err
}

// onCompleted releases the winning courier once the order is done.
func (p *Processor) onCompleted(ctx context.Context, e Event) error {
	b, err := p.broadcasts.LatestByOrder(ctx, e.OrderID)
	if err != nil {
		return err
	}
	if b == nil || b.Status != domain.BroadcastAssigned || b.WinnerCourierID == nil {
		return nil
	}

	courierID := *b.WinnerCourierID
	return p.broadcasts.WithTx(ctx, func(tx dispatchtx.Repository) error {
		err := tx.SetCourierAvailability(ctx, courierID, true)
		if errors.Is(err, apperr.ErrConflict) {
			// Redelivered completion; the courier is already back in the pool.
			return nil
		}
		return err
	})
}
