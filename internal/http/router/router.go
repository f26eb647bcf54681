package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"courier-dispatch/internal/http/handlers"
)

// Middleware is a chi-style middleware.
type Middleware = func(http.Handler) http.Handler

// New constructs a chi-based http.Handler with base middleware and routes.
// observe and limit may be nil.
func New(h *handlers.Handlers, dh *handlers.DispatchHandler, ch *handlers.CourierHandler, observe, limit Middleware) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if observe != nil {
		r.Use(observe)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))
	if limit != nil {
		r.Use(limit)
	}

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/broadcasts", func(r chi.Router) {
		r.Post("/", dh.StartBroadcast)
		r.Post("/{id}/cancel", dh.Cancel)
	})

	r.Route("/offers", func(r chi.Router) {
		r.Post("/{id}/accept", dh.Accept)
		r.Post("/{id}/reject", dh.Reject)
	})

	r.Get("/orders/{order_id}/broadcast", dh.BroadcastStatus)

	r.Route("/couriers", func(r chi.Router) {
		r.Post("/", ch.Create)
		r.Get("/{id}", ch.Get)
		r.Get("/{id}/offers", dh.PendingOffers)
		r.Put("/{id}/location", ch.UpdateLocation)
		r.Put("/{id}/availability", ch.SetAvailability)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
