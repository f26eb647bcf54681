package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

// DispatchHandler handles HTTP requests for broadcasts and offers.
type DispatchHandler struct {
	usecase dispatchUsecase
	logger  logx.Logger
}

// NewDispatchHandler creates a new DispatchHandler.
func NewDispatchHandler(logger logx.Logger, uc dispatchUsecase) *DispatchHandler {
	return &DispatchHandler{usecase: uc, logger: logger}
}

// StartBroadcast handles POST /broadcasts.
// @Summary Start a courier search
// @Description Opens a broadcast for an order and notifies the closest couriers
// @Tags broadcasts
// @Accept json
// @Produce json
// @Param request body startBroadcastRequest true "Start broadcast payload"
// @Success 201 {object} broadcastResponse
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 409 {object} ErrorResponse "search already active"
// @Failure 500 {object} ErrorResponse "internal error"
// @Router /broadcasts [post]
func (h *DispatchHandler) StartBroadcast(w http.ResponseWriter, r *http.Request) {
	var req startBroadcastRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	b, err := h.usecase.StartBroadcast(r.Context(), req.OrderID,
		domain.Point{Lat: req.Lat, Lon: req.Lon}, req.RadiusKm)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusCreated, broadcastToResponse(b))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrAlreadyActive):
		writeError(h.logger, w, r, http.StatusConflict, "search already active for order")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Cancel handles POST /broadcasts/{id}/cancel.
func (h *DispatchHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.usecase.CancelBroadcast(r.Context(), id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "broadcast not found")
	case errors.Is(err, apperr.ErrAlreadyAssigned):
		writeError(h.logger, w, r, http.StatusConflict, "courier already assigned")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "broadcast already finished")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Accept handles POST /offers/{id}/accept.
// @Summary Accept an offer
// @Description First valid accept wins the order; later accepts get 409
// @Tags offers
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body offerActionRequest true "Accepting courier"
// @Success 200 {object} assignmentResponse
// @Failure 403 {object} ErrorResponse "offer belongs to another courier"
// @Failure 409 {object} ErrorResponse "already assigned or offer expired"
// @Router /offers/{id}/accept [post]
func (h *DispatchHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req offerActionRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.usecase.AcceptOffer(r.Context(), id, req.CourierID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, assignmentToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "offer not found")
	case errors.Is(err, apperr.ErrNotAuthorized):
		writeError(h.logger, w, r, http.StatusForbidden, "offer belongs to another courier")
	case errors.Is(err, apperr.ErrAlreadyAssigned):
		writeError(h.logger, w, r, http.StatusConflict, "order already assigned")
	case errors.Is(err, apperr.ErrStaleRequest):
		writeError(h.logger, w, r, http.StatusConflict, "offer is no longer active")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "courier is not available")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Reject handles POST /offers/{id}/reject.
func (h *DispatchHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req offerActionRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err = h.usecase.RejectOffer(r.Context(), id, req.CourierID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "offer not found")
	case errors.Is(err, apperr.ErrNotAuthorized):
		writeError(h.logger, w, r, http.StatusForbidden, "offer belongs to another courier")
	case errors.Is(err, apperr.ErrStaleRequest):
		writeError(h.logger, w, r, http.StatusConflict, "offer is no longer active")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// BroadcastStatus handles GET /orders/{order_id}/broadcast.
func (h *DispatchHandler) BroadcastStatus(w http.ResponseWriter, r *http.Request) {
	orderID := strings.TrimSpace(chi.URLParam(r, "order_id"))
	if orderID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order id")
		return
	}

	view, err := h.usecase.BroadcastStatus(r.Context(), orderID)
	switch {
	case err == nil && view == nil:
		writeError(h.logger, w, r, http.StatusNotFound, "no broadcast for order")
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, viewToResponse(*view))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order id")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// PendingOffers handles GET /couriers/{id}/offers.
func (h *DispatchHandler) PendingOffers(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	offers, err := h.usecase.PendingOffers(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, offersToResponse(offers))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
