package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Order represents an order from the orders service.
type Order struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusError is a non-2xx reply from the orders service.
type StatusError struct {
	Code int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("orders service replied %d", e.Code)
}

// HTTPGateway is an orders gateway backed by the orders service HTTP API.
type HTTPGateway struct {
	base string
	hc   *http.Client
}

// NewHTTPGateway creates an orders gateway. Returns nil when no base URL is
// configured so callers can run without order binding.
func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPGateway{
		base: baseURL,
		hc:   &http.Client{Timeout: timeout},
	}
}

// GetByID fetches an order by ID from the orders service.
func (g *HTTPGateway) GetByID(ctx context.Context, id string) (*Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.base+"/api/orders/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("order gateway: GetByID: %w", err)
	}

	resp, err := g.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order gateway: GetByID: %w", err)
	}
	defer drainClose(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("order gateway: GetByID: %w", StatusError{Code: resp.StatusCode})
	}

	var ord Order
	if err := json.NewDecoder(resp.Body).Decode(&ord); err != nil {
		return nil, fmt.Errorf("order gateway: GetByID: decode: %w", err)
	}
	return &ord, nil
}

// BindCourier records the winning courier on the order.
func (g *HTTPGateway) BindCourier(ctx context.Context, orderID string, courierID int64) error {
	body, err := json.Marshal(struct {
		CourierID int64 `json:"courier_id"`
	}{CourierID: courierID})
	if err != nil {
		return fmt.Errorf("order gateway: BindCourier: %w", err)
	}

	url := g.base + "/api/orders/" + orderID + "/courier"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("order gateway: BindCourier: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.hc.Do(req)
	if err != nil {
		return fmt.Errorf("order gateway: BindCourier: %w", err)
	}
	defer drainClose(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	default:
		return fmt.Errorf("order gateway: BindCourier: %w", StatusError{Code: resp.StatusCode})
	}
}

func drainClose(rc io.ReadCloser) {
	_, _ = io.Copy(io.Discard, rc)
	_ = rc.Close()
}
