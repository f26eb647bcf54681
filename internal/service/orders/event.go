package orders

import (
	"time"
)

// Event is a single order event
type Event struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	PickupLat float64   `json:"pickup_lat"`
	PickupLon float64   `json:"pickup_lon"`
	RadiusKm  float64   `json:"radius_km"`
	CreatedAt time.Time `json:"created_at"`
}
