package kafka

import (
	"strings"
	"time"

	"courier-dispatch/internal/service/orders"
)

// EventDTO is a data transfer object for orders.Event
type EventDTO struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	PickupLat float64   `json:"pickup_lat"`
	PickupLon float64   `json:"pickup_lon"`
	RadiusKm  float64   `json:"radius_km"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDomain converts EventDTO to orders.Event
func ToDomain(dto EventDTO) orders.Event {
	return orders.Event{
		OrderID:   strings.TrimSpace(dto.OrderID),
		Status:    strings.TrimSpace(dto.Status),
		PickupLat: dto.PickupLat,
		PickupLon: dto.PickupLon,
		RadiusKm:  dto.RadiusKm,
		CreatedAt: dto.CreatedAt,
	}
}
