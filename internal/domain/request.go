package domain

import "time"

// Request is a single courier's pending opportunity to accept one order within
// one broadcast. OrderID is denormalized for courier-side queries.
type Request struct {
	ID          int64
	BroadcastID int64
	OrderID     string
	CourierID   int64
	Status      RequestStatus
	DistanceKm  float64
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// Expired reports whether the offer window closed, regardless of sweep state.
func (r Request) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}
