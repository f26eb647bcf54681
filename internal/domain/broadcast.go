package domain

import "time"

// Broadcast is one dispatch attempt for one order. It owns the phase clock and
// the terminal outcome; its status field is the single lock point for every
// terminating transition (accept, cancel, exhaustion).
type Broadcast struct {
	ID              int64
	OrderID         string
	Origin          Point
	RadiusKm        float64
	Phase           BroadcastPhase
	Status          BroadcastStatus
	PhaseDeadline   time.Time
	WinnerCourierID *int64
	CreatedAt       time.Time
}

// Terminal reports whether the broadcast reached a final status.
func (b Broadcast) Terminal() bool {
	return b.Status == BroadcastAssigned || b.Status == BroadcastFailed
}

// BroadcastView is the vendor-facing projection used for countdown rendering.
type BroadcastView struct {
	Broadcast
	NotifiedCount int
	PendingCount  int
}

// Assignment is the result of a winning accept.
type Assignment struct {
	BroadcastID int64
	OrderID     string
	CourierID   int64
	DistanceKm  float64
	AssignedAt  time.Time
}
