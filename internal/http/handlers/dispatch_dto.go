package handlers

import (
	"time"
)

type startBroadcastRequest struct {
	OrderID  string  `json:"order_id"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	RadiusKm float64 `json:"radius_km"`
}

type broadcastResponse struct {
	ID              int64     `json:"id"`
	OrderID         string    `json:"order_id"`
	Phase           string    `json:"phase"`
	Status          string    `json:"status"`
	RadiusKm        float64   `json:"radius_km"`
	PhaseDeadline   time.Time `json:"phase_deadline"`
	WinnerCourierID *int64    `json:"winner_courier_id,omitempty"`
}

type broadcastStatusResponse struct {
	broadcastResponse
	NotifiedCount int `json:"notified_count"`
	PendingCount  int `json:"pending_count"`
}

type offerActionRequest struct {
	CourierID int64 `json:"courier_id"`
}

type assignmentResponse struct {
	BroadcastID int64     `json:"broadcast_id"`
	OrderID     string    `json:"order_id"`
	CourierID   int64     `json:"courier_id"`
	DistanceKm  float64   `json:"distance_km"`
	AssignedAt  time.Time `json:"assigned_at"`
}

type offerResponse struct {
	RequestID   int64     `json:"request_id"`
	BroadcastID int64     `json:"broadcast_id"`
	OrderID     string    `json:"order_id"`
	DistanceKm  float64   `json:"distance_km"`
	ExpiresAt   time.Time `json:"expires_at"`
}
