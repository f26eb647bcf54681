package handlers

import "courier-dispatch/internal/domain"

func broadcastToResponse(b domain.Broadcast) broadcastResponse {
	return broadcastResponse{
		ID:              b.ID,
		OrderID:         b.OrderID,
		Phase:           string(b.Phase),
		Status:          string(b.Status),
		RadiusKm:        b.RadiusKm,
		PhaseDeadline:   b.PhaseDeadline,
		WinnerCourierID: b.WinnerCourierID,
	}
}

func viewToResponse(v domain.BroadcastView) broadcastStatusResponse {
	return broadcastStatusResponse{
		broadcastResponse: broadcastToResponse(v.Broadcast),
		NotifiedCount:     v.NotifiedCount,
		PendingCount:      v.PendingCount,
	}
}

func assignmentToResponse(a domain.Assignment) assignmentResponse {
	return assignmentResponse{
		BroadcastID: a.BroadcastID,
		OrderID:     a.OrderID,
		CourierID:   a.CourierID,
		DistanceKm:  a.DistanceKm,
		AssignedAt:  a.AssignedAt,
	}
}

func offersToResponse(list []domain.Request) []offerResponse {
	out := make([]offerResponse, 0, len(list))
	for _, r := range list {
		out = append(out, offerResponse{
			RequestID:   r.ID,
			BroadcastID: r.BroadcastID,
			OrderID:     r.OrderID,
			DistanceKm:  r.DistanceKm,
			ExpiresAt:   r.ExpiresAt,
		})
	}
	return out
}
