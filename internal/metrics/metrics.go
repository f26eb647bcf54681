package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewBroadcastsStartedTotal returns a counter for created broadcasts.
func NewBroadcastsStartedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_broadcasts_started_total",
		Help: "Total number of delivery broadcasts started",
	})
}

// NewBroadcastsAssignedTotal returns a counter for broadcasts that ended assigned.
func NewBroadcastsAssignedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_broadcasts_assigned_total",
		Help: "Total number of delivery broadcasts resolved with a winner",
	})
}

// NewBroadcastsFailedTotal returns a counter for broadcasts that ended failed.
func NewBroadcastsFailedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_broadcasts_failed_total",
		Help: "Total number of delivery broadcasts that exhausted all phases or were cancelled",
	})
}

// NewEscalationsTotal returns a counter for phase advances.
func NewEscalationsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_escalations_total",
		Help: "Total number of broadcast phase escalations",
	})
}

// NewAcceptConflictsTotal returns a counter for accepts that lost the race.
func NewAcceptConflictsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_accept_conflicts_total",
		Help: "Total number of offer accepts rejected because another courier won",
	})
}

// NewRequestsExpiredTotal returns a counter for swept stale offers.
func NewRequestsExpiredTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_requests_expired_total",
		Help: "Total number of pending offers expired by the sweeper",
	})
}

// NewNotifyFailuresTotal returns a counter for failed notification publishes.
func NewNotifyFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_notify_failures_total",
		Help: "Total number of notification fan-out publish failures",
	})
}

// NewGatewayRetriesTotal returns a counter for retry attempts performed by gateways.
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	})
}

// NewRateLimitExceededTotal returns a counter for rate-limited HTTP requests.
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}
