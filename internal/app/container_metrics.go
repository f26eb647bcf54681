package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"courier-dispatch/internal/metrics"
	"courier-dispatch/internal/service/dispatch"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	GatewayRetriesTotal    prometheus.Counter `name:"gateway_retries_total"`
	Dispatch               dispatch.Counters
}

// provideMetrics registers the engine counters once and hands them to the
// container. A counter registered earlier (another container in the same
// process) is reused rather than duplicated.
func provideMetrics() (metricsOut, error) {
	rateLimited, err := registerCounter("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal())
	if err != nil {
		return metricsOut{}, err
	}
	gwRetries, err := registerCounter("gateway_retries_total", metrics.NewGatewayRetriesTotal())
	if err != nil {
		return metricsOut{}, err
	}
	started, err := registerCounter("dispatch_broadcasts_started_total", metrics.NewBroadcastsStartedTotal())
	if err != nil {
		return metricsOut{}, err
	}
	assigned, err := registerCounter("dispatch_broadcasts_assigned_total", metrics.NewBroadcastsAssignedTotal())
	if err != nil {
		return metricsOut{}, err
	}
	failed, err := registerCounter("dispatch_broadcasts_failed_total", metrics.NewBroadcastsFailedTotal())
	if err != nil {
		return metricsOut{}, err
	}
	escalations, err := registerCounter("dispatch_escalations_total", metrics.NewEscalationsTotal())
	if err != nil {
		return metricsOut{}, err
	}
	conflicts, err := registerCounter("dispatch_accept_conflicts_total", metrics.NewAcceptConflictsTotal())
	if err != nil {
		return metricsOut{}, err
	}
	expired, err := registerCounter("dispatch_requests_expired_total", metrics.NewRequestsExpiredTotal())
	if err != nil {
		return metricsOut{}, err
	}
	notifyFailures, err := registerCounter("dispatch_notify_failures_total", metrics.NewNotifyFailuresTotal())
	if err != nil {
		return metricsOut{}, err
	}

	return metricsOut{
		RateLimitExceededTotal: rateLimited,
		GatewayRetriesTotal:    gwRetries,
		Dispatch: dispatch.Counters{
			Started:         started,
			Assigned:        assigned,
			Failed:          failed,
			Escalations:     escalations,
			AcceptConflicts: conflicts,
			RequestsExpired: expired,
			NotifyFailures:  notifyFailures,
		},
	}, nil
}

func registerCounter(name string, c prometheus.Counter) (prometheus.Counter, error) {
	err := prometheus.DefaultRegisterer.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
			return existing, nil
		}
	}
	return nil, fmt.Errorf("register %s: %w", name, err)
}
