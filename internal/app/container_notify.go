package app

import (
	"courier-dispatch/internal/config"
	"courier-dispatch/internal/gateway/notify"
	"courier-dispatch/internal/service/dispatch"
)

func provideNotifyPublisher(cfg *config.Config) (*notify.Publisher, error) {
	return notify.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.OfferTopic, cfg.Kafka.StatusTopic)
}

// provideDispatchNotifier keeps a missing publisher a nil interface so the
// engine can skip fan-out entirely.
func provideDispatchNotifier(p *notify.Publisher) dispatch.Notifier {
	if p == nil {
		return nil
	}
	return p
}
