package app

import (
	"go.uber.org/dig"

	"courier-dispatch/internal/config"
	order "courier-dispatch/internal/gateway/orders"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/repository"
	"courier-dispatch/internal/service/dispatch"
	"courier-dispatch/internal/service/orders"
	"courier-dispatch/internal/transport/kafka"
	"courier-dispatch/internal/worker"
)

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, svc *dispatch.Service, broadcasts *repository.BroadcastRepo) *orders.Processor {
			return orders.NewProcessor(svc, broadcasts, cfg.Dispatch.DefaultRadiusKm)
		},
		func(p *orders.Processor, gw *order.RetryingGateway) kafka.HandleFunc {
			if gw == nil {
				return makeOrdersKafka(p, nil)
			}
			return makeOrdersKafka(p, gw)
		},
		func(cfg *config.Config, h kafka.HandleFunc, logger logx.Logger) (*kafka.Consumer, error) {
			return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.OrdersTopic, h, logger)
		},
		func(cfg *config.Config, svc *dispatch.Service, logger logx.Logger) *worker.Sweeper {
			return worker.NewSweeper(svc, cfg.Dispatch.SweepInterval, logger)
		},
	)
}
