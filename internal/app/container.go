package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"courier-dispatch/internal/config"
	order "courier-dispatch/internal/gateway/orders"
	"courier-dispatch/internal/http/handlers"
	"courier-dispatch/internal/http/middleware"
	"courier-dispatch/internal/http/middleware/ratelimit"
	"courier-dispatch/internal/http/pprofserver"
	"courier-dispatch/internal/http/router"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/repository"
	"courier-dispatch/internal/service/courier"
	"courier-dispatch/internal/service/dispatch"
	"courier-dispatch/internal/service/locator"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns the service container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds and returns the worker container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns the service container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds and returns the worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() *log.Logger { return log.Default() },
		NewLogger,
		config.Load,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

type ordersGatewayIn struct {
	dig.In
	Cfg     *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"gateway_retries_total"`
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		provideMetrics,
		func(pool *pgxpool.Pool) repository.DB { return pool },
		repository.NewBroadcastRepo,
		repository.NewRequestRepo,
		repository.NewCourierRepo,
		func(repo *repository.CourierRepo) *locator.Service {
			return locator.NewService(repo)
		},
		provideNotifyPublisher,
		provideDispatchNotifier,
		provideOrdersGateway,
		provideOrdersBinder,
		provideDispatchService,
		func(repo *repository.CourierRepo) *courier.Service {
			return courier.NewService(repo, 3*time.Second)
		},
	)
}

func provideOrdersGateway(in ordersGatewayIn) *order.RetryingGateway {
	hg := order.NewHTTPGateway(in.Cfg.Orders.BaseURL, 2*time.Second)
	if hg == nil {
		return nil
	}
	return order.NewRetryingGateway(hg, in.Logger, in.Retries, order.RetryConfig{
		MaxAttempts: in.Cfg.Orders.MaxAttempts,
		BaseDelay:   in.Cfg.Orders.BaseDelay,
		MaxDelay:    in.Cfg.Orders.MaxDelay,
	})
}

// provideOrdersBinder narrows the gateway to the binding surface the engine
// needs. A nil gateway stays a nil interface, not a typed nil.
func provideOrdersBinder(gw *order.RetryingGateway) dispatch.OrdersGateway {
	if gw == nil {
		return nil
	}
	return gw
}

func provideDispatchService(
	broadcasts *repository.BroadcastRepo,
	requests *repository.RequestRepo,
	finder *locator.Service,
	notifier dispatch.Notifier,
	orders dispatch.OrdersGateway,
	counters dispatch.Counters,
	cfg *config.Config,
	logger logx.Logger,
) *dispatch.Service {
	return dispatch.NewService(broadcasts, requests, finder, notifier, orders, counters, dispatch.Config{
		PhaseWindow:          cfg.Dispatch.PhaseWindow,
		InitialLimit:         cfg.Dispatch.InitialLimit,
		ExtendedLimit:        cfg.Dispatch.ExtendedLimit,
		ExtendedRadiusFactor: cfg.Dispatch.ExtendedRadiusFactor,
	}, logger)
}

type pprofOut struct {
	dig.Out
	Server *http.Server `name:"pprof_server"`
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	pprofProvider := func(cfg *config.Config) pprofOut {
		if cfg.PprofPort <= 0 {
			return pprofOut{}
		}
		return pprofOut{Server: &http.Server{
			Addr: fmt.Sprintf(":%d", cfg.PprofPort),
			Handler: pprofserver.Handler(pprofserver.Config{
				User: cfg.PprofUser,
				Pass: cfg.PprofPass,
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}}
	}
	routerProvider := func(
		h *handlers.Handlers,
		dh *handlers.DispatchHandler,
		ch *handlers.CourierHandler,
		logger logx.Logger,
		rl *ratelimit.Middleware,
	) http.Handler {
		return router.New(h, dh, ch, middleware.Observability(logger), rl.Handler())
	}
	return provideAll(container,
		handlers.New,
		handlers.NewDispatchUsecase,
		handlers.NewDispatchHandler,
		handlers.NewCourierUsecase,
		handlers.NewCourierHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		routerProvider,
		serverProvider,
		pprofProvider,
	)
}
