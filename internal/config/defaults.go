package config

import "time"

const (
	defaultPort      = 8080
	defaultPprofPort = 6060
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "dispatch",
	Pass: "dispatch",
	Name: "dispatch_db",
}

var defaultKafka = Kafka{
	Brokers:     nil,
	OrdersTopic: "order-events",
	GroupID:     "dispatch-engine",
	OfferTopic:  "courier-offers",
	StatusTopic: "dispatch-status",
}

var defaultDispatch = Dispatch{
	PhaseWindow:          15 * time.Second,
	InitialLimit:         3,
	ExtendedLimit:        10,
	ExtendedRadiusFactor: 2.5,
	DefaultRadiusKm:      5,
	SweepInterval:        2 * time.Second,
}

var defaultOrdersGateway = OrdersGateway{
	BaseURL:     "",
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultRateLimit = RateLimit{
	RPS:   50,
	Burst: 100,
}

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultKafka returns the default Kafka settings.
func DefaultKafka() Kafka { return defaultKafka }

// DefaultDispatch returns the default matching-engine settings.
func DefaultDispatch() Dispatch { return defaultDispatch }

// DefaultOrdersGateway returns the default orders gateway settings.
func DefaultOrdersGateway() OrdersGateway { return defaultOrdersGateway }

// DefaultRateLimit returns the default HTTP rate limit settings.
func DefaultRateLimit() RateLimit { return defaultRateLimit }

// DefaultPort returns the default HTTP port.
func DefaultPort() int { return defaultPort }
