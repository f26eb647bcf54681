package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN renders the database connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores broker and topic settings for the order-event consumer and the
// notification fan-out producer. Empty brokers disable the Kafka side entirely.
type Kafka struct {
	Brokers     []string
	OrdersTopic string
	GroupID     string
	OfferTopic  string
	StatusTopic string
}

// Dispatch stores the matching-engine knobs. PhaseWindow drives both the
// request expiry and the broadcast phase deadline; they are always equal.
type Dispatch struct {
	PhaseWindow          time.Duration
	InitialLimit         int
	ExtendedLimit        int
	ExtendedRadiusFactor float64
	DefaultRadiusKm      float64
	SweepInterval        time.Duration
}

// OrdersGateway stores the order-service client settings.
type OrdersGateway struct {
	BaseURL     string
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RateLimit stores per-client HTTP rate limit settings. Zero RPS disables it.
type RateLimit struct {
	RPS   float64
	Burst int
}

// Config stores dispatch service settings.
type Config struct {
	Port      int
	PprofPort int
	PprofUser string
	PprofPass string
	DB        DB
	Kafka     Kafka
	Dispatch  Dispatch
	Orders    OrdersGateway
	RateLimit RateLimit
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      defaultPort,
		PprofPort: defaultPprofPort,
		DB:        DefaultDB(),
		Kafka:     DefaultKafka(),
		Dispatch:  DefaultDispatch(),
		Orders:    DefaultOrdersGateway(),
		RateLimit: DefaultRateLimit(),
	}

	cfg.Port = envInt("PORT", cfg.Port)
	cfg.PprofPort = envInt("PPROF_PORT", cfg.PprofPort)
	cfg.PprofUser = envStr("PPROF_USER", cfg.PprofUser)
	cfg.PprofPass = envStr("PPROF_PASS", cfg.PprofPass)

	cfg.DB.Host = envStr("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envStr("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envStr("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envStr("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envStr("POSTGRES_DB", cfg.DB.Name)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	cfg.Kafka.OrdersTopic = envStr("KAFKA_ORDERS_TOPIC", cfg.Kafka.OrdersTopic)
	cfg.Kafka.GroupID = envStr("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.OfferTopic = envStr("KAFKA_OFFER_TOPIC", cfg.Kafka.OfferTopic)
	cfg.Kafka.StatusTopic = envStr("KAFKA_STATUS_TOPIC", cfg.Kafka.StatusTopic)

	cfg.Dispatch.PhaseWindow = envDuration("DISPATCH_PHASE_WINDOW", cfg.Dispatch.PhaseWindow)
	cfg.Dispatch.InitialLimit = envInt("DISPATCH_INITIAL_LIMIT", cfg.Dispatch.InitialLimit)
	cfg.Dispatch.ExtendedLimit = envInt("DISPATCH_EXTENDED_LIMIT", cfg.Dispatch.ExtendedLimit)
	cfg.Dispatch.ExtendedRadiusFactor = envFloat("DISPATCH_EXTENDED_RADIUS_FACTOR", cfg.Dispatch.ExtendedRadiusFactor)
	cfg.Dispatch.DefaultRadiusKm = envFloat("DISPATCH_DEFAULT_RADIUS_KM", cfg.Dispatch.DefaultRadiusKm)
	cfg.Dispatch.SweepInterval = envDuration("DISPATCH_SWEEP_INTERVAL", cfg.Dispatch.SweepInterval)

	cfg.Orders.BaseURL = envStr("ORDERS_BASE_URL", cfg.Orders.BaseURL)
	cfg.Orders.MaxAttempts = envInt("ORDERS_MAX_ATTEMPTS", cfg.Orders.MaxAttempts)
	cfg.Orders.BaseDelay = envDuration("ORDERS_BASE_DELAY", cfg.Orders.BaseDelay)
	cfg.Orders.MaxDelay = envDuration("ORDERS_MAX_DELAY", cfg.Orders.MaxDelay)

	cfg.RateLimit.RPS = envFloat("RATE_LIMIT_RPS", cfg.RateLimit.RPS)
	cfg.RateLimit.Burst = envInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst)

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.Parse()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Dispatch.PhaseWindow <= 0 {
		return fmt.Errorf("invalid phase window: %s", c.Dispatch.PhaseWindow)
	}
	if c.Dispatch.InitialLimit <= 0 || c.Dispatch.ExtendedLimit <= 0 {
		return fmt.Errorf("invalid candidate limits: %d/%d",
			c.Dispatch.InitialLimit, c.Dispatch.ExtendedLimit)
	}
	if c.Dispatch.ExtendedRadiusFactor < 1 {
		return fmt.Errorf("invalid extended radius factor: %g", c.Dispatch.ExtendedRadiusFactor)
	}
	if c.Dispatch.DefaultRadiusKm <= 0 {
		return fmt.Errorf("invalid default radius: %g", c.Dispatch.DefaultRadiusKm)
	}
	if c.Dispatch.SweepInterval <= 0 {
		return fmt.Errorf("invalid sweep interval: %s", c.Dispatch.SweepInterval)
	}
	return nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("warning: %s: not an int, using default", key)
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("warning: %s: not a float, using default", key)
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("warning: %s: not a duration, using default", key)
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
