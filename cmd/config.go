package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/core/domain/services"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost              string
	KafkaOrderChangedTopic string

	RedisAddr        string
	TrackingCacheTTL time.Duration

	AgentSpeedKmh float64
	Journey       services.JourneyPolicy

	AgentAssignmentSchedule  string
	RestockReconcileSchedule string
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// LoadConfig reads .env when present and then the process environment. Everything
// except the database credentials has a default.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	defaults := services.DefaultJourneyPolicy()
	p := envParser{}

	cfg := Config{
		AppEnv:   env("APP_ENV", "production"),
		LogLevel: env("LOG_LEVEL", "info"),
		HTTPPort: env("HTTP_PORT", "8080"),

		DBHost:     env("DB_HOST", "localhost"),
		DBPort:     env("DB_PORT", "5432"),
		DBUser:     p.required("DB_USER"),
		DBPassword: p.required("DB_PASSWORD"),
		DBName:     p.required("DB_NAME"),
		DBSslMode:  env("DB_SSLMODE", "disable"),

		KafkaHost:              env("KAFKA_HOST", "localhost:9092"),
		KafkaOrderChangedTopic: env("KAFKA_ORDER_CHANGED_TOPIC", "order.status.changed"),

		RedisAddr:        env("REDIS_ADDR", "localhost:6379"),
		TrackingCacheTTL: p.duration("TRACKING_CACHE_TTL", 30*time.Second),

		AgentSpeedKmh: p.float("AGENT_AVERAGE_SPEED_KMH", 30),
		Journey: services.JourneyPolicy{
			Fulfillment:     p.duration("JOURNEY_FULFILLMENT", defaults.Fulfillment),
			RegionalTransit: p.duration("JOURNEY_REGIONAL", defaults.RegionalTransit),
			LocalStation:    p.duration("JOURNEY_LOCAL_STATION", defaults.LocalStation),
			AgentAssignment: p.duration("JOURNEY_AGENT_ASSIGNMENT", defaults.AgentAssignment),
			OutForDelivery:  p.duration("JOURNEY_OUT_FOR_DELIVERY", defaults.OutForDelivery),
		},

		AgentAssignmentSchedule:  env("AGENT_ASSIGNMENT_SCHEDULE", "*/30 * * * * *"),
		RestockReconcileSchedule: env("RESTOCK_RECONCILE_SCHEDULE", "0 */5 * * * *"),
	}

	if cfg.AgentSpeedKmh <= 0 {
		p.errs = append(p.errs, fmt.Errorf("AGENT_AVERAGE_SPEED_KMH must be positive"))
	}
	if err := cfg.Journey.Validate(); err != nil {
		p.errs = append(p.errs, err)
	}
	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

// envParser collects every invalid variable so startup reports them together.
type envParser struct {
	errs []error
}

func (p *envParser) required(key string) string {
	v := env(key, "")
	if v == "" {
		p.errs = append(p.errs, fmt.Errorf("%s is required", key))
	}
	return v
}

func (p *envParser) duration(key string, fallback time.Duration) time.Duration {
	raw := env(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}

func (p *envParser) float(key string, fallback float64) float64 {
	raw := env(key, "")
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return f
}
