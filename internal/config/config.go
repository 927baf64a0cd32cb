package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Auth       AuthConfig
	Services   ServicesConfig
	Kafka      KafkaConfig
	Redis      RedisConfig
	WorkerPool WorkerPoolConfig
	Server     ServerConfig
	Ledger     LedgerConfig
	Admin      AdminConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	StripeSecretKey     string
	StripeWebhookSecret string
	ResendAPIKey        string
	DefaultEmailSender  string
	WebAppURI           string
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers       string
	Topic         string // outbound affiliate events
	PaymentsTopic string // inbound PaymentConfirmed events
	ConsumerGroup string
}

// BrokerList splits the comma separated broker string.
func (k KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// RedisConfig holds Redis connection settings. Redis backs the asynq queues
// and the balance read cache.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// Addr returns host:port.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

// WorkerPoolConfig holds worker pool configuration for event processing
type WorkerPoolConfig struct {
	PaymentWorkers int // Number of workers for PaymentConfirmed event processing
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	RateLimitRPM int // per client IP on signup and login
	LogLevel     string
}

// LedgerConfig holds affiliate ledger settings
type LedgerConfig struct {
	DefaultPhoneRegion string
	ReconcileSchedule  string
}

// AdminConfig seeds an admin account on startup when Email is set
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds the configuration from the current process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Services configuration
	if cfg.Services.StripeSecretKey, err = requireEnv("STRIPE_SECRET_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.StripeWebhookSecret, err = requireEnv("STRIPE_WEBHOOK_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}

	// Kafka configuration
	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "affiliate-events")
	cfg.Kafka.PaymentsTopic = getEnvWithDefault("KAFKA_PAYMENTS_TOPIC", "payments.confirmed")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "affiliate-ledger")

	// Redis configuration
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnvWithDefault("REDIS_PORT", "6379")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}
	cfg.Redis.Enabled, err = strconv.ParseBool(getEnvWithDefault("REDIS_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_ENABLED: %w", err)
	}

	// Worker pool configuration
	paymentWorkers := getEnvWithDefault("PAYMENT_WORKERS", "5")
	cfg.WorkerPool.PaymentWorkers, err = strconv.Atoi(paymentWorkers)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PAYMENT_WORKERS: %w", err)
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.Server.RateLimitRPM, err = strconv.Atoi(getEnvWithDefault("RATE_LIMIT_RPM", "20"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_RPM: %w", err)
	}

	// Ledger configuration
	cfg.Ledger.DefaultPhoneRegion = getEnvWithDefault("DEFAULT_PHONE_REGION", "NG")
	cfg.Ledger.ReconcileSchedule = getEnvWithDefault("RECONCILE_SCHEDULE", "0 3 * * *")

	// Admin seed
	cfg.Admin.Name = getEnvWithDefault("ADMIN_NAME", "Admin")
	cfg.Admin.Email = os.Getenv("ADMIN_EMAIL")
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")
	if cfg.Admin.Email != "" && cfg.Admin.Password == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is not set: %w", ErrEmptyEnvironmentVariable)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
