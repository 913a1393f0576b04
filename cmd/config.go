package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"logistics/internal/adapters/out/addressvalidation"
	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/notification"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/jobs"
	"logistics/internal/pkg/background"
	"logistics/internal/pkg/errs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort            string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPIdleTimeout     time.Duration
	HTTPShutdownTimeout time.Duration
	LogLevel            slog.Level

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisHost          string
	RedisPort          int
	RedisPassword      string
	RedisDB            int
	ShipmentDetailsTTL time.Duration
	UserByEmailTTL     time.Duration

	// KafkaBrokers is empty when event publishing is disabled.
	KafkaBrokers []string
	KafkaTopic   string

	AddressValidationEndpoint string
	AddressValidationAPIKey   string
	AddressValidationTimeout  time.Duration

	AWSRegion           string
	EmailSender         string
	NotificationTimeout time.Duration

	BackgroundTaskTimeout    time.Duration
	DeliveryMetricsSchedule  string
	DeliveryMetricsBatchSize int
}

// LoadConfig reads the configuration from the environment after loading an optional
// .env file. DB_HOST, DB_USER and DB_NAME are required; everything else has a default.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	e := envReader{}
	config := Config{
		HTTPPort:            e.str("HTTP_PORT", "8080"),
		HTTPReadTimeout:     e.duration("HTTP_READ_TIMEOUT", 10*time.Second),
		HTTPWriteTimeout:    e.duration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		HTTPIdleTimeout:     e.duration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		HTTPShutdownTimeout: e.duration("HTTP_SHUTDOWN_TIMEOUT", 20*time.Second),
		LogLevel:            e.level("LOG_LEVEL", slog.LevelInfo),

		DBHost:     e.required("DB_HOST"),
		DBPort:     e.str("DB_PORT", "5432"),
		DBUser:     e.required("DB_USER"),
		DBPassword: e.str("DB_PASSWORD", ""),
		DBName:     e.required("DB_NAME"),
		DBSslMode:  e.str("DB_SSLMODE", "disable"),

		RedisHost:          e.str("REDIS_HOST", "localhost"),
		RedisPort:          e.integer("REDIS_PORT", 6379),
		RedisPassword:      e.str("REDIS_PASSWORD", ""),
		RedisDB:            e.integer("REDIS_DB", 0),
		ShipmentDetailsTTL: e.duration("CACHE_SHIPMENT_DETAILS_TTL", queries.DefaultShipmentDetailsTTL),
		UserByEmailTTL:     e.duration("CACHE_USER_BY_EMAIL_TTL", queries.DefaultUserByEmailTTL),

		KafkaBrokers: e.list("KAFKA_BROKERS"),
		KafkaTopic:   e.str("KAFKA_TOPIC", kafka.DefaultTopic),

		AddressValidationEndpoint: e.str("ADDRESS_VALIDATION_ENDPOINT", addressvalidation.DefaultEndpoint),
		AddressValidationAPIKey:   e.str("GOOGLE_API_KEY", ""),
		AddressValidationTimeout:  e.duration("ADDRESS_VALIDATION_TIMEOUT", addressvalidation.DefaultTimeout),

		AWSRegion:           e.str("AWS_REGION", "us-east-1"),
		EmailSender:         e.str("EMAIL_SENDER", "no-reply@logistics.local"),
		NotificationTimeout: e.duration("NOTIFICATION_TIMEOUT", notification.DefaultTimeout),

		BackgroundTaskTimeout:    e.duration("BACKGROUND_TASK_TIMEOUT", background.DefaultTaskTimeout),
		DeliveryMetricsSchedule:  e.str("DELIVERY_METRICS_SCHEDULE", jobs.DefaultDeliveryMetricsSchedule),
		DeliveryMetricsBatchSize: e.integer("DELIVERY_METRICS_BATCH_SIZE", jobs.DefaultDeliveryMetricsBatch),
	}

	if err := errors.Join(e.errs...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// PostgresDSN renders the connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// envReader collects every problem so a misconfigured deployment reports them all at once.
type envReader struct {
	errs []error
}

func (r *envReader) str(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (r *envReader) required(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		r.errs = append(r.errs, errs.NewValueIsRequiredError(key))
	}
	return v
}

func (r *envReader) integer(key string, fallback int) int {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return v
}

func (r *envReader) duration(key string, fallback time.Duration) time.Duration {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return v
}

func (r *envReader) level(key string, fallback slog.Level) slog.Level {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return level
}

func (r *envReader) list(key string) []string {
	var out []string
	for _, part := range strings.Split(r.str(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
