package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
				PoolSize int    `envconfig:"POOL_SIZE"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			MaxOpenConns   int    `envconfig:"MAX_OPEN_CONNS"  default:"10"`
			MaxIdleConns   int    `envconfig:"MAX_IDLE_CONNS"  default:"10"`
			LockTimeoutMs  int    `envconfig:"LOCK_TIMEOUT_MS" default:"5000"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			Booking      string `envconfig:"BOOKING"       default:"booking-events"`
			Hold         string `envconfig:"HOLD"          default:"hold-events"`
			Hotel        string `envconfig:"HOTEL"         default:"hotel-events"`
			SyncOutgoing string `envconfig:"SYNC_OUTGOING" default:"sync-outgoing"`
			SyncIncoming string `envconfig:"SYNC_INCOMING" default:"sync-incoming"`
		} `envconfig:"TOPICS"`
		Enable bool `envconfig:"ENABLE"`
	} `envconfig:"KAFKA"`

	Inventory struct {
		HoldDefaultMinutes       int    `envconfig:"HOLD_DEFAULT_MINUTES"          default:"15"`
		HoldSweepIntervalSeconds uint64 `envconfig:"HOLD_SWEEP_INTERVAL_SECONDS" default:"60"`
		CancelRequestOccupies    bool   `envconfig:"CANCEL_REQUEST_OCCUPIES"       default:"true"`
		MaxCalendarDays          int    `envconfig:"MAX_CALENDAR_DAYS"             default:"366"`
	} `envconfig:"INVENTORY"`

	Pricing struct {
		DynamicEnabled bool `envconfig:"DYNAMIC_ENABLED"`
		Coupon         struct {
			BaseURL                string  `envconfig:"BASE_URL"`
			APIKey                 string  `envconfig:"API_KEY"`
			TimeoutSeconds         int     `envconfig:"TIMEOUT_SECONDS"          default:"5"`
			RateLimit              float64 `envconfig:"RATE_LIMIT"               default:"20"`
			BurstLimit             int     `envconfig:"BURST_LIMIT"              default:"5"`
			BreakerMaxRequests     uint32  `envconfig:"BREAKER_MAX_REQUESTS"     default:"3"`
			BreakerIntervalSeconds int     `envconfig:"BREAKER_INTERVAL_SECONDS" default:"60"`
			BreakerTimeoutSeconds  int     `envconfig:"BREAKER_TIMEOUT_SECONDS"  default:"30"`
			BreakerFailures        uint32  `envconfig:"BREAKER_FAILURES"         default:"5"`
		} `envconfig:"COUPON"`
	} `envconfig:"PRICING"`

	Sync struct {
		Concurrency   int    `envconfig:"CONCURRENCY"     default:"4"`
		MaxWindowDays int    `envconfig:"MAX_WINDOW_DAYS" default:"366"`
		ExportEnabled bool   `envconfig:"EXPORT_ENABLED"`
		ExportBucket  string `envconfig:"EXPORT_BUCKET"`
	} `envconfig:"SYNC"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			Region          string `envconfig:"REGION"            default:"auto"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

// Validate reports settings that would only fail later at runtime.
func (c *Config) Validate() error {
	var errs []error

	if c.Inventory.HoldDefaultMinutes <= 0 {
		errs = append(errs, errors.New("INVENTORY_HOLD_DEFAULT_MINUTES must be positive"))
	}

	if c.Inventory.MaxCalendarDays <= 0 {
		errs = append(errs, errors.New("INVENTORY_MAX_CALENDAR_DAYS must be positive"))
	}

	if c.Sync.Concurrency <= 0 {
		errs = append(errs, errors.New("SYNC_CONCURRENCY must be positive"))
	}

	if c.Sync.ExportEnabled && c.Sync.ExportBucket == "" && c.External.S3.BucketName == "" {
		errs = append(errs, errors.New("SYNC_EXPORT_BUCKET or EXTERNAL_S3_BUCKET_NAME is required when export is enabled"))
	}

	if c.Kafka.Enable && len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS is required when Kafka is enabled"))
	}

	if c.App.RateLimiter.Enable && (c.App.RateLimiter.MaxRequests <= 0 || c.App.RateLimiter.WindowSeconds <= 0) {
		errs = append(errs, errors.New("APP_RATE_LIMITER_MAX_REQUESTS and APP_RATE_LIMITER_WINDOW_SECONDS must be positive"))
	}

	if c.Pricing.Coupon.RateLimit <= 0 {
		errs = append(errs, errors.New("PRICING_COUPON_RATE_LIMIT must be positive"))
	}

	if c.App.Timezone != "" {
		if _, err := time.LoadLocation(c.App.Timezone); err != nil {
			errs = append(errs, fmt.Errorf("APP_TIMEZONE: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Load reads the environment, after an optional .env file, into a new Config.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded, using the process environment")
	}

	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

var load = sync.OnceValues(Load)

// Get returns the process configuration, loading it on first use. The
// process exits when the configuration is unusable.
func Get() *Config {
	cfg, err := load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	return cfg
}
