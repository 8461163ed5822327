package config

import (
	"fmt"
	"time"

	"turf-booking/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Booking   BookingConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	MQ        MQConfig
	Tracing   TracingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

// Tokens are issued by the external identity provider; only verification happens here.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string `envconfig:"JWT_ISSUER"`
	Audience string `envconfig:"JWT_AUDIENCE"`
	Leeway   string `envconfig:"JWT_LEEWAY" default:"30s"`
}

type BookingConfig struct {
	// 0 disables expiry of unconfirmed bookings
	PendingTTL        time.Duration `envconfig:"BOOKING_PENDING_TTL" default:"0"`
	ExpiryInterval    time.Duration `envconfig:"BOOKING_EXPIRY_INTERVAL" default:"1m"`
	ExpiryBatchSize   int           `envconfig:"BOOKING_EXPIRY_BATCH_SIZE" default:"100"`
	DispatchInterval  time.Duration `envconfig:"BOOKING_DISPATCH_INTERVAL" default:"2s"`
	DispatchBatchSize int           `envconfig:"BOOKING_DISPATCH_BATCH_SIZE" default:"50"`
	DispatchMaxTries  int           `envconfig:"BOOKING_DISPATCH_MAX_ATTEMPTS" default:"10"`
}

type RateLimitConfig struct {
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"2"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"5"`
	// memory or redis
	Store   string        `envconfig:"RATE_LIMIT_STORE" default:"memory"`
	IdleTTL time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"10m"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MQConfig struct {
	// empty URL switches event publishing to the log publisher
	URL      string `envconfig:"MQ_URL"`
	Exchange string `envconfig:"MQ_EXCHANGE" default:"turf.bookings"`
}

type TracingConfig struct {
	Enabled     bool    `envconfig:"TRACING_ENABLED" default:"false"`
	Endpoint    string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	ServiceName string  `envconfig:"OTEL_SERVICE_NAME" default:"turf-booking"`
	SampleRatio float64 `envconfig:"TRACING_SAMPLE_RATIO" default:"1"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *JWTConfig) LeewayDuration() (time.Duration, error) {
	if c.Leeway == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Leeway)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, errs.Wrap(err, "failed to process env config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errs.Wrap(err, "invalid env config")
	}
	return cfg, nil
}

// Validate rejects values the workers and the limiter cannot run with.
func (c Config) Validate() error {
	b := c.Booking
	switch {
	case b.PendingTTL < 0:
		return errs.Newf("BOOKING_PENDING_TTL must not be negative, got %s", b.PendingTTL)
	case b.ExpiryInterval <= 0:
		return errs.Newf("BOOKING_EXPIRY_INTERVAL must be positive, got %s", b.ExpiryInterval)
	case b.ExpiryBatchSize <= 0:
		return errs.Newf("BOOKING_EXPIRY_BATCH_SIZE must be positive, got %d", b.ExpiryBatchSize)
	case b.DispatchInterval <= 0:
		return errs.Newf("BOOKING_DISPATCH_INTERVAL must be positive, got %s", b.DispatchInterval)
	case b.DispatchBatchSize <= 0:
		return errs.Newf("BOOKING_DISPATCH_BATCH_SIZE must be positive, got %d", b.DispatchBatchSize)
	case b.DispatchMaxTries <= 0:
		return errs.Newf("BOOKING_DISPATCH_MAX_ATTEMPTS must be positive, got %d", b.DispatchMaxTries)
	}

	if leeway, err := c.JWT.LeewayDuration(); err != nil || leeway < 0 {
		return errs.Newf("JWT_LEEWAY must be a non-negative duration, got %q", c.JWT.Leeway)
	}

	rl := c.RateLimit
	if !rl.Enabled {
		return nil
	}
	switch {
	case rl.RPS <= 0:
		return errs.Newf("RATE_LIMIT_RPS must be positive, got %v", rl.RPS)
	case rl.Burst <= 0:
		return errs.Newf("RATE_LIMIT_BURST must be positive, got %d", rl.Burst)
	case rl.Store != "" && rl.Store != "memory" && rl.Store != "redis":
		return errs.Newf("RATE_LIMIT_STORE must be memory or redis, got %q", rl.Store)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret: "test-secret-key-for-e2e-only",
			Leeway: "0s",
		},
		Booking: BookingConfig{
			ExpiryInterval:    time.Minute,
			ExpiryBatchSize:   100,
			DispatchInterval:  time.Second,
			DispatchBatchSize: 50,
			DispatchMaxTries:  3,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
			RPS:     100,
			Burst:   100,
			Store:   "memory",
			IdleTTL: time.Minute,
		},
		MQ: MQConfig{
			Exchange: "turf.bookings.test",
		},
		Tracing: TracingConfig{
			ServiceName: "turf-booking-test",
		},
	}
}
