package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/toruinaba/structools/internal/logging"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Batch     BatchConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `envconfig:"STRUCTOOLS_HOST" default:"0.0.0.0"`
	Port            string        `envconfig:"STRUCTOOLS_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"STRUCTOOLS_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"STRUCTOOLS_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"STRUCTOOLS_SHUTDOWN_TIMEOUT" default:"15s"`
	MaxBodyBytes    int64         `envconfig:"STRUCTOOLS_MAX_BODY_BYTES" default:"1048576"`
}

// Addr joins host and port for net/http
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string   `envconfig:"STRUCTOOLS_LOG_LEVEL" default:"info"`
	Development bool     `envconfig:"STRUCTOOLS_LOG_DEV" default:"false"`
	Output      []string `envconfig:"STRUCTOOLS_LOG_OUTPUT" default:"stderr"`
}

// Logger converts to the logging package configuration
func (l LogConfig) Logger() logging.Config {
	return logging.Config{
		Level:       l.Level,
		Development: l.Development,
		OutputPaths: l.Output,
	}
}

// RateLimitConfig holds per-client rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond float64 `envconfig:"STRUCTOOLS_RATE_LIMIT_RPS" default:"20"`
	Burst             int     `envconfig:"STRUCTOOLS_RATE_LIMIT_BURST" default:"40"`
	Enabled           bool    `envconfig:"STRUCTOOLS_RATE_LIMIT_ENABLED" default:"true"`

	// Idle is how long an unused client bucket is kept
	Idle time.Duration `envconfig:"STRUCTOOLS_RATE_LIMIT_IDLE" default:"10m"`
}

// BatchConfig bounds batch evaluation.
type BatchConfig struct {
	Workers  int `envconfig:"STRUCTOOLS_BATCH_WORKERS" default:"4"`
	MaxItems int `envconfig:"STRUCTOOLS_BATCH_MAX_ITEMS" default:"500"`
}

// Load reads the optional dotenv files (".env" when none are given) and
// then the environment. Variables already set win over dotenv values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault(envFiles ...string) *Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Logging: LogConfig{
			Level:  "info",
			Output: []string{"stderr"},
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 20,
			Burst:             40,
			Enabled:           true,
			Idle:              10 * time.Minute,
		},
		Batch: BatchConfig{
			Workers:  4,
			MaxItems: 500,
		},
	}
}

func (c *Config) validate() error {
	if c.Batch.Workers < 1 {
		return fmt.Errorf("STRUCTOOLS_BATCH_WORKERS must be at least 1, got %d", c.Batch.Workers)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1) {
		return fmt.Errorf("rate limit needs a positive rate and burst, got %g/%d",
			c.RateLimit.RequestsPerSecond, c.RateLimit.Burst)
	}
	return nil
}
