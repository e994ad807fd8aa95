package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	JWTSecret         string
	AuthStrategy      string
	TokenTTL          time.Duration
	PasswordCost      int
	StaffLogins       []string
	StaffPasswordHash string
	ShutdownTimeout   time.Duration
	LogLevel          string

	RedisAddress string
	RateLimit    int
	RateWindow   time.Duration

	KafkaBrokers       []string
	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxWorkers      int

	OTelEnabled     bool
	OTelEndpoint    string
	OTelSampleRatio float64
}

const (
	AuthStrategyHMAC = "hmac"
	AuthStrategyJWT  = "jwt"
)

const (
	defaultRunAddress         = ":8080"
	defaultJWTSecret          = "change-me-in-production"
	defaultAuthStrategy       = AuthStrategyHMAC
	defaultTokenTTL           = 24 * time.Hour
	defaultShutdownTimeout    = 10 * time.Second
	defaultLogLevel           = "info"
	defaultRateLimit          = 60
	defaultRateWindow         = time.Minute
	defaultOutboxPollInterval = 2 * time.Second
	defaultOutboxBatchSize    = 50
	defaultOutboxWorkers      = 2
	defaultOTelEndpoint       = "localhost:4317"
	defaultOTelSampleRatio    = 1.0
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		JWTSecret:          getString(lookup, "JWT_SECRET", defaultJWTSecret),
		AuthStrategy:       getString(lookup, "AUTH_STRATEGY", defaultAuthStrategy),
		TokenTTL:           getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		PasswordCost:       getInt(lookup, "PASSWORD_COST", 0),
		StaffLogins:        splitList(getString(lookup, "STAFF_LOGINS", "")),
		StaffPasswordHash:  getString(lookup, "STAFF_PASSWORD_HASH", ""),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:           getString(lookup, "LOG_LEVEL", defaultLogLevel),
		RedisAddress:       getString(lookup, "REDIS_ADDRESS", ""),
		RateLimit:          getInt(lookup, "RATE_LIMIT", defaultRateLimit),
		RateWindow:         getDuration(lookup, "RATE_WINDOW", defaultRateWindow),
		KafkaBrokers:       splitList(getString(lookup, "KAFKA_BROKERS", "")),
		OutboxPollInterval: getDuration(lookup, "OUTBOX_POLL_INTERVAL", defaultOutboxPollInterval),
		OutboxBatchSize:    getInt(lookup, "OUTBOX_BATCH_SIZE", defaultOutboxBatchSize),
		OutboxWorkers:      getInt(lookup, "OUTBOX_WORKERS", defaultOutboxWorkers),
		OTelEnabled:        getBool(lookup, "OTEL_ENABLED", false),
		OTelEndpoint:       getString(lookup, "OTEL_EXPORTER_OTLP_ENDPOINT", defaultOTelEndpoint),
		OTelSampleRatio:    getFloat(lookup, "OTEL_SAMPLING_RATIO", defaultOTelSampleRatio),
	}

	fs := flag.NewFlagSet("atelier", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		pollIntervalStr    = cfg.OutboxPollInterval.String()
		staffLoginsStr     = strings.Join(cfg.StaffLogins, ",")
		kafkaBrokersStr    = strings.Join(cfg.KafkaBrokers, ",")
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.AuthStrategy, "auth-strategy", cfg.AuthStrategy, "Token strategy: hmac or jwt")
	fs.StringVar(&staffLoginsStr, "staff", staffLoginsStr, "Comma separated staff logins seeded at startup")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for rate limiting")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Slot queries allowed per client and window")
	fs.StringVar(&kafkaBrokersStr, "kafka", kafkaBrokersStr, "Comma separated Kafka brokers")
	fs.StringVar(&pollIntervalStr, "outbox-interval", pollIntervalStr, "Interval between outbox polls")
	fs.IntVar(&cfg.OutboxWorkers, "outbox-workers", cfg.OutboxWorkers, "Number of concurrent outbox publishers")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.OutboxPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid outbox interval: %w", err)
	}

	cfg.StaffLogins = splitList(staffLoginsStr)
	cfg.KafkaBrokers = splitList(kafkaBrokersStr)

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if hashFile, ok := lookup("STAFF_PASSWORD_HASH_FILE"); ok && hashFile != "" {
		content, err := os.ReadFile(hashFile)
		if err != nil {
			return nil, fmt.Errorf("read staff password hash file: %w", err)
		}
		cfg.StaffPasswordHash = strings.TrimSpace(string(content))
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.RateLimit <= 0 {
		cfg.RateLimit = defaultRateLimit
	}

	if cfg.RateWindow <= 0 {
		cfg.RateWindow = defaultRateWindow
	}

	if cfg.OutboxPollInterval <= 0 {
		cfg.OutboxPollInterval = defaultOutboxPollInterval
	}

	if cfg.OutboxBatchSize <= 0 {
		cfg.OutboxBatchSize = defaultOutboxBatchSize
	}

	if cfg.OutboxWorkers <= 0 {
		cfg.OutboxWorkers = defaultOutboxWorkers
	}

	if cfg.OTelSampleRatio < 0 || cfg.OTelSampleRatio > 1 {
		cfg.OTelSampleRatio = defaultOTelSampleRatio
	}

	switch cfg.AuthStrategy {
	case AuthStrategyHMAC, AuthStrategyJWT:
	default:
		return nil, fmt.Errorf("unknown auth strategy %q", cfg.AuthStrategy)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

// StaffCredentials returns the staff logins to provision and the bcrypt hash
// they share.
func (c *Config) StaffCredentials() ([]string, string) {
	return c.StaffLogins, c.StaffPasswordHash
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
