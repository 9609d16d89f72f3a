package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress            string
	DatabaseURI           string
	JWTSecret             string
	TokenTTL              time.Duration
	ShutdownTimeout       time.Duration
	CancellationWindow    time.Duration
	NotificationWorkers   int
	NotificationQueueSize int
}

const (
	defaultRunAddress            = ":8080"
	defaultJWTSecret             = "change-me-in-production"
	defaultTokenTTL              = 24 * time.Hour
	defaultShutdownTimeout       = 10 * time.Second
	defaultCancellationWindow    = 2 * time.Hour
	defaultNotificationWorkers   = 4
	defaultNotificationQueueSize = 128
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:            getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:           getString(lookup, "DATABASE_URI", ""),
		JWTSecret:             getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:              getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		CancellationWindow:    getDuration(lookup, "CANCELLATION_WINDOW", defaultCancellationWindow),
		NotificationWorkers:   getInt(lookup, "NOTIFICATION_WORKERS", defaultNotificationWorkers),
		NotificationQueueSize: getInt(lookup, "NOTIFICATION_QUEUE_SIZE", defaultNotificationQueueSize),
	}

	fs := flag.NewFlagSet("kisaan", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		cancelWindowStr    = cfg.CancellationWindow.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cancelWindowStr, "cancellation-window", cancelWindowStr, "How long consumers may cancel accepted orders")
	fs.IntVar(&cfg.NotificationWorkers, "notification-workers", cfg.NotificationWorkers, "Number of concurrent notification workers")
	fs.IntVar(&cfg.NotificationQueueSize, "notification-queue", cfg.NotificationQueueSize, "Notification queue capacity")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.CancellationWindow, err = time.ParseDuration(cancelWindowStr); err != nil {
		return nil, fmt.Errorf("invalid cancellation window: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.CancellationWindow <= 0 {
		cfg.CancellationWindow = defaultCancellationWindow
	}

	if cfg.NotificationWorkers <= 0 {
		cfg.NotificationWorkers = defaultNotificationWorkers
	}

	if cfg.NotificationQueueSize <= 0 {
		cfg.NotificationQueueSize = defaultNotificationQueueSize
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
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
