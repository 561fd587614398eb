package config

import (
	"os"
	"strconv"
)

const (
	defaultMetricsAddr      = ":9090"
	defaultLogLevel         = "info"
	defaultLogFormat        = "json"
	defaultBatchConcurrency = 4
)

// Server captures host-level configuration for the CLI and serve loop.
type Server struct {
	MetricsAddr      string
	LogLevel         string
	LogFormat        string
	DeviceCatalog    string // empty means the embedded catalog
	BatchConcurrency int
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Unparseable or non-positive concurrency falls back to the default.
func FromEnv() Server {
	return Server{
		MetricsAddr:      envOr("ACTIONKERNEL_METRICS_ADDR", defaultMetricsAddr),
		LogLevel:         envOr("ACTIONKERNEL_LOG_LEVEL", defaultLogLevel),
		LogFormat:        envOr("ACTIONKERNEL_LOG_FORMAT", defaultLogFormat),
		DeviceCatalog:    os.Getenv("ACTIONKERNEL_DEVICE_CATALOG"),
		BatchConcurrency: positiveIntOr("ACTIONKERNEL_BATCH_CONCURRENCY", defaultBatchConcurrency),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func positiveIntOr(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
