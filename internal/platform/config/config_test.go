package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{
			"ACTIONKERNEL_METRICS_ADDR", "ACTIONKERNEL_LOG_LEVEL", "ACTIONKERNEL_LOG_FORMAT",
			"ACTIONKERNEL_DEVICE_CATALOG", "ACTIONKERNEL_BATCH_CONCURRENCY",
		} {
			t.Setenv(k, "")
		}

		assert.Equal(t, Server{
			MetricsAddr:      ":9090",
			LogLevel:         "info",
			LogFormat:        "json",
			BatchConcurrency: 4,
		}, FromEnv())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("ACTIONKERNEL_METRICS_ADDR", "127.0.0.1:9999")
		t.Setenv("ACTIONKERNEL_LOG_LEVEL", "debug")
		t.Setenv("ACTIONKERNEL_LOG_FORMAT", "text")
		t.Setenv("ACTIONKERNEL_DEVICE_CATALOG", "/etc/actionkernel/profiles.yaml")
		t.Setenv("ACTIONKERNEL_BATCH_CONCURRENCY", "8")

		cfg := FromEnv()
		assert.Equal(t, "127.0.0.1:9999", cfg.MetricsAddr)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "/etc/actionkernel/profiles.yaml", cfg.DeviceCatalog)
		assert.Equal(t, 8, cfg.BatchConcurrency)
	})

	t.Run("bad concurrency falls back", func(t *testing.T) {
		for _, v := range []string{"zero", "0", "-3"} {
			t.Setenv("ACTIONKERNEL_BATCH_CONCURRENCY", v)
			assert.Equal(t, 4, FromEnv().BatchConcurrency, v)
		}
	})
}
