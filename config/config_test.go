package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, ":8080", cfg.Server.HTTPPort)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "omnipos:retail", cfg.Redis.KeyPrefix)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, time.UTC, cfg.Store.Location())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("HTTP_WRITE_TIMEOUT", "2s")

	cfg := LoadEnv()

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, ":9090", cfg.Server.HTTPPort)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Server.WriteTimeout)
}

func TestMalformedValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "three")
	t.Setenv("TRACING_ENABLED", "sometimes")
	t.Setenv("HTTP_READ_TIMEOUT", "soon")

	cfg := LoadEnv()

	assert.Equal(t, 0, cfg.Redis.DB)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestStoreLocationUnknownZone(t *testing.T) {
	c := StoreConfig{Timezone: "Mars/Olympus_Mons"}
	assert.Equal(t, time.UTC, c.Location())
}
