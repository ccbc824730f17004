package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save and restore environment variables after the test
	envVars := []string{
		"DB_TYPE", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"APP_PORT", "CACHE_TYPE", "CACHE_ADDR", "CACHE_TTL", "PROVIDER_TIMEOUT",
		"AMQP_URI", "EVENTS_QUEUE", "NEWS_IMPORT_ENABLED", "NEWS_IMPORT_INTERVAL",
	}
	originalEnv := make(map[string]string)
	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		os.Unsetenv(key) // Clear before test
	}
	defer func() {
		for key, val := range originalEnv {
			if val != "" {
				os.Setenv(key, val)
			}
		}
	}()

	t.Run("Default values", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, DBTypeMemory, cfg.DB.Type)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, CacheTypeMemory, cfg.Cache.Type)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, 5*time.Second, cfg.Providers.Timeout)
		assert.Equal(t, "city-events", cfg.Events.Queue)
		assert.False(t, cfg.Importer.Enabled)
	})

	t.Run("Custom environment variables", func(t *testing.T) {
		t.Setenv("DB_TYPE", "postgres")
		t.Setenv("DB_HOST", "test-db")
		t.Setenv("CACHE_TYPE", "redis")
		t.Setenv("CACHE_TTL", "30s")
		t.Setenv("NEWS_IMPORT_ENABLED", "true")
		t.Setenv("NEWS_IMPORT_INTERVAL", "15m")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, DBTypePostgreSQL, cfg.DB.Type)
		assert.Equal(t, "test-db", cfg.DB.Host)
		assert.Equal(t, CacheTypeRedis, cfg.Cache.Type)
		assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
		assert.True(t, cfg.Importer.Enabled)
		assert.Equal(t, 15*time.Minute, cfg.Importer.Interval)
	})

	t.Run("Invalid enum values fall back", func(t *testing.T) {
		t.Setenv("DB_TYPE", "oracle")
		t.Setenv("CACHE_TYPE", "etcd")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, DBTypeMemory, cfg.DB.Type)
		assert.Equal(t, CacheTypeMemory, cfg.Cache.Type)
	})
}

func TestDBConfig_DSN(t *testing.T) {
	t.Run("Postgres", func(t *testing.T) {
		cfg := DBConfig{
			Type: DBTypePostgreSQL, Host: "db", Port: "5432",
			User: "u", Password: "p", Name: "worldinfo", SSLMode: "disable",
		}
		assert.Equal(t, "postgres://u:p@db:5432/worldinfo?sslmode=disable", cfg.DSN())
	})

	t.Run("Memory", func(t *testing.T) {
		cfg := DBConfig{Type: DBTypeMemory, Name: "worldinfo"}
		assert.Equal(t, "file::memory:?cache=shared", cfg.DSN())
		assert.True(t, cfg.IsMemory())
	})

	t.Run("Named memory database", func(t *testing.T) {
		cfg := DBConfig{Type: DBTypeMemory, Name: "testdb"}
		assert.Equal(t, "file:testdb?mode=memory&cache=shared", cfg.DSN())
	})
}
