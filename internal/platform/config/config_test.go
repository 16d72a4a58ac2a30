package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"LOCALDIR_ADDR", "DATABASE_URL", "REDIS_URL", "KAFKA_BROKERS", "PENDING_CACHE_TTL", "ADMIN_ROLE"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "moderation.decisions", cfg.Kafka.Topic)
	assert.Equal(t, "admin", cfg.Auth.AdminRole)
	assert.Equal(t, 30*time.Second, cfg.PendingCache)
	assert.NotEmpty(t, cfg.Auth.SigningKey)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LOCALDIR_ADDR", ":9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("PENDING_CACHE_TTL", "2m")
	t.Setenv("REDIS_POOL_SIZE", "not-a-number")
	t.Setenv("ENVIRONMENT", "Production")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 2*time.Minute, cfg.PendingCache)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
	assert.True(t, cfg.IsProduction())
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("loads values from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("LOCALDIR_TEST_VALUE=from-dotenv\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("LOCALDIR_TEST_VALUE") })

		require.NoError(t, LoadDotEnv(path))
		assert.Equal(t, "from-dotenv", os.Getenv("LOCALDIR_TEST_VALUE"))
	})
}
