package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"AINADEUL_ADDR", "ENVIRONMENT", "TOKEN_TTL", "DATABASE_URL", "REDIS_URL", "KAFKA_BROKERS", "GEOIP_DB_PATH", "LOCATION_TIMEOUT", "PLACE_CACHE_TTL", "AINADEUL_TIMEZONE", "SEED_DEMO_DATA", "TRUSTED_PROXIES", "TRACING_EXPORTER", "TRACING_SAMPLE_RATIO"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5*time.Second, cfg.Location.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.PlaceCacheTTL)
	assert.Empty(t, cfg.Database.URL)
	assert.Empty(t, cfg.Location.TrustedProxies)
	assert.Empty(t, cfg.Tracing.Exporter)
	assert.InDelta(t, 1, cfg.Tracing.SampleRatio, 0)
	assert.Equal(t, "ainadeul.activity", cfg.Kafka.ActivityTopic)
	assert.NotEmpty(t, cfg.JWTSigningKey)
	assert.Equal(t, "Asia/Seoul", cfg.Timezone)
	assert.True(t, cfg.SeedDemoData, "development seeds demo data")
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("AINADEUL_ADDR", ":9090")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("LOCATION_TIMEOUT", "2s")
	t.Setenv("PLACE_CACHE_TTL", "not-a-duration")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "7")
	t.Setenv("KAFKA_BROKERS", " localhost:9092 ")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SEED_DEMO_DATA", "")
	t.Setenv("TRACING_SAMPLE_RATIO", "0.1")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 2*time.Second, cfg.Location.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.PlaceCacheTTL, "invalid durations fall back to the default")
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.Equal(t, "localhost:9092", cfg.Kafka.Brokers)
	assert.False(t, cfg.SeedDemoData)
	assert.InDelta(t, 0.1, cfg.Tracing.SampleRatio, 1e-9)
}
