package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	Environment     string
	JWTSigningKey   string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
	Database        DatabaseConfig
	Redis           RedisConfig
	Kafka           KafkaConfig
	Location        LocationConfig
	Tracing         TracingConfig
	PlaceCacheTTL   time.Duration
	// Timezone decides which day the events tabs treat as today.
	Timezone        string
	SeedDemoData    bool
}

// DatabaseConfig configures the Postgres pool. An empty URL selects in-memory stores.
type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
}

// RedisConfig configures the cache and session client. An empty URL disables Redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures activity publishing. An empty broker list disables it.
type KafkaConfig struct {
	Brokers       string
	ActivityTopic string
}

// LocationConfig configures current-location lookups. TrustedProxies is a
// comma separated CIDR list allowed to set X-Forwarded-For.
type LocationConfig struct {
	GeoIPDBPath    string
	TrustedProxies string
	Timeout        time.Duration
}

// TracingConfig selects the span exporter: empty (off), "stdout" or "otlp".
type TracingConfig struct {
	Exporter     string
	OTLPEndpoint string
	SampleRatio  float64
}

var (
	TokenTTL      = 24 * time.Hour
	PlaceCacheTTL = 5 * time.Minute
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("AINADEUL_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:            addr,
		Environment:     environment,
		JWTSigningKey:   jwtSigningKey,
		TokenTTL:        durationEnv("TOKEN_TTL", TokenTTL),
		ShutdownTimeout: durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: intEnv("DATABASE_MAX_OPEN_CONNS", 25),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     intEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:       strings.TrimSpace(os.Getenv("KAFKA_BROKERS")),
			ActivityTopic: stringEnv("KAFKA_ACTIVITY_TOPIC", "ainadeul.activity"),
		},
		Location: LocationConfig{
			GeoIPDBPath:    os.Getenv("GEOIP_DB_PATH"),
			TrustedProxies: os.Getenv("TRUSTED_PROXIES"),
			Timeout:        durationEnv("LOCATION_TIMEOUT", 5*time.Second),
		},
		Tracing: TracingConfig{
			Exporter:     os.Getenv("TRACING_EXPORTER"),
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			SampleRatio:  floatEnv("TRACING_SAMPLE_RATIO", 1),
		},
		PlaceCacheTTL: durationEnv("PLACE_CACHE_TTL", PlaceCacheTTL),
		Timezone:      stringEnv("AINADEUL_TIMEZONE", "Asia/Seoul"),
		SeedDemoData:  boolEnv("SEED_DEMO_DATA", environment == "development"),
	}
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func floatEnv(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
