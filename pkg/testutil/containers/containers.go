//go:build integration

// Package containers starts the Postgres, Redis and Kafka dependencies of the
// integration suites. Each container is started once per test binary and
// shared; Ryuk removes them when the process exits.
package containers

import (
	"sync"
	"testing"
)

// shared starts its value on first use. A failed start is not cached, so
// each caller sees the failure on its own test.
type shared[T any] struct {
	mu sync.Mutex
	v  *T
}

func (s *shared[T]) get(t *testing.T, start func(*testing.T) *T) *T {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.v == nil {
		s.v = start(t)
	}
	return s.v
}

var (
	postgresOnce shared[PostgresContainer]
	redisOnce    shared[RedisContainer]
	kafkaOnce    shared[KafkaContainer]
)

// Postgres returns the shared, migrated Postgres container.
func Postgres(t *testing.T) *PostgresContainer {
	return postgresOnce.get(t, NewPostgresContainer)
}

func Redis(t *testing.T) *RedisContainer {
	return redisOnce.get(t, NewRedisContainer)
}

func Kafka(t *testing.T) *KafkaContainer {
	return kafkaOnce.get(t, NewKafkaContainer)
}
