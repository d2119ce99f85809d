// Package redis opens the shared go-redis client and exports its pool statistics.
package redis

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"ainadeul/internal/platform/config"
)

// Client wraps the go-redis client used by the session store and place cache.
type Client struct {
	*redis.Client
}

// New parses the URL, applies pool overrides and pings the server.
// It returns nil, nil when no URL is configured.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	applyOverrides(opts, cfg)

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close() //nolint:errcheck // best-effort cleanup on init failure
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{Client: client}, nil
}

func applyOverrides(opts *redis.Options, cfg config.RedisConfig) {
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
}

func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

// PoolCollector reports go-redis pool statistics at scrape time.
type PoolCollector struct {
	stats func() *redis.PoolStats

	hits       *prometheus.Desc
	misses     *prometheus.Desc
	timeouts   *prometheus.Desc
	staleConns *prometheus.Desc
	totalConns *prometheus.Desc
	idleConns  *prometheus.Desc
}

func NewPoolCollector(stats func() *redis.PoolStats) *PoolCollector {
	return &PoolCollector{
		stats:      stats,
		hits:       prometheus.NewDesc("ainadeul_redis_pool_hits_total", "Number of times a connection was found in the pool", nil, nil),
		misses:     prometheus.NewDesc("ainadeul_redis_pool_misses_total", "Number of times a connection was not found in the pool", nil, nil),
		timeouts:   prometheus.NewDesc("ainadeul_redis_pool_timeouts_total", "Number of times a connection was not obtained due to timeout", nil, nil),
		staleConns: prometheus.NewDesc("ainadeul_redis_pool_stale_conns_total", "Number of stale connections removed from the pool", nil, nil),
		totalConns: prometheus.NewDesc("ainadeul_redis_pool_total_conns", "Number of total connections in the pool", nil, nil),
		idleConns:  prometheus.NewDesc("ainadeul_redis_pool_idle_conns", "Number of idle connections in the pool", nil, nil),
	}
}

func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.timeouts
	ch <- c.staleConns
	ch <- c.totalConns
	ch <- c.idleConns
}

func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.timeouts, prometheus.CounterValue, float64(s.Timeouts))
	ch <- prometheus.MustNewConstMetric(c.staleConns, prometheus.CounterValue, float64(s.StaleConns))
	ch <- prometheus.MustNewConstMetric(c.totalConns, prometheus.GaugeValue, float64(s.TotalConns))
	ch <- prometheus.MustNewConstMetric(c.idleConns, prometheus.GaugeValue, float64(s.IdleConns))
}
