package database

import (
	"context"
	"fmt"
	"time"

	"MediMaga/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type RedisConfig struct {
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	MinIdleConns int
	ReadTimeout  time.Duration
	MaxRetries   int
}

// NewRedisClient creates a Redis client with the provided configuration
func NewRedisClient(ctx context.Context, config RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = config.PoolSize
	opt.MinIdleConns = config.MinIdleConns
	opt.DialTimeout = config.DialTimeout
	opt.ReadTimeout = config.ReadTimeout
	opt.MaxRetries = config.MaxRetries

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis server: %w", err)
	}

	utils.GetLogger().Info("Redis client initialized",
		zap.Int("poolSize", config.PoolSize),
		zap.Int("minIdleConns", config.MinIdleConns),
		zap.Duration("dialTimeout", config.DialTimeout),
		zap.Duration("readTimeout", config.ReadTimeout),
		zap.Int("maxRetries", config.MaxRetries))
	return client, nil
}

// RedisPoolStats reports the connection pool statistics for the health endpoint.
func RedisPoolStats(client *redis.Client) map[string]uint32 {
	stats := client.PoolStats()
	return map[string]uint32{
		"total": stats.TotalConns,
		"idle":  stats.IdleConns,
		"stale": stats.StaleConns,
	}
}
