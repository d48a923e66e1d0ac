package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/Leozerbib/gile-back-sub000/internal/config"
	appLogger "github.com/Leozerbib/gile-back-sub000/pkg/logger"
	"github.com/redis/go-redis/v9"
)

type KeydbClient struct {
	client *redis.Client
	logger appLogger.Logger
	config config.Cache
}

func NewKeyDBClient(config config.Cache, logger appLogger.Logger) *KeydbClient {
	opts := &redis.Options{
		Addr:         config.Address,
		Password:     config.Password,
		DB:           int(config.DB),
		PoolSize:     int(config.PoolSize),
		MinIdleConns: int(config.MinIdleConns),
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		PoolTimeout:  config.PoolTimeout,
		MaxRetries:   int(config.MaxRetries),
	}

	client := redis.NewClient(opts)

	return &KeydbClient{
		client: client,
		logger: logger,
		config: config,
	}
}

func (c *KeydbClient) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// CheckHealth satisfies the health checker port.
func (c *KeydbClient) CheckHealth(ctx context.Context) error {
	return c.Ping(ctx)
}

func (c *KeydbClient) Close() error {
	return c.client.Close()
}

func (c *KeydbClient) Get(ctx context.Context, key string) ([]byte, error) {
	startTime := time.Now()

	result, err := c.client.Get(ctx, key).Bytes()
	duration := time.Since(startTime)

	c.logger.Debug().
		Str("key", key).
		Int64("duration_ms", duration.Milliseconds()).
		Bool("hit", err == nil).
		Msg("keydb get operation")

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, redis.Nil
		}
		c.logger.Error().
			Err(err).
			Str("key", key).
			Msg("keydb get operation failed")

		return nil, err
	}

	return result, nil
}

func (c *KeydbClient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.config.DefaultExpiry
	}

	startTime := time.Now()
	var err error

	defer func() {
		duration := time.Since(startTime)

		c.logger.Debug().
			Str("key", key).
			Str("expiry", ttl.String()).
			Int64("duration_ms", duration.Milliseconds()).
			Bool("success", err == nil).
			Msg("keydb set operation")
	}()

	err = c.client.Set(ctx, key, value, ttl).Err()

	return err
}

func (c *KeydbClient) Delete(ctx context.Context, key string) error {
	startTime := time.Now()
	var err error

	defer func() {
		duration := time.Since(startTime)

		c.logger.Debug().
			Str("key", key).
			Int64("duration_ms", duration.Milliseconds()).
			Bool("success", err == nil).
			Msg("keydb delete operation")
	}()

	err = c.client.Del(ctx, key).Err()

	return err
}

// TTL returns the remaining time-to-live of a key.
func (c *KeydbClient) TTL(ctx context.Context, key string) time.Duration {
	result, err := c.client.TTL(ctx, key).Result()
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to get TTL")

		return 0
	}

	return result
}

// Scan iterates over keys matching a pattern.
func (c *KeydbClient) Scan(ctx context.Context, cursor uint64, pattern string, count int64) ([]string, uint64, error) {
	keys, nextCursor, err := c.client.Scan(ctx, cursor, pattern, count).Result()
	if err != nil {
		return nil, 0, err
	}

	return keys, nextCursor, nil
}

// IsHealthy checks if the cache is available.
func (c *KeydbClient) IsHealthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return c.Ping(ctx) == nil
}
