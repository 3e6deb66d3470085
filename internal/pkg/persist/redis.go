package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/megamart/commerce-core/internal/app/commerce/contracts"
	"github.com/megamart/commerce-core/internal/config"
)

// Redis is a Persister backed by a Redis instance. Useful when several
// storefront processes on one machine should observe the same cart.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to Redis using the given settings and verifies the
// connection with a ping.
func NewRedis(ctx context.Context, cfg config.Redis) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	opts.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	opts.DialTimeout = time.Duration(cfg.DialTimeout) * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Redis{client: client}, nil
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Get returns the value stored under key or contracts.ErrKeyMissing.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, contracts.ErrKeyMissing
	}
	if err != nil {
		return nil, fmt.Errorf("read key %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key with no expiry; store state lives until the
// owning store erases it.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}

// Delete removes key entirely.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}
