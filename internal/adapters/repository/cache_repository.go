package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskify/core/internal/ports"
)

// CacheRepositoryImpl implements the CacheRepository interface using Redis.
// Values are stored as JSON.
type CacheRepositoryImpl struct {
	client *redis.Client
	prefix string
}

// NewCacheRepository creates a new cache repository
func NewCacheRepository(client *redis.Client, prefix string) ports.CacheRepository {
	return &CacheRepositoryImpl{client: client, prefix: prefix}
}

func (r *CacheRepositoryImpl) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}

	if err := r.client.Set(ctx, r.prefix+key, data, expiration).Err(); err != nil {
		return fmt.Errorf("set cache: %w", err)
	}

	return nil
}

func (r *CacheRepositoryImpl) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.ErrCacheMiss
		}
		return fmt.Errorf("get cache: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal value: %w", err)
	}

	return nil
}

func (r *CacheRepositoryImpl) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("delete cache: %w", err)
	}

	return nil
}

// NoopCache satisfies CacheRepository when Redis is disabled. Every read misses.
type NoopCache struct{}

func (NoopCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (NoopCache) Get(context.Context, string, interface{}) error { return ports.ErrCacheMiss }

func (NoopCache) Delete(context.Context, string) error { return nil }
