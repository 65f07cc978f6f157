package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskify/core/internal/adapters/repository"
	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/ports"
)

func setupCache(t *testing.T) (ports.CacheRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return repository.NewCacheRepository(client, "taskify:"), mr
}

func TestCacheRepository_SetGet(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()
	user := entities.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "secret"}

	require.NoError(t, cache.Set(ctx, "user:1", user, time.Minute))

	var got entities.User
	require.NoError(t, cache.Get(ctx, "user:1", &got))

	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Empty(t, got.PasswordHash, "password hash is never serialized")
	assert.True(t, mr.Exists("taskify:user:1"))
}

func TestCacheRepository_Miss(t *testing.T) {
	cache, _ := setupCache(t)

	var got entities.User
	err := cache.Get(context.Background(), "user:absent", &got)

	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestCacheRepository_Expiry(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", time.Second))
	mr.FastForward(2 * time.Second)

	var got string
	assert.ErrorIs(t, cache.Get(ctx, "k", &got), ports.ErrCacheMiss)
}

func TestCacheRepository_Delete(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, cache.Delete(ctx, "k"))

	var got string
	assert.ErrorIs(t, cache.Get(ctx, "k", &got), ports.ErrCacheMiss)
}

func TestNoopCache_AlwaysMisses(t *testing.T) {
	var cache ports.CacheRepository = repository.NoopCache{}
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))

	var got string
	assert.ErrorIs(t, cache.Get(ctx, "k", &got), ports.ErrCacheMiss)
}
