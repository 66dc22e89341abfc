package store

import (
	"context"
	"errors"
	"time"

	"cpq_quote/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

type cmdable interface {
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Del(context.Context, ...string) *redis.IntCmd
}

// RedisBackend stores quote state in Redis with a sliding TTL refreshed on every write.
type RedisBackend struct {
	store cmdable
	ttl   time.Duration
}

var _ interfaces.IKeyValueBackend = (*RedisBackend)(nil)

func NewRedisBackend(client *redis.Client, ttl time.Duration) *RedisBackend {
	return &RedisBackend{store: client, ttl: ttl}
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := b.store.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (b *RedisBackend) Put(ctx context.Context, key string, value []byte) error {
	return b.store.Set(ctx, key, value, b.ttl).Err()
}

func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	return b.store.Del(ctx, key).Err()
}
