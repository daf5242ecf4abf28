package cart

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by a KV when the key has never been written.
var ErrNotFound = errors.New("cart: key not found")

// KV is the one-slot-per-session persistence contract the store writes
// through. Production uses Redis; tests use an in-memory map.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type redisKV struct {
	client *redis.Client
}

// NewRedisKV adapts a Redis client to the KV contract.
func NewRedisKV(client *redis.Client) KV {
	return redisKV{client: client}
}

func (r redisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return val, err
}

func (r redisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}
