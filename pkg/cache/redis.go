package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const answerKeyPrefix = "openai_response_"

type redisCache struct {
	client *redis.Client
}

// NewRedisCache creates a cache backed by the Redis server at addr.
// The connection is established lazily on first use.
func NewRedisCache(addr string) *redisCache {
	return &redisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// DeriveKey maps a question to its cache key. Hashing keeps keys bounded
// regardless of question length and keeps raw user text out of the key space.
func (c *redisCache) DeriveKey(question string) string {
	sum := sha256.Sum256([]byte(question))
	return answerKeyPrefix + hex.EncodeToString(sum[:])
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting key %q: %w", key, err)
	}
	return value, true, nil
}

func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("setting key %q: %w", key, err)
	}
	return nil
}
