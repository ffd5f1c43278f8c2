// Package cache provides the conversion result cache for the Sankhya web
// service. Conversions are pure, so a cached entry never goes stale; the
// expiration only bounds memory for the long tail of one-off inputs.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResultCache caches conversion results keyed by language, mode and input.
type ResultCache interface {
	// Get returns the cached words and whether the entry was present.
	Get(ctx context.Context, lang, mode, input string) (string, bool, error)

	// Set stores the words for the given key.
	Set(ctx context.Context, lang, mode, input, words string) error
}

const DefaultExpiration = 24 * time.Hour

// RedisResultCache is a Redis implementation of ResultCache.
type RedisResultCache struct {
	Client     *redis.Client
	Expiration time.Duration
}

// NewRedisResultCache connects a result cache to the Redis server at addr.
// If expiration is zero, DefaultExpiration is used.
func NewRedisResultCache(addr, password string, db int, expiration time.Duration) *RedisResultCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if expiration == 0 {
		expiration = DefaultExpiration
	}
	return &RedisResultCache{Client: rdb, Expiration: expiration}
}

// key builds the cache key. Mode is part of the key because the same input
// converts differently under an override ("123" vs one-two-three).
func key(lang, mode, input string) string {
	return fmt.Sprintf("sankhya:%s:%s:%s", lang, mode, input)
}

func (c *RedisResultCache) Get(ctx context.Context, lang, mode, input string) (string, bool, error) {
	words, err := c.Client.Get(ctx, key(lang, mode, input)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return words, true, nil
}

func (c *RedisResultCache) Set(ctx context.Context, lang, mode, input, words string) error {
	return c.Client.Set(ctx, key(lang, mode, input), words, c.Expiration).Err()
}
