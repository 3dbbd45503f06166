package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Cache is a thin Redis wrapper for caching user documents by email.
// A nil *Cache is valid and behaves as a permanent miss, so the store
// works unchanged when Redis is not configured.
type Cache struct {
	db  *redis.Client
	ttl time.Duration
}

func NewCache(ctx context.Context, addr string, ttl time.Duration) (*Cache, error) {
	db := redis.NewClient(&redis.Options{Addr: addr})
	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Cache{db: db, ttl: ttl}, nil
}

// Get unmarshals the cached value for key into result. The first return
// value reports whether the key was present.
func (c *Cache) Get(ctx context.Context, key string, result any) (bool, error) {
	if c == nil {
		return false, nil
	}
	val, err := c.db.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: %w", err)
	}
	// BSON keeps bson-only fields (the password digest has no JSON tag)
	// intact across the cache round trip.
	if err := bson.Unmarshal([]byte(val), result); err != nil {
		return false, fmt.Errorf("cache: %w", err)
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil
	}
	data, err := bson.Marshal(value)
	if err != nil {
		return err
	}
	return c.db.Set(ctx, key, data, c.ttl).Err()
}

func (c *Cache) Invalidate(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	return c.db.Del(ctx, key).Err()
}
