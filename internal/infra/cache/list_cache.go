package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ListCache guarda o JSON das listagens por entidade. A invalidação é sempre
// por delete: qualquer mutação derruba a chave inteira.
type ListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *ListCache {
	return &ListCache{rdb: rdb, ttl: ttl}
}

// Get retorna (false, nil) quando a chave não existe.
func (c *ListCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	str, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(str), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *ListCache) Set(ctx context.Context, key string, value interface{}) error {
	str, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, key, str, c.ttl).Err()
}

func (c *ListCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
