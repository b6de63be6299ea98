package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by a Redis server, for deployments where
// several instances should share one memoization pool.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

// NewRedisStore connects to the Redis server at addr with the given entry
// lifetime.
func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStore{
		client: rdb,
		ctx:    context.Background(),
		ttl:    ttl,
	}
}

// Get returns the value for key if Redis holds an unexpired entry.
func (s *RedisStore) Get(key string) (string, bool) {
	val, err := s.client.Get(s.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores value under key; Redis handles expiry via the TTL.
func (s *RedisStore) Set(key, value string) error {
	return s.client.Set(s.ctx, key, value, s.ttl).Err()
}
