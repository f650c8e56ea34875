package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	gocache "github.com/patrickmn/go-cache"
	"taskflow/internal/circuitbreaker"
	"taskflow/internal/common/errors"
)

// Cache defines the interface for cache operations.
// Values are stored JSON-encoded; Get decodes into dest.
type Cache interface {
	// Get reports whether key was present and, if so, decodes it into dest.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set stores value under key. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Delete removes key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// LocalCache wraps patrickmn/go-cache for in-memory caching.
// There is no janitor goroutine: expired entries are purged when a lookup finds them.
type LocalCache struct {
	cache *gocache.Cache
}

// NewLocalCache creates a new local cache instance
func NewLocalCache() *LocalCache {
	return &LocalCache{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a value from the local cache
func (l *LocalCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, found := l.cache.Get(key)
	if !found {
		// go-cache hides expired items but keeps them in the map
		l.cache.Delete(key)
		return false, nil
	}

	data, ok := raw.([]byte)
	if !ok {
		l.cache.Delete(key)
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, errors.CacheError("decode", err).WithContext("key", key)
	}
	return true, nil
}

// Set stores a value in the local cache
func (l *LocalCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.CacheError("encode", err).WithContext("key", key)
	}
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	l.cache.Set(key, data, ttl)
	return nil
}

// Delete removes a value from the local cache
func (l *LocalCache) Delete(ctx context.Context, key string) error {
	l.cache.Delete(key)
	return nil
}

// Exists checks if a key exists
func (l *LocalCache) Exists(ctx context.Context, key string) (bool, error) {
	if _, found := l.cache.Get(key); found {
		return true, nil
	}
	l.cache.Delete(key)
	return false, nil
}

// ItemCount returns the number of entries held, expired ones included.
func (l *LocalCache) ItemCount() int {
	return l.cache.ItemCount()
}

// RedisCache wraps go-redis for distributed caching
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
	breaker   *circuitbreaker.GoBreakerAdapter
}

// RedisOption configures a RedisCache
type RedisOption func(*RedisCache)

// WithBreaker routes every Redis call through cb.
func WithBreaker(cb *circuitbreaker.GoBreakerAdapter) RedisOption {
	return func(r *RedisCache) {
		r.breaker = cb
	}
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(client *redis.Client, keyPrefix string, opts ...RedisOption) *RedisCache {
	r := &RedisCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RedisCache) do(ctx context.Context, fn func() error) error {
	if r.breaker == nil {
		return fn()
	}
	return r.breaker.Execute(ctx, fn)
}

// Get retrieves a value from Redis
func (r *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	var data []byte
	found := false

	err := r.do(ctx, func() error {
		val, err := r.client.Get(ctx, r.keyPrefix+key).Bytes()
		if err == redis.Nil {
			return nil
		}
		if err != nil {
			return err
		}
		data, found = val, true
		return nil
	})
	if err != nil {
		return false, errors.CacheError("get", err).WithContext("key", key)
	}
	if !found {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, errors.CacheError("decode", err).WithContext("key", key)
	}
	return true, nil
}

// Set stores a value in Redis with ttl as the native expiry
func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.CacheError("encode", err).WithContext("key", key)
	}
	if ttl < 0 {
		ttl = 0
	}

	err = r.do(ctx, func() error {
		return r.client.Set(ctx, r.keyPrefix+key, data, ttl).Err()
	})
	if err != nil {
		return errors.CacheError("set", err).WithContext("key", key)
	}
	return nil
}

// Delete removes a value from Redis
func (r *RedisCache) Delete(ctx context.Context, key string) error {
	err := r.do(ctx, func() error {
		return r.client.Del(ctx, r.keyPrefix+key).Err()
	})
	if err != nil {
		return errors.CacheError("delete", err).WithContext("key", key)
	}
	return nil
}

// Exists checks if a key exists
func (r *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	var n int64
	err := r.do(ctx, func() error {
		var err error
		n, err = r.client.Exists(ctx, r.keyPrefix+key).Result()
		return err
	})
	if err != nil {
		return false, errors.CacheError("exists", err).WithContext("key", key)
	}
	return n > 0, nil
}
