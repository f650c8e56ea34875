package cache

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"taskflow/internal/circuitbreaker"
	"taskflow/internal/common/errors"
)

// Type represents the cache backend type
type Type string

const (
	TypeLocal Type = "local"
	TypeRedis Type = "redis"
)

// Config holds cache configuration
type Config struct {
	Type        Type                             `json:"type"`
	KeyPrefix   string                           `json:"key_prefix,omitempty"`
	RedisClient *redis.Client                    `json:"-"`
	Breaker     *circuitbreaker.GoBreakerAdapter `json:"-"`
}

// New creates a cache instance based on configuration
func New(config Config) (Cache, error) {
	switch config.Type {
	case TypeLocal:
		return NewLocalCache(), nil

	case TypeRedis:
		if config.RedisClient == nil {
			return nil, errors.ConfigError("redis client required for redis cache")
		}
		var opts []RedisOption
		if config.Breaker != nil {
			opts = append(opts, WithBreaker(config.Breaker))
		}
		return NewRedisCache(config.RedisClient, config.KeyPrefix, opts...), nil

	default:
		return nil, errors.ConfigError(fmt.Sprintf("unknown cache type: %s", config.Type))
	}
}
