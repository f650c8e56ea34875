// Package cache provides a key/value cache interface with two backends.
//
// This package wraps established caching libraries:
//   - github.com/patrickmn/go-cache for local in-memory caching
//   - github.com/go-redis/redis/v8 for distributed Redis caching
//
// Both backends store JSON and honour per-entry TTLs.
//
// 1. Local Cache - in-process map using go-cache
//   - No background cleanup; expired entries are removed on lookup
//   - Private to one process
//
// 2. Redis Cache - shared cache using go-redis
//   - TTL maps to native Redis expiry
//   - Optional key prefix
//   - Optional circuit breaker so an unreachable server fails fast
//
// Usage:
//
//	// Local cache
//	c := cache.NewLocalCache()
//	c.Set(ctx, "board:7", board, 5*time.Minute)
//	var b storage.Board
//	found, err := c.Get(ctx, "board:7", &b)
//
//	// Redis cache
//	c := cache.NewRedisCache(redisClient, "", cache.WithBreaker(cb))
//
//	// Using factory
//	c, err := cache.New(cache.Config{Type: cache.TypeRedis, RedisClient: redisClient})
package cache
