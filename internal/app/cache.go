package app

import (
	"context"
	"strconv"

	"taskflow/internal/circuitbreaker"
	"taskflow/internal/common/cache"
	"taskflow/internal/common/logging"
	"taskflow/internal/redis"
)

// redisConfig converts the string settings; Validate has already checked them
func (app *App) redisConfig() *redis.Config {
	db, _ := strconv.Atoi(app.Config.RedisDB)
	poolSize, _ := strconv.Atoi(app.Config.RedisPoolSize)

	return &redis.Config{
		URL:      app.Config.RedisURL,
		Address:  app.Config.RedisAddress,
		Password: app.Config.RedisPassword,
		DB:       db,
		PoolSize: poolSize,
	}
}

// initializeCache probes Redis once. A connected probe selects the Redis
// cache; anything else selects the in-process cache and startup goes on.
func (app *App) initializeCache(ctx context.Context) error {
	result := redis.Probe(ctx, app.redisConfig())
	if !result.Connected() {
		app.Logger.Info("Cache: in-process",
			logging.String("probe", string(result.Status)),
			logging.String("reason", result.Reason),
		)
		return app.useCache(cache.Config{Type: cache.TypeLocal})
	}

	app.RedisClient = result.Client
	cfg := cache.Config{
		Type:        cache.TypeRedis,
		KeyPrefix:   app.Config.CacheKeyPrefix,
		RedisClient: result.Client.Redis(),
	}
	if app.Config.CacheBreakerEnabled {
		cfg.Breaker = circuitbreaker.NewGoBreaker("redis-cache", circuitbreaker.CacheConfig, app.Logger)
	}

	app.Logger.Info("Cache: Redis",
		logging.String("address", result.Client.Addr()),
		logging.String("key_prefix", app.Config.CacheKeyPrefix),
		logging.Bool("breaker", cfg.Breaker != nil),
	)
	return app.useCache(cfg)
}

func (app *App) useCache(cfg cache.Config) error {
	c, err := cache.New(cfg)
	if err != nil {
		return err
	}
	app.Cache = c
	app.CacheBackend = cfg.Type
	return nil
}
