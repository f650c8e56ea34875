package app

import (
	"context"

	"taskflow/internal/cacheaside"
	"taskflow/internal/common/cache"
	"taskflow/internal/common/logging"
	"taskflow/internal/config"
	"taskflow/internal/redis"
	"taskflow/internal/services"
	"taskflow/internal/storage"
)

// App holds all the application dependencies
type App struct {
	Config       *config.Config
	Storage      storage.Storage
	Cache        cache.Cache
	CacheBackend cache.Type
	RedisClient  *redis.Client
	Services     *services.Services
	Logger       logging.Logger
}

// New creates a new application instance with all dependencies
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logging.GetGlobalLogger().WithFields(logging.Component("app")),
	}

	if err := app.initializeStorage(); err != nil {
		return nil, err
	}

	if err := app.initializeCache(ctx); err != nil {
		app.Cleanup()
		return nil, err
	}

	app.initializeServices()
	return app, nil
}

// initializeServices wraps the selected repositories with the cache and
// builds the entity services over the result.
func (app *App) initializeServices() {
	cached := cacheaside.Wrap(app.Storage, app.Cache, cacheaside.Options{
		TTL:    app.Config.CacheTTLDuration(),
		Policy: cacheaside.Policy(app.Config.CacheFailurePolicy),
		Logger: logging.GetGlobalLogger(),
	}, app.Config.CachedEntityList()...)

	app.Logger.Info("Cache-aside enabled",
		logging.Any("entities", cached.Cached()),
		logging.Duration("ttl", app.Config.CacheTTLDuration()),
		logging.String("failure_policy", app.Config.CacheFailurePolicy),
	)

	app.Storage = cached
	app.Services = services.New(cached, nil)
}

// Cleanup releases all resources
func (app *App) Cleanup() {
	if app.Storage != nil {
		if err := app.Storage.Close(); err != nil {
			app.Logger.Warn("Error closing storage", logging.Err(err))
		}
	}
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			app.Logger.Warn("Error closing redis client", logging.Err(err))
		}
	}
}
