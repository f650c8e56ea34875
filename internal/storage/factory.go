package storage

import (
	"fmt"

	"taskflow/internal/common/errors"
	"taskflow/internal/config"
)

// ConfigFor translates the application configuration into the generic
// config the registered factories understand.
func ConfigFor(cfg *config.Config) (string, GenericConfig, error) {
	switch cfg.DatabaseType {
	case "sqlite":
		return "sqlite", GenericConfig{
			"type": "sqlite",
			"path": cfg.DatabasePath,
		}, nil

	case "postgres", "postgresql":
		return "postgres", GenericConfig{
			"type":     "postgres",
			"host":     cfg.PostgresHost,
			"port":     cfg.PostgresPort,
			"database": cfg.PostgresDB,
			"username": cfg.PostgresUser,
			"password": cfg.PostgresPassword,
			"sslmode":  cfg.PostgresSSLMode,
		}, nil

	default:
		return "", nil, errors.ConfigError(fmt.Sprintf("unsupported database type: %s", cfg.DatabaseType))
	}
}

// NewStorage opens the database selected by cfg through registry
func NewStorage(registry *Registry, cfg *config.Config) (Storage, error) {
	storageType, storageConfig, err := ConfigFor(cfg)
	if err != nil {
		return nil, err
	}
	return registry.Create(storageType, storageConfig)
}
