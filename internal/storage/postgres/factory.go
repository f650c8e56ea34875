package postgres

import (
	"fmt"
	"strconv"

	"taskflow/internal/storage"
)

type Factory struct{}

// Create accepts either a *Config or a storage.GenericConfig with
// host, port, database, username, password and sslmode entries.
func (f *Factory) Create(config storage.StorageConfig) (storage.Storage, error) {
	var pgConfig *Config
	switch c := config.(type) {
	case *Config:
		pgConfig = c
	case storage.GenericConfig:
		var err error
		if pgConfig, err = configFromGeneric(c); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid config type for PostgreSQL storage")
	}

	store, err := NewAdapter(pgConfig)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (f *Factory) GetType() string {
	return "postgres"
}

func configFromGeneric(gc storage.GenericConfig) (*Config, error) {
	if cs := gc.GetConnectionString(); cs != "" {
		return NewConfigFromURL(cs)
	}

	config := &Config{
		Host:     gc.String("host"),
		Database: gc.String("database"),
		Username: gc.String("username"),
		Password: gc.String("password"),
		SSLMode:  gc.String("sslmode"),
	}
	if p := gc.String("port"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid PostgreSQL port: %s", p)
		}
		config.Port = port
	}
	return config, nil
}
