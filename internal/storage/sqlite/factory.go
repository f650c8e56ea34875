package sqlite

import (
	"fmt"

	"taskflow/internal/storage"
)

type Factory struct{}

// Create accepts either a *Config or a storage.GenericConfig carrying "path".
func (f *Factory) Create(config storage.StorageConfig) (storage.Storage, error) {
	var sqliteConfig *Config
	switch c := config.(type) {
	case *Config:
		sqliteConfig = c
	case storage.GenericConfig:
		sqliteConfig = &Config{DatabasePath: c.String("path")}
	default:
		return nil, fmt.Errorf("invalid config type for SQLite storage")
	}

	store, err := NewAdapter(sqliteConfig)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (f *Factory) GetType() string {
	return "sqlite"
}
