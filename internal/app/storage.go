package app

import (
	"taskflow/internal/common/logging"
	"taskflow/internal/storage"
	"taskflow/internal/storage/postgres"
	"taskflow/internal/storage/sqlite"
)

// newRegistry registers every database driver the service can run on
func newRegistry() *storage.Registry {
	registry := storage.NewRegistry()
	registry.Register("sqlite", &sqlite.Factory{})
	registry.Register("postgres", &postgres.Factory{})
	return registry
}

func (app *App) initializeStorage() error {
	switch app.Config.DatabaseType {
	case "postgres", "postgresql":
		app.Logger.Info("Database: PostgreSQL",
			logging.String("host", app.Config.PostgresHost),
			logging.String("port", app.Config.PostgresPort),
			logging.String("database", app.Config.PostgresDB),
		)
	default:
		app.Logger.Info("Database: SQLite", logging.String("path", app.Config.DatabasePath))
	}

	store, err := storage.NewStorage(newRegistry(), app.Config)
	if err != nil {
		return err
	}

	app.Storage = store
	return nil
}
