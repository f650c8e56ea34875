package handlers

import (
	"taskflow/internal/services"
	"taskflow/internal/storage"
)

// Handlers serves the TaskFlow REST API
type Handlers struct {
	services     *services.Services
	storage      storage.Storage
	cacheBackend string
}

// New creates the handlers. cacheBackend names the cache chosen at startup
// and is reported by the health check.
func New(svc *services.Services, store storage.Storage, cacheBackend string) *Handlers {
	return &Handlers{
		services:     svc,
		storage:      store,
		cacheBackend: cacheBackend,
	}
}
