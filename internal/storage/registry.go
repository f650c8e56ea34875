package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"taskflow/internal/common/errors"
)

// Registry maps a database type ("sqlite", "postgres") to the factory that
// opens it. Drivers are registered at startup by the app package.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]StorageFactory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]StorageFactory)}
}

// Register adds or replaces the factory for storageType
func (r *Registry) Register(storageType string, factory StorageFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[storageType] = factory
}

// Create opens a store with the factory registered for storageType
func (r *Registry) Create(storageType string, config StorageConfig) (Storage, error) {
	r.mu.RLock()
	factory, ok := r.factories[storageType]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.ConfigError(fmt.Sprintf("storage type %s not registered (available: %s)",
			storageType, strings.Join(r.GetAvailableTypes(), ", ")))
	}
	return factory.Create(config)
}

// GetAvailableTypes returns the registered types in sorted order
func (r *Registry) GetAvailableTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.factories))
	for storageType := range r.factories {
		types = append(types, storageType)
	}
	sort.Strings(types)
	return types
}

func (r *Registry) IsRegistered(storageType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[storageType]
	return ok
}
