package storage

import (
	"context"
)

// Repository is the persistence contract shared by every board-tree entity.
// P is the type of the parent key the entity is listed by.
//
// GetByID and Update return a not_found AppError when no row has the id.
// Create assigns ID, CreatedAt and UpdatedAt on the passed entity.
type Repository[T any, P comparable] interface {
	ListByParent(ctx context.Context, parent P) ([]*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) error
}

// Concrete repositories for each entity
type (
	WorkspaceRepository = Repository[Workspace, string]
	BoardRepository     = Repository[Board, int64]
	ListRepository      = Repository[List, int64]
	CardRepository      = Repository[Card, int64]
)

// UserRepository stores the users the gateway authenticates.
type UserRepository interface {
	// Create returns a conflict AppError when the email is taken.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// Storage is an open database exposing one repository per entity.
type Storage interface {
	Users() UserRepository
	Workspaces() WorkspaceRepository
	Boards() BoardRepository
	Lists() ListRepository
	Cards() CardRepository

	Health(ctx context.Context) error
	Close() error
	Type() string
}

type StorageConfig interface {
	Validate() error
	GetType() string
	GetConnectionString() string
}

type StorageFactory interface {
	Create(config StorageConfig) (Storage, error)
	GetType() string
}

// GenericConfig is a simple map-based implementation of StorageConfig
type GenericConfig map[string]interface{}

func (gc GenericConfig) Validate() error {
	return nil
}

func (gc GenericConfig) GetType() string {
	if t, ok := gc["type"].(string); ok {
		return t
	}
	return "unknown"
}

func (gc GenericConfig) GetConnectionString() string {
	if cs, ok := gc["connection_string"].(string); ok {
		return cs
	}
	return ""
}

// String returns the value stored under key, or "" when absent
func (gc GenericConfig) String(key string) string {
	if v, ok := gc[key].(string); ok {
		return v
	}
	return ""
}
