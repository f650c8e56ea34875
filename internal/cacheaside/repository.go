// Package cacheaside serves repository reads through a cache.
//
// A Repository decorates any storage.Repository: reads check the cache
// first and populate it on a miss, writes go to storage and then remove
// the item key and the parent collection key before returning.
package cacheaside

import (
	"context"
	"fmt"
	"time"

	"taskflow/internal/common/cache"
	"taskflow/internal/common/errors"
	"taskflow/internal/common/logging"
	"taskflow/internal/storage"
)

// DefaultTTL applies when Options.TTL is zero
const DefaultTTL = 5 * time.Minute

// Policy decides what a cache failure does to the request
type Policy string

const (
	// PolicyFallback logs cache failures and serves from storage
	PolicyFallback Policy = "fallback"
	// PolicyPropagate returns cache failures to the caller
	PolicyPropagate Policy = "propagate"
)

// Kind names an entity and tells the decorator how to find its keys.
type Kind[T any, P comparable] struct {
	// Name is the item key prefix, e.g. "board"
	Name string
	// ParentKind is the collection key scope, e.g. "workspace"
	ParentKind string
	ID         func(*T) int64
	Parent     func(*T) P
}

// ItemKey returns "{name}:{id}"
func (k Kind[T, P]) ItemKey(id int64) string {
	return fmt.Sprintf("%s:%d", k.Name, id)
}

// CollectionKey returns "{name}s:{parentKind}:{parent}"
func (k Kind[T, P]) CollectionKey(parent P) string {
	return fmt.Sprintf("%ss:%s:%v", k.Name, k.ParentKind, parent)
}

var (
	WorkspaceKind = Kind[storage.Workspace, string]{
		Name:       "workspace",
		ParentKind: "user",
		ID:         func(w *storage.Workspace) int64 { return w.ID },
		Parent:     func(w *storage.Workspace) string { return w.OwnerID },
	}
	BoardKind = Kind[storage.Board, int64]{
		Name:       "board",
		ParentKind: "workspace",
		ID:         func(b *storage.Board) int64 { return b.ID },
		Parent:     func(b *storage.Board) int64 { return b.WorkspaceID },
	}
	ListKind = Kind[storage.List, int64]{
		Name:       "list",
		ParentKind: "board",
		ID:         func(l *storage.List) int64 { return l.ID },
		Parent:     func(l *storage.List) int64 { return l.BoardID },
	}
	CardKind = Kind[storage.Card, int64]{
		Name:       "card",
		ParentKind: "list",
		ID:         func(c *storage.Card) int64 { return c.ID },
		Parent:     func(c *storage.Card) int64 { return c.ListID },
	}
)

// Options configures a Repository
type Options struct {
	TTL    time.Duration
	Policy Policy
	Logger logging.Logger
}

// Repository implements storage.Repository with cache-aside reads
type Repository[T any, P comparable] struct {
	inner  storage.Repository[T, P]
	cache  cache.Cache
	kind   Kind[T, P]
	ttl    time.Duration
	policy Policy
	logger logging.Logger
}

// New wraps inner so that reads go through store
func New[T any, P comparable](inner storage.Repository[T, P], store cache.Cache, kind Kind[T, P], opts Options) *Repository[T, P] {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Policy == "" {
		opts.Policy = PolicyFallback
	}
	if opts.Logger == nil {
		opts.Logger = logging.GetGlobalLogger()
	}

	return &Repository[T, P]{
		inner:  inner,
		cache:  store,
		kind:   kind,
		ttl:    opts.TTL,
		policy: opts.Policy,
		logger: opts.Logger.WithFields(logging.Field{Key: "entity", Value: kind.Name}),
	}
}

// Kind returns the entity description the repository was built with
func (r *Repository[T, P]) Kind() Kind[T, P] {
	return r.kind
}

func (r *Repository[T, P]) ListByParent(ctx context.Context, parent P) ([]*T, error) {
	key := r.kind.CollectionKey(parent)

	var cached []*T
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		if err := r.failure(ctx, "get", key, err); err != nil {
			return nil, err
		}
	} else if found {
		if cached == nil {
			cached = []*T{}
		}
		return cached, nil
	}

	items, err := r.inner.ListByParent(ctx, parent)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, items, r.ttl); err != nil {
		if err := r.failure(ctx, "set", key, err); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *Repository[T, P]) GetByID(ctx context.Context, id int64) (*T, error) {
	key := r.kind.ItemKey(id)

	var cached T
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		if err := r.failure(ctx, "get", key, err); err != nil {
			return nil, err
		}
	} else if found {
		return &cached, nil
	}

	item, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, item, r.ttl); err != nil {
		if err := r.failure(ctx, "set", key, err); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// Create stores entity and drops its parent's collection
func (r *Repository[T, P]) Create(ctx context.Context, entity *T) error {
	if err := r.inner.Create(ctx, entity); err != nil {
		return err
	}
	return r.invalidate(ctx, r.kind.CollectionKey(r.kind.Parent(entity)))
}

// Update stores entity and drops its item key and the collections of both
// the previous and the new parent.
func (r *Repository[T, P]) Update(ctx context.Context, entity *T) error {
	id := r.kind.ID(entity)
	previous, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.inner.Update(ctx, entity); err != nil {
		return err
	}

	keys := []string{r.kind.ItemKey(id), r.kind.CollectionKey(r.kind.Parent(entity))}
	if oldParent := r.kind.Parent(previous); oldParent != r.kind.Parent(entity) {
		keys = append(keys, r.kind.CollectionKey(oldParent))
	}
	return r.invalidate(ctx, keys...)
}

// Delete removes the row when it exists. A missing id is not an error and
// touches neither storage nor the cache.
func (r *Repository[T, P]) Delete(ctx context.Context, id int64) error {
	existing, err := r.inner.GetByID(ctx, id)
	if err != nil {
		if errors.IsType(err, errors.ErrTypeNotFound) {
			return nil
		}
		return err
	}

	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	return r.invalidate(ctx, r.kind.ItemKey(id), r.kind.CollectionKey(r.kind.Parent(existing)))
}

// invalidate removes every key even when one of them fails
func (r *Repository[T, P]) invalidate(ctx context.Context, keys ...string) error {
	var first error
	for _, key := range keys {
		if err := r.cache.Delete(ctx, key); err != nil {
			if ferr := r.failure(ctx, "delete", key, err); ferr != nil && first == nil {
				first = ferr
			}
		}
	}
	return first
}

// failure applies the policy. It returns nil when the request may go on.
func (r *Repository[T, P]) failure(ctx context.Context, op, key string, err error) error {
	if r.policy == PolicyPropagate {
		if errors.IsType(err, errors.ErrTypeCache) {
			return err
		}
		return errors.CacheError(op, err).WithContext("key", key)
	}

	r.logger.WithContext(ctx).Warn("Cache operation failed, continuing without cache",
		logging.Field{Key: "operation", Value: op},
		logging.Field{Key: "key", Value: key},
		logging.Err(err),
	)
	return nil
}

var (
	_ storage.WorkspaceRepository = (*Repository[storage.Workspace, string])(nil)
	_ storage.BoardRepository     = (*Repository[storage.Board, int64])(nil)
	_ storage.ListRepository      = (*Repository[storage.List, int64])(nil)
	_ storage.CardRepository      = (*Repository[storage.Card, int64])(nil)
)
