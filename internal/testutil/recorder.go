package testutil

import (
	"context"
	"sync"
	"time"

	"taskflow/internal/common/cache"
)

// RecordingCache wraps a cache and remembers which keys were touched
type RecordingCache struct {
	inner cache.Cache

	mu      sync.Mutex
	hits    []string
	misses  []string
	sets    []string
	deletes []string
}

func NewRecordingCache(inner cache.Cache) *RecordingCache {
	return &RecordingCache{inner: inner}
}

func (r *RecordingCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	found, err := r.inner.Get(ctx, key, dest)
	if err == nil {
		r.mu.Lock()
		if found {
			r.hits = append(r.hits, key)
		} else {
			r.misses = append(r.misses, key)
		}
		r.mu.Unlock()
	}
	return found, err
}

func (r *RecordingCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	r.mu.Lock()
	r.sets = append(r.sets, key)
	r.mu.Unlock()
	return r.inner.Set(ctx, key, value, ttl)
}

func (r *RecordingCache) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	r.deletes = append(r.deletes, key)
	r.mu.Unlock()
	return r.inner.Delete(ctx, key)
}

func (r *RecordingCache) Exists(ctx context.Context, key string) (bool, error) {
	return r.inner.Exists(ctx, key)
}

func (r *RecordingCache) Hits() []string    { return r.snapshot(&r.hits) }
func (r *RecordingCache) Misses() []string  { return r.snapshot(&r.misses) }
func (r *RecordingCache) Sets() []string    { return r.snapshot(&r.sets) }
func (r *RecordingCache) Deletes() []string { return r.snapshot(&r.deletes) }

// Reset forgets everything recorded so far
func (r *RecordingCache) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hits, r.misses, r.sets, r.deletes = nil, nil, nil, nil
}

func (r *RecordingCache) snapshot(keys *[]string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), (*keys)...)
}

// FailingCache returns Err from every operation
type FailingCache struct {
	Err error
}

func (f FailingCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, f.Err
}

func (f FailingCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return f.Err
}

func (f FailingCache) Delete(ctx context.Context, key string) error {
	return f.Err
}

func (f FailingCache) Exists(ctx context.Context, key string) (bool, error) {
	return false, f.Err
}
