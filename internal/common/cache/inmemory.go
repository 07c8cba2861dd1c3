package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const defaultCleanupInterval = time.Minute

// InMemoryClient keeps values inside the process, it is used for small lookup
// tables that rarely change.
type InMemoryClient[T any] struct {
	store *gocache.Cache
}

func NewInMemoryClient[T any](defaultTTL time.Duration) *InMemoryClient[T] {
	return &InMemoryClient[T]{
		store: gocache.New(defaultTTL, defaultCleanupInterval),
	}
}

func (m *InMemoryClient[T]) Get(ctx context.Context, key string) (result T, err error) {
	val, found := m.store.Get(key)
	if !found {
		return result, ErrNotExists
	}

	result, ok := val.(T)
	if !ok {
		return result, ErrInvalidType
	}

	return result, nil
}

func (m *InMemoryClient[T]) Set(ctx context.Context, key string, object T, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.store.Set(key, object, ttl)
	return nil
}

func (m *InMemoryClient[T]) Delete(ctx context.Context, key string) error {
	m.store.Delete(key)
	return nil
}

func (m *InMemoryClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error) {
	return getOrSet[T](ctx, m, opts)
}

// Flush drops every entry.
func (m *InMemoryClient[T]) Flush() {
	m.store.Flush()
}
