package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

type lruEntry[T any] struct {
	value     T
	expiresAt time.Time
}

type lruCache[T any] struct {
	mu             sync.Mutex
	entries        *lru.Cache[string, lruEntry[T]]
	defaultOptions []Option
	now            func() time.Time
}

// CreateLRUCache is the in-process Cache used when no redis is configured.
func CreateLRUCache[T any](size int, defaultOpts ...Option) (Cache[T], error) {
	entries, err := lru.New[string, lruEntry[T]](size)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create lru cache")
	}
	return &lruCache[T]{
		entries:        entries,
		defaultOptions: defaultOpts,
		now:            time.Now,
	}, nil
}

func (c *lruCache[T]) Set(_ context.Context, key string, value T, opts ...Option) error {
	entry := lruEntry[T]{value: value}
	if ttl := ttlFromOptions(c.defaultOptions, opts); ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Add(key, entry)
	return nil
}

func (c *lruCache[T]) Get(_ context.Context, key string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries.Get(key)
	if !ok {
		return nil, ErrMiss
	}
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		c.entries.Remove(key)
		return nil, ErrMiss
	}
	value := entry.value
	return &value, nil
}

func (c *lruCache[T]) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Remove(key)
	return nil
}
