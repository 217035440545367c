// Package cache provides the bounded in-process caches used by suggestion
// providers and preference sessions.
package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"
)

// LRU is a bounded string-keyed cache. Concurrent loads of the same key
// are collapsed into one call.
type LRU[V any] struct {
	name       string
	items      *lru.Cache[string, V]
	group      singleflight.Group
	cacheTotal *prometheus.CounterVec
}

// New creates a cache holding at most capacity entries.
// cacheTotal is a counter vec with labels "cache" and "result" ("hit"/"miss"), may be nil.
func New[V any](name string, capacity int, cacheTotal *prometheus.CounterVec) (*LRU[V], error) {
	items, err := lru.New[string, V](capacity)
	if err != nil {
		return nil, fmt.Errorf("create %s cache: %w", name, err)
	}
	return &LRU[V]{name: name, items: items, cacheTotal: cacheTotal}, nil
}

// Get returns the cached value for key.
func (c *LRU[V]) Get(key string) (V, bool) {
	v, ok := c.items.Get(key)
	if ok {
		c.inc("hit")
	} else {
		c.inc("miss")
	}
	return v, ok
}

// Peek returns the cached value without touching recency or counters.
func (c *LRU[V]) Peek(key string) (V, bool) {
	return c.items.Peek(key)
}

// Add stores a value, evicting the least recently used entry when full.
func (c *LRU[V]) Add(key string, v V) {
	c.items.Add(key, v)
}

// Remove drops key.
func (c *LRU[V]) Remove(key string) {
	c.items.Remove(key)
}

// Len returns the number of cached entries.
func (c *LRU[V]) Len() int {
	return c.items.Len()
}

// Purge empties the cache.
func (c *LRU[V]) Purge() {
	c.items.Purge()
}

// GetOrLoad returns the cached value or calls load once for all concurrent
// callers asking for the same key. Failed loads are not cached.
func (c *LRU[V]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		if v, ok := c.items.Peek(key); ok {
			return v, nil
		}
		v, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return v, err
		}
		c.items.Add(key, v)
		return v, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			var zero V
			return zero, res.Err
		}
		return res.Val.(V), nil
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

func (c *LRU[V]) inc(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(c.name, result).Inc()
	}
}
