package cache

import (
	"container/list"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache is a string-keyed cache of immutable values.
type Cache[V any] interface {
	// Get returns the cached value or ErrNotFound.
	Get(key string) (V, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value V)

	// Delete removes key. Deleting a missing key is a no-op.
	Delete(key string)

	// Len returns the number of cached entries.
	Len() int

	// Clear removes all entries.
	Clear()
}

type entry[V any] struct {
	key   string
	value V
}

// LRU is an in-memory cache with least-recently-used eviction.
//
// A hash map gives O(1) lookups and a doubly-linked list keeps recency order:
// most recently used entries are at the front.
type LRU[V any] struct {
	items    map[string]*list.Element
	eviction *list.List
	opts     *options
	group    singleflight.Group
	mu       sync.Mutex
}

var _ Cache[any] = (*LRU[any])(nil)

// NewLRU creates an LRU cache.
func NewLRU[V any](opts ...Option) *LRU[V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &LRU[V]{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		opts:     o,
	}
}

// Get returns the cached value and marks it as recently used.
func (c *LRU[V]) Get(key string) (V, error) {
	v, ok := c.lookup(key)
	if !ok {
		return v, ErrNotFound
	}
	return v, nil
}

func (c *LRU[V]) lookup(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.eviction.MoveToFront(elem)
	return elem.Value.(*entry[V]).value, true
}

// Set stores value under key.
func (c *LRU[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[V]).value = value
		c.eviction.MoveToFront(elem)
		return
	}

	if c.opts.maxEntries > 0 && len(c.items) >= c.opts.maxEntries {
		if oldest := c.eviction.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	c.items[key] = c.eviction.PushFront(&entry[V]{key: key, value: value})
}

// Delete removes key.
func (c *LRU[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
}

// Len returns the number of cached entries.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes all entries.
func (c *LRU[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.eviction.Init()
}

// GetOrSet returns the cached value for key or computes, caches and returns it.
// Concurrent misses for the same key share a single call to fn.
func (c *LRU[V]) GetOrSet(key string, fn func() (V, error)) (V, error) {
	if v, err := c.Get(key); err == nil {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A previous flight may have filled the entry after our miss.
		if val, ok := c.lookup(key); ok {
			return val, nil
		}
		val, err := fn()
		if err != nil {
			return nil, err
		}
		c.Set(key, val)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, errors.Join(ErrCompute, err)
	}
	return v.(V), nil
}

// removeElement removes elem. Caller must hold the mutex.
func (c *LRU[V]) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*entry[V]).key)
}
