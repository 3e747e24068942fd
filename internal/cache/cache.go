// Package cache provides a bounded in-process cache with per-entry TTL.
//
// Expiry is lazy: an entry is dropped when a read finds it stale, never by a
// background sweep. When the cache is full, inserting a new key evicts the
// oldest inserted entry (insertion order, not recency of use). All operations
// are serialised by a single mutex.
package cache

import (
	"container/list"
	"strings"
	"sync"
	"time"
)

// DefaultCapacity is the entry ceiling used when no capacity is configured.
const DefaultCapacity = 1000

// Observer receives cache events. Implementations must be safe for
// concurrent use and must not call back into the cache.
type Observer interface {
	CacheHit()
	CacheMiss()
	CacheEviction()
}

type nopObserver struct{}

func (nopObserver) CacheHit()      {}
func (nopObserver) CacheMiss()     {}
func (nopObserver) CacheEviction() {}

type entry struct {
	key     string
	value   any
	expires time.Time
	elem    *list.Element
}

// TTLCache is a bounded key-value cache with per-entry expiry.
type TTLCache struct {
	mu       sync.Mutex
	items    map[string]*entry
	order    *list.List // front = oldest insertion
	capacity int
	now      func() time.Time
	observer Observer
}

// Option configures a TTLCache.
type Option func(*TTLCache)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *TTLCache) { c.now = now }
}

// WithCapacity overrides the entry ceiling. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(c *TTLCache) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithObserver installs hit/miss/eviction instrumentation.
func WithObserver(o Observer) Option {
	return func(c *TTLCache) {
		if o != nil {
			c.observer = o
		}
	}
}

// New creates an empty TTLCache.
func New(opts ...Option) *TTLCache {
	c := &TTLCache{
		items:    make(map[string]*entry),
		order:    list.New(),
		capacity: DefaultCapacity,
		now:      time.Now,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value stored under key. An expired entry is removed and
// reported as absent.
func (c *TTLCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		c.observer.CacheMiss()
		return nil, false
	}
	if c.now().After(e.expires) {
		c.removeLocked(e)
		c.observer.CacheMiss()
		return nil, false
	}
	c.observer.CacheHit()
	return e.value, true
}

// Set stores value under key until now+ttl. Overwriting an existing key keeps
// its insertion position; inserting a new key into a full cache evicts the
// oldest inserted entry first.
func (c *TTLCache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.now().Add(ttl)
	if e, ok := c.items[key]; ok {
		e.value = value
		e.expires = expires
		return
	}

	if len(c.items) >= c.capacity {
		if oldest := c.order.Front(); oldest != nil {
			c.removeLocked(oldest.Value.(*entry))
			c.observer.CacheEviction()
		}
	}

	e := &entry{key: key, value: value, expires: expires}
	e.elem = c.order.PushBack(e)
	c.items[key] = e
}

// Clear removes every key containing pattern as a substring. An empty
// pattern clears the whole cache. It returns the number of removed entries.
func (c *TTLCache) Clear(pattern string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pattern == "" {
		n := len(c.items)
		c.items = make(map[string]*entry)
		c.order.Init()
		return n
	}

	removed := 0
	for key, e := range c.items {
		if strings.Contains(key, pattern) {
			c.removeLocked(e)
			removed++
		}
	}
	return removed
}

// ClearAll removes every entry.
func (c *TTLCache) ClearAll() int {
	return c.Clear("")
}

// Len returns the number of stored entries, including expired entries that
// have not been read since they expired.
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *TTLCache) removeLocked(e *entry) {
	c.order.Remove(e.elem)
	delete(c.items, e.key)
}
