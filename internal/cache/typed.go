package cache

import "time"

// Typed is a type-safe view over a shared TTLCache. All views share the
// underlying capacity and lock; keys should carry a per-view prefix.
type Typed[V any] struct {
	c   *TTLCache
	ttl time.Duration
}

// NewTyped returns a view that stores values of type V with the given TTL.
func NewTyped[V any](c *TTLCache, ttl time.Duration) Typed[V] {
	return Typed[V]{c: c, ttl: ttl}
}

// Get returns the cached value. A stored value of another type is treated
// as a miss.
func (t Typed[V]) Get(key string) (V, bool) {
	var zero V
	v, ok := t.c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(V)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Set stores v with the view's TTL.
func (t Typed[V]) Set(key string, v V) {
	t.c.Set(key, v, t.ttl)
}

// GetOrLoad returns the cached value or calls load, caching its result on
// success. Concurrent misses may each call load.
func (t Typed[V]) GetOrLoad(key string, load func() (V, error)) (V, error) {
	if v, ok := t.Get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		var zero V
		return zero, err
	}
	t.Set(key, v)
	return v, nil
}
