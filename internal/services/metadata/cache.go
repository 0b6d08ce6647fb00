package metadata

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache is a process-wide keyed store of session metadata, entries are never invalidated
type Cache interface {
	Get(key string) (interface{}, bool)
	Put(key string, val interface{})
}

// Computer is implemented by caches able to collapse concurrent computations of a missing key
type Computer interface {
	GetOrCompute(key string, compute func() (interface{}, error)) (interface{}, error)
}

// DefaultCache is shared by all SDK instances which are not given a cache explicitly
var DefaultCache Cache = NewLocalCache()

type LocalCache struct {
	entries  map[string]interface{}
	mtx      sync.RWMutex
	inflight singleflight.Group
}

func NewLocalCache() *LocalCache {
	return &LocalCache{
		entries: make(map[string]interface{}),
	}
}

func (c *LocalCache) Get(key string) (interface{}, bool) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	val, ok := c.entries[key]
	return val, ok
}

func (c *LocalCache) Put(key string, val interface{}) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.entries[key] = val
}

// GetOrCompute stores the result of compute under key unless it is there already.
// Concurrent callers missing the same key share one compute call, errors are not stored.
func (c *LocalCache) GetOrCompute(key string, compute func() (interface{}, error)) (interface{}, error) {
	if val, ok := c.Get(key); ok {
		return val, nil
	}

	val, err, _ := c.inflight.Do(key, func() (interface{}, error) {
		if val, ok := c.Get(key); ok {
			return val, nil
		}
		val, err := compute()
		if err != nil {
			return nil, err
		}
		c.Put(key, val)
		return val, nil
	})
	return val, err
}

func (c *LocalCache) Len() int {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return len(c.entries)
}
