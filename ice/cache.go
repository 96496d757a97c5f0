package ice

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// instanceCache holds resolved singletons. Hits take only the read lock;
// a miss re-checks under the write lock and registers an in-flight entry, so
// concurrent first requests for a key wait for a single construction.
type instanceCache struct {
	mu        sync.RWMutex
	instances map[Key]interface{}
	inflight  map[Key]*flight
}

// flight is one construction in progress. done closes when val/err are final.
type flight struct {
	owner uint64 // goroutine doing the construction
	done  chan struct{}
	val   interface{}
	err   error
}

func newInstanceCache() *instanceCache {
	return &instanceCache{
		instances: make(map[Key]interface{}),
		inflight:  make(map[Key]*flight),
	}
}

func (c *instanceCache) get(key Key) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.instances[key]
	return v, ok
}

// acquire returns the cached value, or the flight to wait for, or (when
// owner is true) a new flight, owned by goroutine g, the caller must finish.
func (c *instanceCache) acquire(key Key, g uint64) (v interface{}, hit bool, f *flight, owner bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.instances[key]; ok {
		return v, true, nil, false
	}
	if f, ok := c.inflight[key]; ok {
		return nil, false, f, false
	}
	f = &flight{owner: g, done: make(chan struct{})}
	c.inflight[key] = f
	return nil, false, f, true
}

// publish stores v for key ahead of the flight finishing, so the Injectable
// hook can see it. A flight orphaned by clear publishes nothing.
func (c *instanceCache) publish(key Key, f *flight, v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight[key] == f {
		c.instances[key] = v
	}
}

// finish ends the flight for key. On error nothing stays cached for key.
func (c *instanceCache) finish(key Key, f *flight, v interface{}, err error) {
	c.mu.Lock()
	if c.inflight[key] == f {
		if err != nil {
			delete(c.instances, key)
		}
		delete(c.inflight, key)
	}
	c.mu.Unlock()

	f.val, f.err = v, err
	close(f.done)
}

func (c *instanceCache) keys() []Key {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Key, 0, len(c.instances))
	for k := range c.instances {
		out = append(out, k)
	}
	return out
}

func (c *instanceCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances = make(map[Key]interface{})
	// running flights are orphaned: they still answer their waiters but
	// never write into the new maps
	c.inflight = make(map[Key]*flight)
}

// providerCache holds the lazy providers handed out by ProviderOf. It is
// independent of the instance cache and has its own lock.
type providerCache struct {
	mu        sync.RWMutex
	providers map[Key]interface{}
}

func newProviderCache() *providerCache {
	return &providerCache{providers: make(map[Key]interface{})}
}

func (c *providerCache) getOrCreate(key Key, create func() interface{}) interface{} {
	c.mu.RLock()
	p, ok := c.providers[key]
	c.mu.RUnlock()
	if ok {
		return p
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.providers[key]; ok {
		return p
	}
	p = create()
	c.providers[key] = p
	return p
}

func (c *providerCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.providers = make(map[Key]interface{})
}

// goroutineID reads the current goroutine's id from its stack header,
// "goroutine 18 [running]:". It is 0 if the header can't be parsed.
func goroutineID() uint64 {
	var buf [64]byte
	b := bytes.TrimPrefix(buf[:runtime.Stack(buf[:], false)], []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, _ := strconv.ParseUint(string(b), 10, 64)
	return id
}
