package rendercache

import (
	"sync"
	"time"
)

// Clock lets tests control expiry instead of waiting out the TTL.
type Clock func() time.Time

// Cache is a process-wide TTL cache for rendered response bodies, keyed by
// request URI. Entries may be served stale up to the expiry window; writers
// never invalidate, expiry is the only eviction.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     Clock
	entries map[string]entry
}

type entry struct {
	body      []byte
	expiresAt time.Time
}

func New(ttl time.Duration) *Cache {
	return NewWithClock(ttl, time.Now)
}

func NewWithClock(ttl time.Duration, now Clock) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry),
	}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}

	body := make([]byte, len(e.body))
	copy(body, e.body)
	return body, true
}

func (c *Cache) Set(key string, body []byte) {
	stored := make([]byte, len(body))
	copy(stored, body)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		body:      stored,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Purge drops every expired entry. Get already evicts lazily; Purge exists
// for long-running processes with many distinct keys.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
