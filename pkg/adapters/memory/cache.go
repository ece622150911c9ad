package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/bitlab/pkg/domain"
)

type entry struct {
	text    string
	expires time.Time
}

// Cache implements ports.ExplanationCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[string]entry
	ttl  time.Duration
	now  func() time.Time
	mu   sync.RWMutex
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithTTL expires entries after ttl. Zero keeps entries forever.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates a new in-memory explanation cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		data: make(map[string]entry),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached explanation, or domain.ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return "", domain.ErrCacheMiss
	}
	if c.expired(e) {
		// Lazy eviction; a Set may have replaced the entry since the read.
		c.mu.Lock()
		if cur, ok := c.data[key]; ok && c.expired(cur) {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return "", domain.ErrCacheMiss
	}
	return e.text, nil
}

func (c *Cache) expired(e entry) bool {
	return !e.expires.IsZero() && !c.now().Before(e.expires)
}

// Set stores an explanation.
func (c *Cache) Set(ctx context.Context, key string, text string) error {
	e := entry{text: text}
	if c.ttl > 0 {
		e.expires = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = e
	return nil
}

// Delete removes an entry.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
