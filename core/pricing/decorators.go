package pricing

import (
	"context"
	"sync"
	"time"
)

// CachingSource wraps a source with a TTL cache keyed by
// canonical name and region. Misses are cached too, so a flapping
// upstream cannot be hammered by repeated lookups.
type CachingSource struct {
	inner Source
	ttl   time.Duration
	cache map[string]*cachedQuote
	mu    sync.RWMutex
}

type cachedQuote struct {
	quote     Quote
	ok        bool
	expiresAt time.Time
}

// NewCachingSource creates a caching wrapper
func NewCachingSource(inner Source, ttl time.Duration) *CachingSource {
	return &CachingSource{
		inner: inner,
		ttl:   ttl,
		cache: make(map[string]*cachedQuote),
	}
}

// Name identifies the source
func (c *CachingSource) Name() string { return c.inner.Name() }

// Lookup serves from cache when fresh, otherwise delegates
func (c *CachingSource) Lookup(ctx context.Context, canonical, region string) (Quote, bool) {
	key := canonical + ":" + region

	c.mu.RLock()
	if cached, ok := c.cache[key]; ok && time.Now().Before(cached.expiresAt) {
		c.mu.RUnlock()
		return cached.quote, cached.ok
	}
	c.mu.RUnlock()

	quote, ok := c.inner.Lookup(ctx, canonical, region)

	c.mu.Lock()
	c.cache[key] = &cachedQuote{
		quote:     quote,
		ok:        ok,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()

	return quote, ok
}

// MetricsSource wraps a source with lookup/miss counters
type MetricsSource struct {
	inner   Source
	lookups int64
	misses  int64
	mu      sync.RWMutex
}

// NewMetricsSource creates a metrics wrapper
func NewMetricsSource(inner Source) *MetricsSource {
	return &MetricsSource{inner: inner}
}

// Name identifies the source
func (m *MetricsSource) Name() string { return m.inner.Name() }

// Lookup delegates and counts the outcome
func (m *MetricsSource) Lookup(ctx context.Context, canonical, region string) (Quote, bool) {
	quote, ok := m.inner.Lookup(ctx, canonical, region)

	m.mu.Lock()
	m.lookups++
	if !ok {
		m.misses++
	}
	m.mu.Unlock()

	return quote, ok
}

// Metrics returns lookup and miss counts
func (m *MetricsSource) Metrics() (lookups, misses int64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lookups, m.misses
}
