package semantic

import (
	"container/list"
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
)

// evictionOvershoot is the fraction of capacity freed beyond the target when
// an LRU sweep runs, so back-to-back inserts do not each trigger a sweep.
const evictionOvershoot = 0.1

type cacheEntry struct {
	key       string
	vector    domain.EmbeddingVector
	expiresAt time.Time
}

// Cache is an LRU embedding cache with per-entry TTL. Eviction on overflow
// is two-phase: expired entries are dropped first, then least-recently-used
// entries until the cache is below capacity minus the overshoot margin.
type Cache struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	order     *list.List
	entries   map[string]*list.Element
	now       func() time.Time
	hits      int64
	misses    int64
	evictions int64
}

// NewCache creates a Cache with the given capacity and TTL.
func NewCache(capacity int, ttl time.Duration) *Cache {
	return &Cache{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
		now:      time.Now,
	}
}

// Get returns the cached vector for the text, refreshing its recency.
// Expired entries are treated as misses and removed.
func (c *Cache) Get(text string) (domain.EmbeddingVector, bool) {
	key := cacheKey(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		c.misses++
		return domain.EmbeddingVector{}, false
	}

	entry := elem.Value.(*cacheEntry)
	if c.now().After(entry.expiresAt) {
		c.removeLocked(elem)
		c.misses++
		return domain.EmbeddingVector{}, false
	}

	c.order.MoveToFront(elem)
	c.hits++
	return entry.vector, true
}

// Put stores the vector for the text, evicting as needed.
func (c *Cache) Put(text string, vector domain.EmbeddingVector) {
	key := cacheKey(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.vector = vector
		entry.expiresAt = c.now().Add(c.ttl)
		c.order.MoveToFront(elem)
		return
	}

	if len(c.entries) >= c.capacity {
		c.evictLocked()
	}

	elem := c.order.PushFront(&cacheEntry{
		key:       key,
		vector:    vector,
		expiresAt: c.now().Add(c.ttl),
	})
	c.entries[key] = elem
}

// Purge drops every entry and returns how many were removed. Hit and miss
// counters survive a purge.
func (c *Cache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	purged := len(c.entries)
	c.evictions += int64(purged)
	c.order.Init()
	c.entries = make(map[string]*list.Element)
	return purged
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() domain.EmbeddingCacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.EmbeddingCacheStats{
		Entries:   len(c.entries),
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// evictLocked drops expired entries first, then trims LRU entries down to
// capacity minus the overshoot margin.
func (c *Cache) evictLocked() {
	now := c.now()
	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if now.After(elem.Value.(*cacheEntry).expiresAt) {
			c.removeLocked(elem)
		}
		elem = prev
	}

	target := c.capacity - int(float64(c.capacity)*evictionOvershoot) - 1
	if target < 0 {
		target = 0
	}
	for len(c.entries) > target {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.removeLocked(oldest)
	}
}

func (c *Cache) removeLocked(elem *list.Element) {
	entry := elem.Value.(*cacheEntry)
	c.order.Remove(elem)
	delete(c.entries, entry.key)
	c.evictions++
}

// cacheKey normalizes the lookup text.
func cacheKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// InitEmbeddingCache initializes the embedding cache and registers it in the
// dependency container.
type InitEmbeddingCache struct {
	Capacity int           `config:"EMBEDDING_CACHE_CAPACITY" default:"10000"`
	TTL      time.Duration `config:"EMBEDDING_CACHE_TTL" default:"1h"`
}

// Initialize registers the Cache as the domain.EmbeddingCache implementation.
func (iec InitEmbeddingCache) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EmbeddingCache](NewCache(iec.Capacity, iec.TTL))
	return ctx, nil
}
