package cache

// Sizer reports the estimated memory footprint of a cached value in bytes.
// Each storable result type implements it; the cache never inspects value
// shapes itself.
type Sizer interface {
	EstimatedSize() int
}

// Cache is a generic LRU cache bounded by entry count and by the estimated
// memory footprint of its values. Eviction is strict least-recently-used;
// Get and Put are O(1) amortized.
//
// Cache is not safe for concurrent use; see the package documentation.
type Cache[K comparable, V Sizer] struct {
	entries map[K]*cacheEntry[K, V]
	lru     recencyList[K]

	maxEntries int
	maxBytes   int
	bytes      int

	hits      uint64
	misses    uint64
	evictions uint64
}

// cacheEntry pairs a value with its recency node and the footprint recorded
// at insertion time.
type cacheEntry[K comparable, V Sizer] struct {
	value V
	node  *node[K]
	size  int
}

// New creates a cache bounded by maxEntries entries and maxBytes estimated
// bytes. A limit of 0 disables that bound.
func New[K comparable, V Sizer](maxEntries, maxBytes int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:    make(map[K]*cacheEntry[K, V]),
		maxEntries: maxEntries,
		maxBytes:   maxBytes,
	}
}

// Get retrieves a cached value and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.lru.moveToFront(e.node)
	c.hits++
	return e.value, true
}

// Peek retrieves a cached value without touching recency or counters.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores a value, evicting least-recently-used entries until both
// bounds hold again. The newly inserted entry itself is never evicted,
// even when it alone exceeds the byte bound.
func (c *Cache[K, V]) Put(key K, value V) {
	size := value.EstimatedSize()

	if e, ok := c.entries[key]; ok {
		c.bytes += size - e.size
		e.value = value
		e.size = size
		c.lru.moveToFront(e.node)
		c.evict()
		return
	}

	e := &cacheEntry[K, V]{value: value, size: size}
	e.node = c.lru.pushFront(key)
	c.entries[key] = e
	c.bytes += size
	c.evict()
}

// Delete removes an entry, reporting whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.lru.remove(e.node)
	c.bytes -= e.size
	delete(c.entries, key)
	return true
}

// Clear removes all entries. Counters are kept; use ResetStats to zero them.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]*cacheEntry[K, V])
	c.lru.reset()
	c.bytes = 0
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Bytes returns the estimated footprint of all cached values.
func (c *Cache[K, V]) Bytes() int {
	return c.bytes
}

// evict removes least-recently-used entries while either bound is
// exceeded, always sparing the most recent entry.
func (c *Cache[K, V]) evict() {
	for len(c.entries) > 1 &&
		(c.maxEntries > 0 && len(c.entries) > c.maxEntries ||
			c.maxBytes > 0 && c.bytes > c.maxBytes) {
		key, ok := c.lru.removeBack()
		if !ok {
			return
		}
		if e, ok := c.entries[key]; ok {
			c.bytes -= e.size
			delete(c.entries, key)
			c.evictions++
		}
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Bytes is the estimated footprint of all values.
	Bytes int
	// MaxEntries and MaxBytes are the configured bounds (0 = unbounded).
	MaxEntries int
	MaxBytes   int
	// Hits and Misses count Get outcomes.
	Hits   uint64
	Misses uint64
	// HitRate is Hits/(Hits+Misses), 0 when no lookups happened.
	HitRate float64
	// Evictions counts entries removed by the bounds.
	Evictions uint64
}

// Stats returns current cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	s := Stats{
		Len:        len(c.entries),
		Bytes:      c.bytes,
		MaxEntries: c.maxEntries,
		MaxBytes:   c.maxBytes,
		Hits:       c.hits,
		Misses:     c.misses,
		Evictions:  c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// ResetStats zeroes the hit, miss, and eviction counters.
func (c *Cache[K, V]) ResetStats() {
	c.hits, c.misses, c.evictions = 0, 0, 0
}
