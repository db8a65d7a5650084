package cache

// Cloneable constrains cache values to types that can hand out an
// independent copy, matching spec.md §4.2's "caches return cloned
// EvalResults" rule: callers may freely mutate what they get back without
// corrupting the cached entry.
type Cloneable[V any] interface {
	Clone() V
}

// entryOverhead is a fixed per-entry estimate (the Key struct, map bucket
// bookkeeping, and Go's map load-factor slack) added to every entry's
// reported size so SizeInHeap is a conservative over-estimate rather than an
// exact count no real allocator would hit anyway.
const entryOverhead = 64

// Cache is a plain, size-accounted, clone-on-read map from Key to V. It
// implements one "level" of the two-level design in spec.md §4.2; package
// engine owns two independent instances (PerAxis and Full).
type Cache[V Cloneable[V]] struct {
	entries map[Key]V
	sizeOf  func(V) int
	bytes   int
}

// New creates an empty Cache. sizeOf estimates the heap footprint of a
// single value, used to keep SizeInHeap accurate without reflection.
func New[V Cloneable[V]](sizeOf func(V) int) *Cache[V] {
	return &Cache[V]{
		entries: make(map[Key]V),
		sizeOf:  sizeOf,
	}
}

// Get returns a clone of the cached value for key, if present.
func (c *Cache[V]) Get(k Key) (V, bool) {
	v, ok := c.entries[k]
	if !ok {
		var zero V
		return zero, false
	}
	return v.Clone(), true
}

// Put stores a clone of v under key. Relation evaluation is pure over its
// inputs (spec.md §4.2), so Put never needs to invalidate an existing entry;
// a repeated Put for the same key is a no-op that keeps the first value.
func (c *Cache[V]) Put(k Key, v V) {
	if _, exists := c.entries[k]; exists {
		return
	}
	c.entries[k] = v.Clone()
	c.bytes += entryOverhead + c.sizeOf(v)
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int { return len(c.entries) }

// SizeInHeap returns the estimated number of bytes retained by the cache.
func (c *Cache[V]) SizeInHeap() int { return c.bytes }

// Clear discards every entry, freeing the cache's memory. The engine calls
// this on the memory-limit recovery path (spec.md §4.6 step 6).
func (c *Cache[V]) Clear() {
	c.entries = make(map[Key]V)
	c.bytes = 0
}
