package ast

import (
	"maps"

	"github.com/cockroachdb/errors"

	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

// Metadata is engine-side data attached to a node. It survives rebuilds.
type Metadata map[string]any

type cacheEntry struct {
	node Node
	meta Metadata
	// origin is the first node of the rebuild chain this one ends, Null
	// when the node was never rebuilt from another.
	origin native.Addr
}

// CacheStats counts identity cache traffic.
type CacheStats struct {
	Entries int
	Hits    int64
	Misses  int64
}

// Cache maps native addresses to their single wrapper. It belongs to one
// Session and is never cleared while the session lives.
type Cache struct {
	entries map[native.Addr]*cacheEntry
	hits    int64
	misses  int64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[native.Addr]*cacheEntry)}
}

// Lookup returns the wrapper registered for addr.
func (c *Cache) Lookup(addr native.Addr) (Node, bool) {
	entry, ok := c.entries[addr]
	if !ok {
		c.misses++

		return nil, false
	}

	c.hits++

	return entry.node, true
}

// Register associates n with addr. Registering the same wrapper twice is a
// no-op; registering a different one is ErrDuplicateWrapper.
func (c *Cache) Register(addr native.Addr, n Node) error {
	if entry, ok := c.entries[addr]; ok {
		if entry.node == n {
			return nil
		}

		return errors.Wrapf(ErrDuplicateWrapper, "address %s", addr)
	}

	c.entries[addr] = &cacheEntry{node: n}

	return nil
}

// Len returns the number of registered wrappers.
func (c *Cache) Len() int { return len(c.entries) }

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
}

func (c *Cache) metadata(addr native.Addr) Metadata {
	entry, ok := c.entries[addr]
	if !ok {
		return nil
	}

	return entry.meta
}

func (c *Cache) setMetadata(addr native.Addr, key string, value any) bool {
	entry, ok := c.entries[addr]
	if !ok {
		return false
	}

	if entry.meta == nil {
		entry.meta = make(Metadata)
	}

	entry.meta[key] = value

	return true
}

// refresh copies the metadata of original onto rebuilt, keeping any keys
// rebuilt already has.
func (c *Cache) refresh(original, rebuilt native.Addr) {
	src := c.metadata(original)
	if len(src) == 0 {
		return
	}

	entry, ok := c.entries[rebuilt]
	if !ok {
		return
	}

	if entry.meta == nil {
		entry.meta = maps.Clone(src)

		return
	}

	for key, value := range src {
		if _, exists := entry.meta[key]; !exists {
			entry.meta[key] = value
		}
	}
}

func (c *Cache) origin(addr native.Addr) native.Addr {
	entry, ok := c.entries[addr]
	if !ok {
		return native.Null
	}

	return entry.origin
}

// derive records that rebuilt replaces original, keeping the start of the
// chain when original was itself rebuilt.
func (c *Cache) derive(original, rebuilt native.Addr) {
	entry, ok := c.entries[rebuilt]
	if !ok {
		return
	}

	if first := c.origin(original); first != native.Null {
		entry.origin = first

		return
	}

	entry.origin = original
}

func (c *Cache) reset() {
	c.entries = nil
}
