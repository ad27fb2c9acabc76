// Package chunkcache keeps pristine generated chunks in a ristretto cache so
// revisiting a region of the world skips generation. One cache can be shared
// by every session on a server; entries are keyed by seed, chunk index and
// chunk width.
package chunkcache

import (
	"fmt"
	"strconv"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Cache implements world.TemplateCache.
type Cache struct {
	c *ristretto.Cache[string, *world.Chunk]
}

var _ world.TemplateCache = (*Cache)(nil)

// New creates a cache holding up to size chunks.
func New(size int) (*Cache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunkcache: size must be positive, got %d", size)
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, *world.Chunk]{
		NumCounters:        int64(size) * 10,
		MaxCost:            int64(size),
		BufferItems:        64,
		IgnoreInternalCost: true,
		Metrics:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("chunkcache: create: %w", err)
	}
	return &Cache{c: c}, nil
}

func key(k world.TemplateKey) string {
	return strconv.FormatInt(k.Seed, 10) + "|" + strconv.Itoa(k.Index) + "|" + strconv.Itoa(k.Width)
}

// Get returns the template stored under k.
func (c *Cache) Get(k world.TemplateKey) (*world.Chunk, bool) {
	return c.c.Get(key(k))
}

// Set stores a template. Each chunk costs one unit; ristretto may still
// refuse an entry under contention, in which case the chunk is simply
// generated again next time.
func (c *Cache) Set(k world.TemplateKey, ch *world.Chunk) {
	if ch == nil {
		return
	}
	c.c.Set(key(k), ch, 1)
	c.c.Wait()
}

// Hits returns the number of successful lookups.
func (c *Cache) Hits() uint64 {
	return c.c.Metrics.Hits()
}

// Misses returns the number of failed lookups.
func (c *Cache) Misses() uint64 {
	return c.c.Metrics.Misses()
}

// Close stops the cache's background goroutines.
func (c *Cache) Close() {
	c.c.Close()
}
