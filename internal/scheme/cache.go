package scheme

import (
	"sync"

	"github.com/alexisbeaulieu97/chromatone/internal/palette"
)

// ComputeFunc produces configurations for a palette and mode on cache miss.
type ComputeFunc func(colors palette.Palette, mode Mode) ([]Configuration, error)

// Cache memoizes the most recent enumeration result. It is a single slot
// keyed by palette identity and mode: querying a different palette or mode
// evicts the previous entry. The owner decides the cache's lifetime; there
// is no package-level instance.
type Cache struct {
	mu      sync.Mutex
	key     string
	configs []Configuration
	compute ComputeFunc
}

// NewCache builds a cache around the given compute function.
func NewCache(compute ComputeFunc) *Cache {
	return &Cache{compute: compute}
}

// cacheKeyUnset is the sentinel for an empty slot. Palette hashes never
// collide with it because the key always carries a mode suffix.
const cacheKeyUnset = ""

func cacheKey(colors palette.Palette, mode Mode) string {
	return colors.Hash() + "|" + string(mode)
}

// Get returns the memoized configurations for the palette and mode,
// recomputing and overwriting the slot when the key differs from the stored
// one. The whole read-check-recompute-write sequence holds the lock, so
// concurrent callers cannot race the slot.
func (c *Cache) Get(colors palette.Palette, mode Mode) ([]Configuration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(colors, mode)
	if c.key == key {
		return c.configs, nil
	}

	configs, err := c.compute(colors, mode)
	if err != nil {
		return nil, err
	}

	c.key = key
	c.configs = configs
	return configs, nil
}

// Clear resets the slot to the unset sentinel, forcing the next Get to
// recompute.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = cacheKeyUnset
	c.configs = nil
}
