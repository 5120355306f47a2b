package ssf

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// DefaultCacheCapacity is the LRU size spec.md §5 specifies for the
// one-shot format(value, format_string, Options) convenience path.
const DefaultCacheCapacity = 100

// formatCache is a bounded, mutex-guarded cache of parsed Formats keyed by
// raw format string. Holders never perform I/O, so the critical section
// is just a map lookup/insert.
type formatCache struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *Format]
}

func newFormatCache(capacity int) *formatCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	c, err := lru.New[string, *Format](capacity)
	if err != nil {
		// Only returns an error for a non-positive size, already guarded
		// above.
		panic("ssf: cache: " + err.Error())
	}
	return &formatCache{cache: c}
}

func (c *formatCache) get(raw string) (*Format, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Get(raw)
}

func (c *formatCache) put(raw string, f *Format) {
	c.mu.Lock()
	defer c.mu.Unlock()
	evicted := c.cache.Add(raw, f)
	if evicted {
		currentLogger().Debug("ssf: format cache evicted an entry", zap.Int("size", c.cache.Len()))
	}
}

var (
	defaultCacheOnce sync.Once
	defaultCacheInst *formatCache
)

// sharedCache returns the package-level cache used by the one-shot
// FormatValue helper, sized from configuredCacheCapacity on first use so
// any SSF_CACHE_CAPACITY override is already in effect.
func sharedCache() *formatCache {
	defaultCacheOnce.Do(func() {
		defaultCacheInst = newFormatCache(configuredCacheCapacity())
	})
	return defaultCacheInst
}
