package tzfmt

import (
	"sync"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/chronomap-dev/chronomap/pkg/catalog"
)

// Offset strings drift only when a zone crosses a DST boundary, so an hour
// of staleness is acceptable for picker-list rendering.
const cacheTTL = time.Hour

// offsetCache keeps current offset strings for the curated catalog so the
// picker can render without recomputing every zone. It is a performance
// layer only; anything needing a precise instant calls OffsetStringAt.
type offsetCache struct {
	cache   *otter.Cache[string, string]
	prewarm sync.Once
}

var defaultCache = newOffsetCache()

func newOffsetCache() *offsetCache {
	cache := otter.Must(&otter.Options[string, string]{
		MaximumSize:      1024,
		InitialCapacity:  256,
		ExpiryCalculator: otter.ExpiryWriting[string, string](cacheTTL),
	})
	return &offsetCache{cache: cache}
}

func (c *offsetCache) offsetString(zone string) string {
	c.prewarm.Do(func() {
		now := time.Now()
		for _, e := range catalog.All() {
			if _, ok := c.cache.GetIfPresent(e.IANAName); !ok {
				c.cache.Set(e.IANAName, OffsetStringAt(e.IANAName, now))
			}
		}
	})

	if s, ok := c.cache.GetIfPresent(zone); ok {
		return s
	}

	// Uncatalogued zone, or entry aged out: recompute and remember.
	s := OffsetStringAt(zone, time.Now())
	c.cache.Set(zone, s)
	return s
}
