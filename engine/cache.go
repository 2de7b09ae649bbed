package engine

import (
	"math"
	"sync"

	"github.com/arloliu/tsmooth/internal/hash"
	"github.com/arloliu/tsmooth/kernel"
	"github.com/arloliu/tsmooth/series"
)

// floatKeyBits maps a parameter value to its IEEE 754 bit pattern,
// normalizing negative zero.
func floatKeyBits(v float64) uint64 {
	if v == 0 {
		return 0
	}

	return math.Float64bits(v)
}

// cacheKey derives a single xxHash64 key from the series fingerprint and the
// kernel's type and parameters. The fingerprint already covers the series
// name, length, and every sample.
func cacheKey(src *series.Series, k kernel.Kernel) uint64 {
	d := hash.NewDigest()
	d.WriteUint64(src.Fingerprint())
	d.WriteUint64(uint64(k.Type())) //nolint:gosec
	for _, p := range k.Params() {
		d.WriteUint64(floatKeyBits(p))
	}

	return d.Sum64()
}

// resultCache is a bounded FIFO cache of smoothing results.
//
// FIFO keeps eviction O(1) without per-get bookkeeping; smoothing workloads
// tend to re-run the same recent (series, kernel) pairs, where FIFO and LRU
// behave alike.
//
// Entries are cloned on both put and get: callers own their result series
// outright, so neither appending to a returned series nor mutating the series
// handed to put can reach the cached copy.
type resultCache struct {
	mu       sync.Mutex
	entries  map[uint64]*series.Series
	order    []uint64
	capacity int
}

func newResultCache(capacity int) *resultCache {
	return &resultCache{
		entries:  make(map[uint64]*series.Series, capacity),
		order:    make([]uint64, 0, capacity),
		capacity: capacity,
	}
}

func (c *resultCache) get(key uint64) (*series.Series, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	return out.Clone(), true
}

func (c *resultCache) put(key uint64, out *series.Series) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = out.Clone()
	c.order = append(c.order, key)
}

func (c *resultCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
