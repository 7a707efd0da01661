// Package cache memoizes sorted numeric sequences. Entries are keyed by a
// murmur3 hash of the sort direction and the IEEE-754 bits of every input
// value, and evicted in least-recently-used order.
package cache

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
	"github.com/twmb/murmur3"
)

type entry struct {
	input  []float64
	output []float64
}

// Stats is a snapshot of the cache counters.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Cache is safe for concurrent use.
type Cache struct {
	lru       *lru.Cache
	maxValues int
	hits      atomic.Uint64
	misses    atomic.Uint64
}

// New creates a cache holding up to size results. Inputs longer than
// maxValues are never cached; zero means no limit.
func New(size, maxValues int) (*Cache, error) {
	l, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru: %w", err)
	}

	return &Cache{
		lru:       l,
		maxValues: maxValues,
	}, nil
}

// Get returns a copy of the cached result for values sorted in the given direction.
func (c *Cache) Get(values []float64, ascending bool) ([]float64, bool) {
	v, ok := c.lru.Get(hashKey(values, ascending))
	if ok {
		e := v.(*entry)

		// Two inputs may share a hash, the stored input settles it.
		if sameBits(e.input, values) {
			c.hits.Add(1)
			return copyOf(e.output), true
		}
	}

	c.misses.Add(1)

	return nil, false
}

// Put stores the result of sorting values. Both slices are copied.
func (c *Cache) Put(values []float64, ascending bool, sorted []float64) {
	if c.maxValues > 0 && len(values) > c.maxValues {
		return
	}

	c.lru.Add(hashKey(values, ascending), &entry{
		input:  copyOf(values),
		output: copyOf(sorted),
	})
}

func (c *Cache) Stats() Stats {
	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.lru.Len(),
	}
}

// Purge removes all entries, counters are kept.
func (c *Cache) Purge() {
	c.lru.Purge()
}

func hashKey(values []float64, ascending bool) uint64 {
	h := murmur3.New64()

	var buf [8]byte
	if ascending {
		buf[0] = 1
	}

	h.Write(buf[:1]) //nolint:errcheck

	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:]) //nolint:errcheck
	}

	return h.Sum64()
}

func sameBits(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}

	return true
}

func copyOf(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	return out
}
