package latency

import (
	"math"
	"sort"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
)

// Bucket is one populated 1 ms latency bucket.
type Bucket struct {
	Millisecond int64
	Count       int
}

// Histogram counts latency samples per whole millisecond.
type Histogram struct {
	counts map[int64]int
	total  int
}

func NewHistogram() *Histogram {
	return &Histogram{counts: make(map[int64]int)}
}

// BucketOf returns floor(ns / 1e6).
func BucketOf(nanoseconds float64) int64 {
	return int64(math.Floor(nanoseconds / domain.NanosecondsPerMillisecond))
}

func (h *Histogram) Observe(nanoseconds float64) {
	h.counts[BucketOf(nanoseconds)] += 1
	h.total += 1
}

func (h *Histogram) Total() int {
	return h.total
}

// Buckets returns the populated buckets ordered by ascending millisecond.
func (h *Histogram) Buckets() *orderedmap.OrderedMap[int64, int] {
	keys := make([]int64, 0, len(h.counts))
	for key := range h.counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	buckets := orderedmap.NewOrderedMap[int64, int]()
	for _, key := range keys {
		buckets.Set(key, h.counts[key])
	}
	return buckets
}
