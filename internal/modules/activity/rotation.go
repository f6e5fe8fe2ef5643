package activity

import (
	"math/rand"
	"sync"
)

// windowCapacity bounds each recency window: the last N served items are
// ineligible until evicted or the pool is exhausted.
const windowCapacity = 5

// Rotation serves items from a fixed pool while avoiding recent repeats.
// The recency window is process-wide state shared by every caller of the
// pool; the mutex keeps the read-filter-append sequence atomic so two
// concurrent requests can neither pick the same "available" item nor race
// the eviction past capacity.
type Rotation struct {
	mu       sync.Mutex
	pool     []string
	sentinel string
	window   []string // FIFO, oldest first, len <= windowCapacity
	intn     func(n int) int
}

// NewRotation builds a rotation over pool. The sentinel is returned for the
// single call that finds the pool exhausted.
func NewRotation(pool []string, sentinel string) *Rotation {
	return &Rotation{
		pool:     pool,
		sentinel: sentinel,
		intn:     rand.Intn,
	}
}

// Next returns a pool item not currently in the recency window, chosen
// uniformly at random. When every pool item is in the window, the window is
// cleared and the sentinel is returned for this call only; the next call
// starts fresh.
func (r *Rotation) Next() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	available := make([]string, 0, len(r.pool))
	for _, item := range r.pool {
		if !r.inWindow(item) {
			available = append(available, item)
		}
	}

	if len(available) == 0 {
		r.window = r.window[:0]
		return r.sentinel
	}

	item := available[r.intn(len(available))]
	r.window = append(r.window, item)
	if len(r.window) > windowCapacity {
		r.window = r.window[1:]
	}
	return item
}

func (r *Rotation) inWindow(item string) bool {
	for _, w := range r.window {
		if w == item {
			return true
		}
	}
	return false
}
