package listener

import (
	"sync"

	"github.com/leofalp/opcalc/core/broadcast"
)

// History is a concurrency-safe, in-memory record of published results.
type History struct {
	mu      sync.RWMutex
	results []float64
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{results: []float64{}}
}

var _ broadcast.Listener = (*History)(nil)

// Update appends result. It never fails.
func (h *History) Update(result float64) error {
	h.mu.Lock()
	h.results = append(h.results, result)
	h.mu.Unlock()
	return nil
}

// Count returns the number of recorded results.
func (h *History) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.results)
}

// All returns a copy of every recorded result, oldest first.
func (h *History) All() []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]float64, len(h.results))
	copy(out, h.results)
	return out
}

// Last returns up to the n most recent results, oldest first. The slice is
// empty, never nil, when n <= 0 or nothing was recorded.
func (h *History) Last(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if n > len(h.results) {
		n = len(h.results)
	}
	out := make([]float64, n)
	copy(out, h.results[len(h.results)-n:])
	return out
}

// Clear drops all results, keeping the capacity.
func (h *History) Clear() {
	h.mu.Lock()
	h.results = h.results[:0]
	h.mu.Unlock()
}
