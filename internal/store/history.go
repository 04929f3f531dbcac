package store

import "sync"

// DefaultHistoryCapacity is the number of recent searches retained.
const DefaultHistoryCapacity = 5

// MemoryHistory is a concurrency-safe, session-scoped list of distinct city
// names, most recent first. It implements weather.History.
type MemoryHistory struct {
	mu sync.RWMutex

	entries  []string
	capacity int
}

// NewMemoryHistory creates an empty history. A capacity <= 0 falls back to
// DefaultHistoryCapacity.
func NewMemoryHistory(capacity int) *MemoryHistory {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &MemoryHistory{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Record prepends city unless an identical entry (case-sensitive) is already
// present, in which case the order is left untouched. The oldest entry is
// evicted once capacity is exceeded.
func (h *MemoryHistory) Record(city string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, e := range h.entries {
		if e == city {
			return false
		}
	}

	h.entries = append([]string{city}, h.entries...)

	// Enforce retention by count.
	if len(h.entries) > h.capacity {
		h.entries = h.entries[:h.capacity]
	}
	return true
}

// Entries returns a copy of the history, most recent first.
func (h *MemoryHistory) Entries() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *MemoryHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
