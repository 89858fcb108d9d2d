package tabu

import "github.com/katalvlaran/metatsp/tsp"

// Memory is a bounded FIFO of full tours. A membership test costs O(n) to
// encode the tour plus an O(1) map lookup. When full, Add evicts the oldest
// entry.
type Memory struct {
	capacity int
	queue    []string       // encoded tours, oldest first
	count    map[string]int // multiplicity of each encoding in queue
}

// NewMemory returns an empty memory holding at most capacity tours.
// capacity < 1 is treated as 1; Options.Validate rejects it earlier.
func NewMemory(capacity int) *Memory {
	if capacity < 1 {
		capacity = 1
	}

	return &Memory{
		capacity: capacity,
		queue:    make([]string, 0, capacity),
		count:    make(map[string]int, capacity),
	}
}

// Contains reports whether t equals some remembered tour, element-wise.
func (m *Memory) Contains(t []int) bool {
	return m.count[tsp.EncodeTour(t)] > 0
}

// Add remembers t, evicting the oldest tour when the memory is full.
func (m *Memory) Add(t []int) {
	if len(m.queue) == m.capacity {
		old := m.queue[0]
		m.queue = m.queue[1:]
		m.count[old]--
		if m.count[old] == 0 {
			delete(m.count, old)
		}
	}
	key := tsp.EncodeTour(t)
	m.queue = append(m.queue, key)
	m.count[key]++
}

// Len returns the number of remembered tours.
func (m *Memory) Len() int { return len(m.queue) }

// Cap returns the memory capacity.
func (m *Memory) Cap() int { return m.capacity }
