package runner

import (
	"bytes"
	"slices"
)

// History is a bounded memory of recent generations, used to detect
// when an automaton has settled into a cycle. A zero capacity history
// remembers nothing.
type History struct {
	Capacity int // Generations remembered.

	entries [][]uint8
	next    int
}

// Reset forgets all remembered generations.
func (hist *History) Reset() {
	hist.entries = hist.entries[:0]
	hist.next = 0
}

// Push remembers a generation, evicting the oldest at capacity.
func (hist *History) Push(blocks []uint8) {
	if hist.Capacity < 1 {
		return
	}

	if len(hist.entries) < hist.Capacity {
		hist.entries = append(hist.entries, slices.Clone(blocks))
		return
	}

	// At capacity next points at the oldest entry.
	hist.entries[hist.next] = slices.Clone(blocks)
	hist.next += 1
	if hist.next == hist.Capacity {
		hist.next = 0
	}
}

// Find reports whether blocks match a remembered generation, and how
// many pushes ago it was remembered. The most recent push has age 1.
func (hist *History) Find(blocks []uint8) (age int, ok bool) {
	for n := range hist.entries {
		index := hist.next - 1 - n
		if index < 0 {
			index += len(hist.entries)
		}
		if bytes.Equal(hist.entries[index], blocks) {
			age = n + 1
			ok = true
			return
		}
	}

	return
}
