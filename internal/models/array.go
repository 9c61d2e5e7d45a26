package models

import (
	"math/rand"
	"sync"
)

// SharedArray is the buffer the sort worker mutates in place while the grid
// renders it. Every access spanning more than one element holds mu.
type SharedArray struct {
	mu     sync.Mutex
	values []float64

	// passStep, when set, runs after each comparison of SortPass with mu held
	passStep func(j int)
}

// NewSharedArray allocates n values drawn uniformly from [0,1)
func NewSharedArray(n int, rng *rand.Rand) *SharedArray {
	sa := &SharedArray{values: make([]float64, n)}
	sa.Randomize(rng)
	return sa
}

// NewSharedArrayFrom copies values into a new array
func NewSharedArrayFrom(values []float64) *SharedArray {
	copied := make([]float64, len(values))
	copy(copied, values)
	return &SharedArray{values: copied}
}

// Randomize refills the array. Only called before any worker exists.
func (sa *SharedArray) Randomize(rng *rand.Rand) {
	sa.mu.Lock()
	defer sa.mu.Unlock()

	for i := range sa.values {
		sa.values[i] = rng.Float64()
	}
}

// Len returns the fixed length of the array
func (sa *SharedArray) Len() int {
	return len(sa.values)
}

// SwapIfOutOfOrder swaps elements i and j when values[i] > values[j]
func (sa *SharedArray) SwapIfOutOfOrder(i, j int) bool {
	sa.mu.Lock()
	defer sa.mu.Unlock()
	return sa.swapIfOutOfOrder(i, j)
}

// SortPass runs one bubble sort inner pass over pairs (j, j+1) for j < limit.
// The lock is held for the whole pass so a snapshot never observes a pass
// half applied.
func (sa *SharedArray) SortPass(limit int) int {
	sa.mu.Lock()
	defer sa.mu.Unlock()

	swaps := 0
	for j := 0; j < limit; j++ {
		if sa.swapIfOutOfOrder(j, j+1) {
			swaps++
		}
		if sa.passStep != nil {
			sa.passStep(j)
		}
	}
	return swaps
}

func (sa *SharedArray) swapIfOutOfOrder(i, j int) bool {
	if sa.values[i] > sa.values[j] {
		sa.values[i], sa.values[j] = sa.values[j], sa.values[i]
		return true
	}
	return false
}

// Snapshot returns a copy taken under the lock
func (sa *SharedArray) Snapshot() []float64 {
	sa.mu.Lock()
	defer sa.mu.Unlock()

	snapshot := make([]float64, len(sa.values))
	copy(snapshot, sa.values)
	return snapshot
}

// First returns the first element, or 0 for an empty array
func (sa *SharedArray) First() float64 {
	sa.mu.Lock()
	defer sa.mu.Unlock()

	if len(sa.values) == 0 {
		return 0
	}
	return sa.values[0]
}

// IsSorted reports whether the array is non-decreasing
func (sa *SharedArray) IsSorted() bool {
	sa.mu.Lock()
	defer sa.mu.Unlock()

	for i := 1; i < len(sa.values); i++ {
		if sa.values[i-1] > sa.values[i] {
			return false
		}
	}
	return true
}
