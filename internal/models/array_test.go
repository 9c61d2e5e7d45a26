package models

import (
	"fmt"
	"math/rand"
	"runtime"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSharedArrayValuesInUnitInterval(t *testing.T) {
	sa := NewSharedArray(1000, rand.New(rand.NewSource(7)))
	require.Equal(t, 1000, sa.Len())

	for i, v := range sa.Snapshot() {
		require.GreaterOrEqualf(t, v, 0.0, "index %d", i)
		require.Lessf(t, v, 1.0, "index %d", i)
	}
}

func TestSwapIfOutOfOrder(t *testing.T) {
	sa := NewSharedArrayFrom([]float64{0.9, 0.1, 0.5})

	assert.True(t, sa.SwapIfOutOfOrder(0, 1))
	assert.False(t, sa.SwapIfOutOfOrder(0, 1))
	assert.True(t, sa.SwapIfOutOfOrder(1, 2))

	if diff := cmp.Diff([]float64{0.1, 0.5, 0.9}, sa.Snapshot()); diff != "" {
		t.Fatalf("unexpected array (-want +got):\n%s", diff)
	}
}

func TestSortPassMovesLargestToEnd(t *testing.T) {
	sa := NewSharedArrayFrom([]float64{0.9, 0.1, 0.5, 0.3})

	swaps := sa.SortPass(3)

	assert.Equal(t, 3, swaps)
	if diff := cmp.Diff([]float64{0.1, 0.5, 0.3, 0.9}, sa.Snapshot()); diff != "" {
		t.Fatalf("unexpected array after one pass (-want +got):\n%s", diff)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	sa := NewSharedArrayFrom([]float64{0.3, 0.2})
	snap := sa.Snapshot()
	snap[0] = 42

	assert.Equal(t, 0.3, sa.First())
}

func TestNewSharedArrayFromCopiesInput(t *testing.T) {
	in := []float64{0.5, 0.4}
	sa := NewSharedArrayFrom(in)
	in[0] = 0

	assert.Equal(t, 0.5, sa.First())
}

func TestFirstOnEmptyArray(t *testing.T) {
	sa := NewSharedArrayFrom(nil)
	assert.Equal(t, 0, sa.Len())
	assert.Equal(t, 0.0, sa.First())
	assert.True(t, sa.IsSorted())
}

// passStates returns the array after each completed outer pass, starting
// with the untouched input.
func passStates(values []float64) map[string]bool {
	ref := NewSharedArrayFrom(values)
	states := map[string]bool{fmt.Sprint(ref.Snapshot()): true}
	for i := 0; i < len(values)-1; i++ {
		ref.SortPass(len(values) - i - 1)
		states[fmt.Sprint(ref.Snapshot())] = true
	}
	return states
}

func TestSnapshotOnlyObservesPassBoundaries(t *testing.T) {
	const n = 200
	sa := NewSharedArray(n, rand.New(rand.NewSource(time.Now().UnixNano())))
	states := passStates(sa.Snapshot())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < n-1; i++ {
			sa.SortPass(n - i - 1)
			runtime.Gosched()
		}
	}()

	for {
		snap := sa.Snapshot()
		require.True(t, states[fmt.Sprint(snap)], "snapshot taken mid-pass")

		select {
		case <-done:
			assert.True(t, sa.IsSorted())
			return
		default:
		}
	}
}

func TestSortPassExcludesReadersForWholePass(t *testing.T) {
	sa := NewSharedArrayFrom([]float64{0.9, 0.8, 0.7, 0.6, 0.5})

	var mid []float64
	sa.passStep = func(j int) {
		if j != 1 {
			return
		}
		snapshotted := make(chan []float64, 1)
		go func() { snapshotted <- sa.Snapshot() }()

		select {
		case mid = <-snapshotted:
		case <-time.After(50 * time.Millisecond):
		}
	}

	swaps := sa.SortPass(4)

	assert.Equal(t, 4, swaps)
	assert.Nil(t, mid, "reader ran while the pass was in progress")
	assert.Equal(t, []float64{0.8, 0.7, 0.6, 0.5, 0.9}, sa.Snapshot())
}
