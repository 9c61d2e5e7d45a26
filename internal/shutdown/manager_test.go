package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsInReverseOrderOnce(t *testing.T) {
	m := NewManager(nil, time.Second)

	var (
		mu    sync.Mutex
		order []string
	)
	record := func(name string) ShutdownFunc {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}
	m.Register("first", record("first"))
	m.Register("second", record("second"))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)
	select {
	case <-m.Done():
	default:
		t.Fatal("done not closed")
	}
}

func TestShutdownStepTimeout(t *testing.T) {
	m := NewManager(nil, 10*time.Millisecond)

	block := make(chan struct{})
	defer close(block)
	ran := false
	m.Register("after", ShutdownFunc(func() { ran = true }))
	m.Register("stuck", ShutdownFunc(func() { <-block }))

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, ran)
}
