package events

import (
	"sync"

	"sort-visualizer/internal/models"
)

// Inbox is an unbounded FIFO of worker notifications. Post never blocks, so
// the worker cannot stall on a busy UI thread.
type Inbox struct {
	mu     sync.Mutex
	queue  []models.Notification
	wake   chan struct{}
	closed bool
}

func NewInbox() *Inbox {
	return &Inbox{wake: make(chan struct{}, 1)}
}

// Post appends n. Notifications posted after Close are dropped.
func (in *Inbox) Post(n models.Notification) {
	in.mu.Lock()
	if in.closed {
		in.mu.Unlock()
		return
	}
	in.queue = append(in.queue, n)
	in.mu.Unlock()

	in.signal()
}

// Close stops the inbox; pending notifications are still drained
func (in *Inbox) Close() {
	in.mu.Lock()
	in.closed = true
	in.mu.Unlock()

	in.signal()
}

// Len returns the number of notifications waiting
func (in *Inbox) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.queue)
}

func (in *Inbox) signal() {
	select {
	case in.wake <- struct{}{}:
	default:
	}
}

// take returns everything queued so far and whether the inbox is closed
func (in *Inbox) take() ([]models.Notification, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	batch := in.queue
	in.queue = nil
	return batch, in.closed
}
