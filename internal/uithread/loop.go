package uithread

import (
	"sync"
)

// Loop is a Dispatcher backed by one goroutine draining an ordered queue.
// It stands in for the toolkit's main loop in headless mode.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	stopped chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewLoop() *Loop {
	return &Loop{
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Run processes queued functions until Stop. It blocks the caller, which
// becomes the UI thread.
func (l *Loop) Run() {
	defer close(l.done)

	for {
		for _, fn := range l.take() {
			fn()
		}

		select {
		case <-l.wake:
		case <-l.stopped:
			// drain what was queued before Stop
			for _, fn := range l.take() {
				fn()
			}
			return
		}
	}
}

// Start runs the loop on a new goroutine
func (l *Loop) Start() {
	go l.Run()
}

func (l *Loop) take() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	batch := l.queue
	l.queue = nil
	return batch
}

func (l *Loop) Do(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// DoAndWait returns without running fn if the loop has already exited
func (l *Loop) DoAndWait(fn func()) {
	finished := make(chan struct{})
	l.Do(func() {
		defer close(finished)
		fn()
	})

	select {
	case <-finished:
	case <-l.done:
	}
}

// Stop ends the loop after the functions already queued have run
func (l *Loop) Stop() {
	l.once.Do(func() {
		close(l.stopped)
	})
}

// Done is closed when Run returns
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
