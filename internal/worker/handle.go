package worker

import (
	"errors"
	"fmt"
	"sync"

	"sort-visualizer/internal/logger"
	"sort-visualizer/internal/models"
)

var (
	ErrWorkerAlreadyRunning = errors.New("sort worker already running")
	ErrWorkerCreationFailed = errors.New("could not create sort worker")

	errHandleClosed = errors.New("worker handle closed")
	errEmptyArray   = errors.New("array is empty")
)

// Handle is the single source of truth for whether a worker is active. Its
// mutex is separate from the array's so that notification delivery and
// close requests never wait on a sort pass.
type Handle struct {
	array  *models.SharedArray
	sink   Sink
	logger logger.Logger

	mu      sync.Mutex
	current *Worker
	closed  bool
}

// NewHandle creates an idle handle. Workers it starts report to sink.
func NewHandle(array *models.SharedArray, sink Sink, log logger.Logger) *Handle {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Handle{
		array:  array,
		sink:   sink,
		logger: log,
	}
}

// Start launches a new worker goroutine. At most one worker is active.
func (h *Handle) Start() (*Worker, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current != nil {
		return nil, ErrWorkerAlreadyRunning
	}
	if h.closed {
		return nil, fmt.Errorf("%w: %w", ErrWorkerCreationFailed, errHandleClosed)
	}
	if h.array == nil || h.array.Len() == 0 {
		return nil, fmt.Errorf("%w: %w", ErrWorkerCreationFailed, errEmptyArray)
	}

	w := New(h.array, h.sink, h.logger)
	h.current = w
	go w.Run()

	h.logger.Debug("WorkerHandle", "worker started", map[string]interface{}{
		"elements": h.array.Len(),
	})
	return w, nil
}

// Active reports whether a worker is set
func (h *Handle) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current != nil
}

// Current returns the active worker, or nil
func (h *Handle) Current() *Worker {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// RequestCancel sets the cancellation flag without waiting. It reports
// whether a worker was active.
func (h *Handle) RequestCancel() bool {
	w := h.Current()
	if w == nil {
		return false
	}
	w.Cancel()
	h.logger.Debug("WorkerHandle", "cancellation requested", nil)
	return true
}

// RequestCancelAndJoin cancels the active worker and blocks until it exits.
// Must not be called from the goroutine that consumes the worker's
// notifications: the worker may still be delivering its final one.
func (h *Handle) RequestCancelAndJoin() {
	w := h.Current()
	if w == nil {
		return
	}
	w.Cancel()
	<-w.Done()
	h.Finished(w)
}

// Join waits for the active worker to exit and clears it. Called after the
// terminal notification was processed, so the wait is at most the worker's
// return path.
func (h *Handle) Join() {
	w := h.Current()
	if w == nil {
		return
	}
	<-w.Done()
	h.Finished(w)
}

// Finished clears the handle if it still points at w. Clearing an already
// cleared handle is a no-op.
func (h *Handle) Finished(w *Worker) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil || h.current != w {
		return
	}
	h.current = nil
	h.logger.Debug("WorkerHandle", "worker cleared", nil)
}

// Close refuses any further Start
func (h *Handle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
}
