package worker

import (
	"sync"
	"sync/atomic"
	"time"

	"sort-visualizer/internal/logger"
	"sort-visualizer/internal/models"
)

// Sink receives everything a worker reports. Implementations must be safe to
// call from the worker goroutine; the worker holds the sink by reference only.
type Sink interface {
	// Notify delivers progress and terminal notifications in posting order.
	Notify(n models.Notification)
	// WorkerTornDown is called exactly once, after the worker's last Notify.
	WorkerTornDown(w *Worker)
}

// Worker bubble-sorts a SharedArray, polling a cancellation flag at the top
// of every outer pass. Cancellation latency is bounded by one inner pass.
type Worker struct {
	array  *models.SharedArray
	sink   Sink
	logger logger.Logger

	cancelled atomic.Bool
	teardown  sync.Once
	done      chan struct{}
}

// New creates a worker bound to array and sink. It does not start it.
func New(array *models.SharedArray, sink Sink, log logger.Logger) *Worker {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Worker{
		array:  array,
		sink:   sink,
		logger: log,
		done:   make(chan struct{}),
	}
}

// Cancel sets the cooperative cancellation flag
func (w *Worker) Cancel() {
	w.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called
func (w *Worker) Cancelled() bool {
	return w.cancelled.Load()
}

// Done is closed once the worker has exited and torn down
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Run sorts the array on the calling goroutine and returns the terminal
// notification it posted. Panics from the sort loop are not recovered.
func (w *Worker) Run() models.Completion {
	defer w.tearDown()

	n := w.array.Len()
	start := time.Now()

	w.logger.Debug("SortWorker", "sort started", map[string]interface{}{
		"elements": n,
	})

	for i := 0; i < n-1; i++ {
		w.sink.Notify(models.Progress{Fraction: passFraction(i, n)})

		if w.cancelled.Load() {
			result := models.Cancelled{Pass: i}
			w.logger.Info("SortWorker", "sort cancelled", map[string]interface{}{
				"pass": i,
			})
			w.sink.Notify(result)
			return result
		}

		w.array.SortPass(n - i - 1)
	}

	result := models.Completed{
		Sample:  w.array.First(),
		Elapsed: time.Since(start),
	}

	w.logger.Info("SortWorker", "sort completed", map[string]interface{}{
		"elements":   n,
		"elapsed_ms": result.ElapsedMillis(),
	})

	w.sink.Notify(result)
	return result
}

// tearDown runs once, whichever path ends the worker
func (w *Worker) tearDown() {
	w.teardown.Do(func() {
		close(w.done)
		w.sink.WorkerTornDown(w)
	})
}

// passFraction is i/(n-2); arrays with a single pass report 1
func passFraction(i, n int) float64 {
	if n-2 <= 0 {
		return 1
	}
	return float64(i) / float64(n-2)
}
