package worker

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sort-visualizer/internal/models"
)

// gatedSink blocks the worker inside Notify until release is closed, which
// pins it at a known pass boundary.
type gatedSink struct {
	recordingSink
	handle  *Handle
	release chan struct{}
	entered chan struct{}
	once    sync.Once
}

func newGatedSink() *gatedSink {
	return &gatedSink{
		release: make(chan struct{}),
		entered: make(chan struct{}),
	}
}

func (s *gatedSink) Notify(n models.Notification) {
	s.recordingSink.Notify(n)
	if _, ok := n.(models.Progress); ok {
		s.once.Do(func() { close(s.entered) })
		<-s.release
	}
}

func (s *gatedSink) WorkerTornDown(w *Worker) {
	s.recordingSink.WorkerTornDown(w)
	if s.handle != nil {
		s.handle.Finished(w)
	}
}

func TestHandleStartRejectsSecondWorker(t *testing.T) {
	initial := []float64{0.4, 0.3, 0.2, 0.1}
	array := models.NewSharedArrayFrom(initial)
	sink := newGatedSink()
	h := NewHandle(array, sink, nil)
	sink.handle = h

	w, err := h.Start()
	require.NoError(t, err)
	<-sink.entered

	second, err := h.Start()
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrWorkerAlreadyRunning)

	// the running worker is still parked before its first pass
	assert.Equal(t, initial, array.Snapshot())
	assert.Equal(t, []float64{0}, sink.progress())
	assert.Same(t, w, h.Current())

	close(sink.release)
	h.Join()
	assert.False(t, h.Active())
	assert.True(t, array.IsSorted())
}

func TestHandleRequestCancelAndJoin(t *testing.T) {
	array := models.NewSharedArray(50, rand.New(rand.NewSource(3)))
	sink := newGatedSink()
	h := NewHandle(array, sink, nil)
	sink.handle = h

	_, err := h.Start()
	require.NoError(t, err)
	<-sink.entered

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.RequestCancelAndJoin()
	}()

	// cancellation is set while the worker is parked at pass 0
	require.Eventually(t, func() bool {
		w := h.Current()
		return w == nil || w.Cancelled()
	}, time.Second, time.Millisecond)
	close(sink.release)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RequestCancelAndJoin did not return")
	}

	assert.False(t, h.Active())
	all := sink.all()
	require.Len(t, all, 2)
	assert.Equal(t, models.Cancelled{Pass: 0}, all[1])
	assert.Len(t, sink.tornDown, 1)
}

func TestHandleCancelWithoutWorker(t *testing.T) {
	h := NewHandle(models.NewSharedArrayFrom([]float64{1}), &recordingSink{}, nil)

	assert.False(t, h.RequestCancel())
	h.RequestCancelAndJoin()
	h.Join()
	assert.False(t, h.Active())
}

func TestHandleFinishedIsIdempotent(t *testing.T) {
	array := models.NewSharedArrayFrom([]float64{0.2, 0.1, 0.3})
	sink := &recordingSink{}
	h := NewHandle(array, sink, nil)

	w, err := h.Start()
	require.NoError(t, err)
	<-w.Done()

	h.Finished(w)
	h.Finished(w)
	h.Finished(nil)
	assert.False(t, h.Active())

	// a stale worker cannot clear a newer one
	next, err := h.Start()
	require.NoError(t, err)
	h.Finished(w)
	assert.Same(t, next, h.Current())
	h.Join()
	assert.False(t, h.Active())
}

func TestHandleCreationFailures(t *testing.T) {
	empty := NewHandle(models.NewSharedArrayFrom(nil), &recordingSink{}, nil)
	_, err := empty.Start()
	assert.ErrorIs(t, err, ErrWorkerCreationFailed)
	assert.False(t, errors.Is(err, ErrWorkerAlreadyRunning))

	closed := NewHandle(models.NewSharedArrayFrom([]float64{0.1}), &recordingSink{}, nil)
	closed.Close()
	_, err = closed.Start()
	assert.ErrorIs(t, err, ErrWorkerCreationFailed)
	assert.False(t, closed.Active())
}
