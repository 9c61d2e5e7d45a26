// Package uithread models the single cooperative UI thread. All controller
// methods and rendering run through a Dispatcher, never concurrently.
package uithread

import (
	"fyne.io/fyne/v2"
)

// Dispatcher runs functions on the UI thread
type Dispatcher interface {
	// Do queues fn and returns immediately.
	Do(fn func())
	// DoAndWait runs fn and returns once it finished. Must not be called
	// from the UI thread itself.
	DoAndWait(fn func())
}

// FyneDispatcher hops onto the Fyne main goroutine
type FyneDispatcher struct{}

func (FyneDispatcher) Do(fn func())        { fyne.Do(fn) }
func (FyneDispatcher) DoAndWait(fn func()) { fyne.DoAndWait(fn) }
