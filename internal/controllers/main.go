package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"sort-visualizer/internal/events"
	"sort-visualizer/internal/logger"
	"sort-visualizer/internal/models"
	"sort-visualizer/internal/uithread"
	"sort-visualizer/internal/worker"
)

// ErrShuttingDown is returned when a sort is requested after close
var ErrShuttingDown = errors.New("window is closing")

// View is the part of the UI the controller drives. All methods are called
// on the UI thread.
type View interface {
	SetStartHandler(handler func())
	SetRunning(running bool)
	SetProgress(fraction float64)
	UpdateStatus(status string)
	RefreshGrid()
}

// Window is destroyed once no worker remains
type Window interface {
	Destroy()
}

// Options tune the controller
type Options struct {
	RefreshInterval time.Duration
	// CloseWhenDone requests close after a run finishes. Used headless.
	CloseWhenDone bool
}

// MainController owns the shared array and the worker handle, and reacts to
// worker notifications on the UI thread.
type MainController struct {
	array      *models.SharedArray
	handle     *worker.Handle
	dispatcher uithread.Dispatcher
	inbox      *events.Inbox
	logger     logger.Logger
	options    Options

	// UI thread only
	state     models.ControllerState
	mainView  View
	window    Window
	destroyed bool

	ctx         context.Context
	cancel      context.CancelFunc
	destroyedCh chan struct{}
	startOnce   sync.Once
}

// NewMainController creates an idle controller for array
func NewMainController(
	array *models.SharedArray,
	dispatcher uithread.Dispatcher,
	log logger.Logger,
	options Options,
) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if options.RefreshInterval <= 0 {
		options.RefreshInterval = 150 * time.Millisecond
	}

	ctx, cancel := context.WithCancel(context.Background())
	mc := &MainController{
		array:       array,
		dispatcher:  dispatcher,
		inbox:       events.NewInbox(),
		logger:      log,
		options:     options,
		state:       models.StateIdle,
		ctx:         ctx,
		cancel:      cancel,
		destroyedCh: make(chan struct{}),
	}
	mc.handle = worker.NewHandle(array, mc, log)
	return mc
}

// SetMainView associates the view and routes its start button here
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	view.SetStartHandler(func() {
		_ = mc.StartSorting()
	})
}

// SetWindow sets the window destroyed on close
func (mc *MainController) SetWindow(window Window) {
	mc.window = window
}

// Start launches the notification pump and the repaint timer
func (mc *MainController) Start() {
	mc.startOnce.Do(func() {
		pump := events.NewPump(mc.inbox, mc.dispatcher, mc.handleNotification)
		go pump.Run(mc.ctx)
		go mc.runRepaintTimer()

		mc.logger.Debug("MainController", "controller started", map[string]interface{}{
			"elements":         mc.array.Len(),
			"refresh_interval": mc.options.RefreshInterval.String(),
		})
	})
}

// State returns the controller state. UI thread only.
func (mc *MainController) State() models.ControllerState {
	return mc.state
}

// Handle exposes the worker handle
func (mc *MainController) Handle() *worker.Handle {
	return mc.handle
}

// Destroyed is closed once the window has been destroyed
func (mc *MainController) Destroyed() <-chan struct{} {
	return mc.destroyedCh
}

// StartSorting handles a start request. Anything but Idle is refused with a
// status message and leaves the running sort alone.
func (mc *MainController) StartSorting() error {
	switch mc.state {
	case models.StateRunning:
		mc.updateStatus("Sorting is already in progress.")
		return worker.ErrWorkerAlreadyRunning
	case models.StateShuttingDown:
		mc.updateStatus("Closing...")
		return ErrShuttingDown
	}

	mc.state = models.StateRunning
	if _, err := mc.handle.Start(); err != nil {
		mc.state = models.StateIdle
		mc.handleError("Could not create thread.", err)
		return err
	}

	if mc.mainView != nil {
		mc.mainView.SetRunning(true)
		mc.mainView.SetProgress(0)
	}
	mc.updateStatus(fmt.Sprintf("Sorting the array of %d elements...", mc.array.Len()))

	mc.logger.Info("MainController", "sorting started", map[string]interface{}{
		"elements": mc.array.Len(),
	})
	return nil
}

// HandleProgress updates the progress bar while a run is in flight. Late
// progress after a close request is ignored.
func (mc *MainController) HandleProgress(p models.Progress) {
	if mc.state != models.StateRunning || mc.mainView == nil {
		return
	}
	mc.mainView.SetProgress(p.Fraction)
}

// HandleCompletion processes the single terminal notification of a run. The
// worker posted it last, so joining here only waits for its return path.
func (mc *MainController) HandleCompletion(c models.Completion) {
	mc.updateStatus(c.Message())
	mc.handle.Join()

	if mc.mainView != nil {
		mc.mainView.SetRunning(false)
	}

	mc.logger.Info("MainController", "sorting finished", map[string]interface{}{
		"status":  c.Status().String(),
		"message": c.Message(),
	})

	switch mc.state {
	case models.StateShuttingDown:
		mc.destroy()
	case models.StateRunning:
		mc.state = models.StateIdle
		if mc.options.CloseWhenDone {
			mc.RequestClose()
		}
	}
}

// RequestClose handles a window close request. With a sort in flight the
// close is deferred: the worker is asked to stop and the window is destroyed
// when its terminal notification arrives.
func (mc *MainController) RequestClose() {
	if mc.destroyed || mc.state == models.StateShuttingDown {
		return
	}

	if mc.state != models.StateRunning {
		mc.logger.Info("MainController", "close requested while idle", nil)
		mc.destroy()
		return
	}

	mc.state = models.StateShuttingDown
	mc.handle.RequestCancel()
	mc.updateStatus("Stopping...")

	mc.logger.Info("MainController", "close deferred until worker stops", nil)
}

// Shutdown closes the window from outside the UI thread and waits for it.
// Safe to call from signal handlers.
func (mc *MainController) Shutdown() {
	mc.dispatcher.Do(mc.RequestClose)
	mc.handle.RequestCancelAndJoin()
	<-mc.destroyedCh
}

// Notify implements worker.Sink. Called on the worker goroutine.
func (mc *MainController) Notify(n models.Notification) {
	mc.inbox.Post(n)
}

// WorkerTornDown implements worker.Sink. Called on the worker goroutine.
func (mc *MainController) WorkerTornDown(w *worker.Worker) {
	mc.handle.Finished(w)
	mc.logger.Debug("MainController", "worker torn down", nil)
}

func (mc *MainController) handleNotification(n models.Notification) {
	if mc.destroyed {
		return
	}

	switch v := n.(type) {
	case models.Progress:
		mc.HandleProgress(v)
	case models.Completion:
		mc.HandleCompletion(v)
	}
}

func (mc *MainController) runRepaintTimer() {
	ticker := time.NewTicker(mc.options.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.dispatcher.Do(mc.repaint)
		case <-mc.ctx.Done():
			return
		}
	}
}

func (mc *MainController) repaint() {
	if mc.destroyed || mc.mainView == nil {
		return
	}
	mc.mainView.RefreshGrid()
}

// destroy tears the window down. Only reached once no worker remains.
func (mc *MainController) destroy() {
	mc.state = models.StateShuttingDown
	mc.destroyed = true

	mc.handle.Close()
	mc.cancel()
	mc.inbox.Close()

	if mc.window != nil {
		mc.window.Destroy()
	}
	close(mc.destroyedCh)

	mc.logger.Info("MainController", "window destroyed", nil)
}

func (mc *MainController) updateStatus(status string) {
	if mc.mainView != nil {
		mc.mainView.UpdateStatus(status)
	}
}

// handleError surfaces err on the status line and in the log
func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{
		"title": title,
	})
	mc.updateStatus(title)
}
