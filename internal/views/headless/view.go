// Package headless renders the sorting window to the log instead of a screen.
package headless

import (
	"math"
	"sync"

	"sort-visualizer/internal/logger"
	"sort-visualizer/internal/render"
)

const component = "HeadlessView"

// SnapshotSource yields a point-in-time copy of the values to paint
type SnapshotSource interface {
	Snapshot() []float64
}

// View logs status and throttled progress, and renders frames off screen.
// All methods except Done run on the UI loop.
type View struct {
	source  SnapshotSource
	columns int
	width   int
	height  int
	logger  logger.Logger

	startHandler func()
	status       string
	running      bool
	lastStep     int
	frames       int

	destroyOnce sync.Once
	destroyed   chan struct{}
}

// NewView creates a headless view painting width x height frames
func NewView(source SnapshotSource, columns, width, height int, log logger.Logger) *View {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &View{
		source:    source,
		columns:   columns,
		width:     width,
		height:    height,
		logger:    log,
		lastStep:  -1,
		destroyed: make(chan struct{}),
	}
}

func (v *View) SetStartHandler(handler func()) {
	v.startHandler = handler
}

// PressStart behaves like a click on the start button
func (v *View) PressStart() {
	if v.running || v.startHandler == nil {
		return
	}
	v.startHandler()
}

func (v *View) SetRunning(running bool) {
	v.running = running
	if running {
		v.lastStep = -1
	}
}

// SetProgress logs once per ten percent
func (v *View) SetProgress(fraction float64) {
	step := int(math.Floor(fraction * 10))
	if step <= v.lastStep {
		return
	}
	v.lastStep = step
	v.logger.Info(component, "progress", map[string]interface{}{
		"percent": step * 10,
	})
}

func (v *View) UpdateStatus(status string) {
	v.status = status
	v.logger.Info(component, status, nil)
}

// RefreshGrid renders a frame from the latest snapshot
func (v *View) RefreshGrid() {
	frame := render.Grid(v.source.Snapshot(), v.columns, v.width, v.height)
	v.frames++
	v.logger.Debug(component, "frame rendered", map[string]interface{}{
		"frame":  v.frames,
		"width":  frame.Bounds().Dx(),
		"height": frame.Bounds().Dy(),
	})
}

// Destroy marks the view closed
func (v *View) Destroy() {
	v.destroyOnce.Do(func() {
		close(v.destroyed)
	})
}

// Done is closed once the view was destroyed
func (v *View) Done() <-chan struct{} {
	return v.destroyed
}

// Status returns the last status line
func (v *View) Status() string {
	return v.status
}

// Frames returns how many frames were rendered
func (v *View) Frames() int {
	return v.frames
}
