package views

import (
	"sort-visualizer/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Layout configures the main view
type Layout struct {
	GridColumns   int
	GridWidth     float32
	GridHeight    float32
	ProgressRange int
}

// MainView is the sorting window: toolbar on top, grid in the middle and a
// status line at the bottom. Its methods run on the Fyne main goroutine.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	grid          *components.GridDisplay
	statusBar     *components.StatusBar

	startHandler func()
}

// NewMainView builds the view inside window and paints snapshots from source
func NewMainView(window fyne.Window, source components.SnapshotSource, layout Layout) *MainView {
	mv := &MainView{window: window}

	mv.toolbar = components.NewToolbar(layout.ProgressRange)
	mv.grid = components.NewGridDisplay(source, layout.GridColumns, layout.GridWidth, layout.GridHeight)
	mv.statusBar = components.NewStatusBar("Click Start.")

	mv.toolbar.SetStartHandler(func() {
		if mv.startHandler != nil {
			mv.startHandler()
		}
	})

	mv.buildLayout()
	return mv
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		container.NewPadded(mv.toolbar.GetContainer()),
		container.NewVBox(widget.NewSeparator(), mv.statusBar.GetContainer()),
		nil,
		nil,
		container.NewCenter(mv.grid.GetContainer()),
	)

	mv.window.SetContent(mv.mainContainer)
}

// SetStartHandler sets the handler for the start button
func (mv *MainView) SetStartHandler(handler func()) {
	mv.startHandler = handler
}

// SetRunning toggles the start button
func (mv *MainView) SetRunning(running bool) {
	mv.toolbar.SetRunning(running)
}

// SetProgress updates the progress bar with a fraction in [0,1]
func (mv *MainView) SetProgress(fraction float64) {
	mv.toolbar.ProgressBar().SetProgress(fraction)
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// RefreshGrid repaints the grid from the latest snapshot
func (mv *MainView) RefreshGrid() {
	mv.grid.Refresh()
}

// Destroy closes the window. The close intercept is bypassed.
func (mv *MainView) Destroy() {
	mv.window.Close()
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetToolbar returns the toolbar component
func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

// GetStatusBar returns the status bar component
func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}
