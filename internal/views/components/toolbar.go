package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const progressBarWidth = 320

// Toolbar holds the start button and the progress bar
type Toolbar struct {
	container    *fyne.Container
	startButton  *widget.Button
	progressBar  *ProgressBar
	startHandler func()
}

// NewToolbar creates the toolbar. The progress bar spans progressRange steps.
func NewToolbar(progressRange int) *Toolbar {
	t := &Toolbar{}
	t.startButton = widget.NewButton("Start", func() {
		if t.startHandler != nil {
			t.startHandler()
		}
	})
	t.startButton.Importance = widget.HighImportance
	t.progressBar = NewProgressBar(progressRange)

	// fixed width next to the button
	barSize := fyne.NewSize(progressBarWidth, t.progressBar.Widget().MinSize().Height)
	bar := container.New(layout.NewGridWrapLayout(barSize), t.progressBar.Widget())
	t.container = container.NewHBox(t.startButton, bar)
	return t
}

// SetStartHandler sets the handler for start requests
func (t *Toolbar) SetStartHandler(handler func()) {
	t.startHandler = handler
}

// SetRunning disables the start button while a sort is in flight
func (t *Toolbar) SetRunning(running bool) {
	if running {
		t.startButton.Disable()
	} else {
		t.startButton.Enable()
	}
}

// IsStartEnabled reports whether the start button accepts taps
func (t *Toolbar) IsStartEnabled() bool {
	return !t.startButton.Disabled()
}

// ProgressBar returns the toolbar's progress bar
func (t *Toolbar) ProgressBar() *ProgressBar {
	return t.progressBar
}

// StartButton returns the start button
func (t *Toolbar) StartButton() *widget.Button {
	return t.startButton
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
