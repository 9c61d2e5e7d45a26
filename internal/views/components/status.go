package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows one line of status text
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar(initial string) *StatusBar {
	sb := &StatusBar{}
	sb.statusLabel = widget.NewLabel(initial)
	sb.container = container.NewHBox(sb.statusLabel)
	return sb
}

// SetStatus updates the status message. UI thread only.
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// ProgressBar maps a fraction in [0,1] onto a fixed display range
type ProgressBar struct {
	progressBar *widget.ProgressBar
	rangeMax    float64
}

// NewProgressBar creates a progress bar spanning 0..rangeMax
func NewProgressBar(rangeMax int) *ProgressBar {
	pb := &ProgressBar{
		progressBar: widget.NewProgressBar(),
		rangeMax:    float64(rangeMax),
	}
	pb.progressBar.Min = 0
	pb.progressBar.Max = pb.rangeMax
	pb.progressBar.TextFormatter = func() string { return "" }
	return pb
}

// SetProgress updates the progress value (0.0 to 1.0). UI thread only.
func (pb *ProgressBar) SetProgress(fraction float64) {
	if fraction < 0.0 {
		fraction = 0.0
	} else if fraction > 1.0 {
		fraction = 1.0
	}
	pb.progressBar.SetValue(fraction * pb.rangeMax)
}

// GetProgress returns the current value as a fraction
func (pb *ProgressBar) GetProgress() float64 {
	return pb.progressBar.Value / pb.rangeMax
}

// Widget returns the underlying widget
func (pb *ProgressBar) Widget() *widget.ProgressBar {
	return pb.progressBar
}
