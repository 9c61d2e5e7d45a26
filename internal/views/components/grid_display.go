package components

import (
	"image"
	"image/color"

	"sort-visualizer/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// SnapshotSource yields a point-in-time copy of the values to paint
type SnapshotSource interface {
	Snapshot() []float64
}

// GridDisplay paints the shared array as a grid of coloured squares
type GridDisplay struct {
	container *fyne.Container
	raster    *canvas.Raster
	source    SnapshotSource
	columns   int
}

// NewGridDisplay creates a grid of columns squares per row, sized width x height
func NewGridDisplay(source SnapshotSource, columns int, width, height float32) *GridDisplay {
	gd := &GridDisplay{
		source:  source,
		columns: columns,
	}

	gd.raster = canvas.NewRaster(gd.draw)
	gd.raster.SetMinSize(fyne.NewSize(width, height))

	background := canvas.NewRectangle(color.Black)
	gd.container = container.NewStack(background, gd.raster)
	return gd
}

// draw runs on Fyne's render path. The array lock is held only while the
// snapshot is copied.
func (gd *GridDisplay) draw(w, h int) image.Image {
	return render.Grid(gd.source.Snapshot(), gd.columns, w, h)
}

// Refresh schedules a repaint from the latest snapshot
func (gd *GridDisplay) Refresh() {
	gd.raster.Refresh()
}

// GetContainer returns the grid container
func (gd *GridDisplay) GetContainer() *fyne.Container {
	return gd.container
}
