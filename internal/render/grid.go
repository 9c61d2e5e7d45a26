// Package render paints array snapshots as a grid of coloured cells.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

var (
	lowColor  = color.RGBA{R: 20, G: 24, B: 82, A: 255}
	highColor = color.RGBA{R: 255, G: 214, B: 10, A: 255}
)

// Layout describes how a canvas is split into square cells
type Layout struct {
	Columns  int
	Rows     int
	CellSize int
}

// Cells returns the number of cells in the layout
func (l Layout) Cells() int {
	return l.Columns * l.Rows
}

// NewLayout fits columns square cells across width and as many rows as
// height allows.
func NewLayout(columns, width, height int) Layout {
	if columns <= 0 || width <= 0 || height <= 0 {
		return Layout{}
	}
	size := width / columns
	if size < 1 {
		size = 1
		columns = width
	}
	return Layout{
		Columns:  columns,
		Rows:     height / size,
		CellSize: size,
	}
}

// Buckets partitions snapshot into cells contiguous buckets and returns the
// first value of each. Cells beyond the snapshot length repeat the last
// element's bucket so short arrays still fill the grid.
func Buckets(snapshot []float64, cells int) []float64 {
	if cells <= 0 || len(snapshot) == 0 {
		return nil
	}

	out := make([]float64, cells)
	n := len(snapshot)
	for i := range out {
		idx := i * n / cells
		if idx >= n {
			idx = n - 1
		}
		out[i] = snapshot[idx]
	}
	return out
}

// Color maps a value in [0,1] onto the grid palette
func Color(v float64) color.RGBA {
	if math.IsNaN(v) || v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*v))
	}
	return color.RGBA{
		R: lerp(lowColor.R, highColor.R),
		G: lerp(lowColor.G, highColor.G),
		B: lerp(lowColor.B, highColor.B),
		A: 255,
	}
}

// Grid renders snapshot into a width x height image with columns cells per
// row. It only reads the snapshot it is given.
func Grid(snapshot []float64, columns, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	layout := NewLayout(columns, width, height)
	values := Buckets(snapshot, layout.Cells())
	for i, v := range values {
		x := (i % layout.Columns) * layout.CellSize
		y := (i / layout.Columns) * layout.CellSize
		cell := image.Rect(x, y, x+layout.CellSize, y+layout.CellSize)
		draw.Draw(img, cell, &image.Uniform{C: Color(v)}, image.Point{}, draw.Src)
	}
	return img
}
