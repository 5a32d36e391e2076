package render

import (
	"image"
	"image/color"

	"lifeview/internal/core"
)

// CellSize is the edge length of one cell in surface units. Cells sit on a
// pitch of CellSize+1, leaving a one-unit gridline between neighbours.
const CellSize = 10

var (
	GridColor  = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	DeadColor  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	AliveColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// Surface is the 2D raster target a GridRenderer paints into.
type Surface interface {
	Bounds() image.Rectangle
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
}

// SurfaceSize returns the pixel dimensions needed to draw a grid of size.
func SurfaceSize(size core.Size) (int, int) {
	return size.W*(CellSize+1) + 1, size.H*(CellSize+1) + 1
}

// CellOrigin returns the top-left corner of cell (row, col).
func CellOrigin(row, col int) (float64, float64) {
	return float64(col*(CellSize+1) + 1), float64(row*(CellSize+1) + 1)
}

// GridRenderer draws gridlines and cells from a packed cell buffer.
type GridRenderer struct {
	Grid  color.Color
	Alive color.Color
	Dead  color.Color
}

// NewGridRenderer returns a renderer using the default palette.
func NewGridRenderer() *GridRenderer {
	return &GridRenderer{Grid: GridColor, Alive: AliveColor, Dead: DeadColor}
}

// DrawGrid strokes every vertical and horizontal gridline as one path.
func (r *GridRenderer) DrawGrid(s Surface, size core.Size) {
	b := s.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	s.BeginPath()
	for i := 0; i <= size.W; i++ {
		x := float64(i*(CellSize+1) + 1)
		s.MoveTo(x, 0)
		s.LineTo(x, h)
	}
	for j := 0; j <= size.H; j++ {
		y := float64(j*(CellSize+1) + 1)
		s.MoveTo(0, y)
		s.LineTo(w, y)
	}
	s.Stroke(r.Grid)
}

// DrawCells fills every cell with the alive or dead color, row-major.
func (r *GridRenderer) DrawCells(s Surface, size core.Size, view []byte) {
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			c := r.Dead
			if core.Alive(view, core.Index(row, col, size.W)) {
				c = r.Alive
			}
			x, y := CellOrigin(row, col)
			s.FillRect(x, y, CellSize, CellSize, c)
		}
	}
}

// Render draws a full frame: gridlines, then cells.
func (r *GridRenderer) Render(s Surface, size core.Size, view []byte) {
	r.DrawGrid(s, size)
	r.DrawCells(s, size, view)
}
