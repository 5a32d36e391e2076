// Package input turns pointer events on the drawing surface into grid cells
// and engine actions.
package input

import (
	"math"

	"lifeview/internal/core"
	"lifeview/internal/render"
)

// Pointer is a click position in display coordinates plus held modifiers.
type Pointer struct {
	X, Y float64
	Mods Modifiers
}

// Geometry relates the surface's logical pixel size to where and how large
// it is displayed.
type Geometry struct {
	Left, Top          float64
	DisplayW, DisplayH float64
	SurfaceW, SurfaceH float64
}

// Unscaled returns the geometry of a surface displayed 1:1 at the origin.
func Unscaled(w, h int) Geometry {
	return Geometry{
		DisplayW: float64(w),
		DisplayH: float64(h),
		SurfaceW: float64(w),
		SurfaceH: float64(h),
	}
}

// Cell is a grid coordinate.
type Cell struct {
	Row, Col int
}

// MapPointer converts a display position to the grid cell under it, clamped
// to the grid.
func MapPointer(p Pointer, g Geometry, size core.Size) Cell {
	scaleX := g.SurfaceW / g.DisplayW
	scaleY := g.SurfaceH / g.DisplayH

	x := (p.X - g.Left) * scaleX
	y := (p.Y - g.Top) * scaleY

	pitch := float64(render.CellSize + 1)
	return Cell{
		Row: clamp(int(math.Floor(y/pitch)), size.H-1),
		Col: clamp(int(math.Floor(x/pitch)), size.W-1),
	}
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
