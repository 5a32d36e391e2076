package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

type segment struct {
	x0, y0, x1, y1 float64
}

// RasterSurface is an in-memory Surface backed by an *image.RGBA. Strokes are
// one unit wide and pixel-snapped: a line at coordinate c covers [c-1, c),
// which is the gap the +1 cell offsets leave.
type RasterSurface struct {
	img  *image.RGBA
	path []segment

	curX, curY float64
	hasCur     bool
}

// NewRasterSurface allocates a w x h surface cleared to transparent black.
func NewRasterSurface(w, h int) *RasterSurface {
	return &RasterSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image.
func (s *RasterSurface) Image() *image.RGBA { return s.img }

// Bounds returns the surface's pixel bounds.
func (s *RasterSurface) Bounds() image.Rectangle { return s.img.Rect }

// BeginPath discards any path under construction.
func (s *RasterSurface) BeginPath() {
	s.path = s.path[:0]
	s.hasCur = false
}

// MoveTo starts a new subpath at (x, y).
func (s *RasterSurface) MoveTo(x, y float64) {
	s.curX, s.curY, s.hasCur = x, y, true
}

// LineTo adds a segment from the current point to (x, y).
func (s *RasterSurface) LineTo(x, y float64) {
	if s.hasCur {
		s.path = append(s.path, segment{x0: s.curX, y0: s.curY, x1: x, y1: y})
	}
	s.curX, s.curY, s.hasCur = x, y, true
}

// Stroke rasterizes the current path with color c.
func (s *RasterSurface) Stroke(c color.Color) {
	if len(s.path) == 0 {
		return
	}
	b := s.img.Rect
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, seg := range s.path {
		strokeSegment(z, seg)
	}
	z.Draw(s.img, b, image.NewUniform(toRGBA(c)), image.Point{})
}

func strokeSegment(z *vector.Rasterizer, seg segment) {
	switch {
	case seg.x0 == seg.x1:
		addRect(z, seg.x0-1, math.Min(seg.y0, seg.y1), seg.x0, math.Max(seg.y0, seg.y1))
	case seg.y0 == seg.y1:
		addRect(z, math.Min(seg.x0, seg.x1), seg.y0-1, math.Max(seg.x0, seg.x1), seg.y0)
	default:
		dx, dy := seg.x1-seg.x0, seg.y1-seg.y0
		l := math.Hypot(dx, dy)
		nx, ny := -dy/l/2, dx/l/2
		x0, y0 := seg.x0-0.5, seg.y0-0.5
		x1, y1 := seg.x1-0.5, seg.y1-0.5
		z.MoveTo(float32(x0+nx), float32(y0+ny))
		z.LineTo(float32(x1+nx), float32(y1+ny))
		z.LineTo(float32(x1-nx), float32(y1-ny))
		z.LineTo(float32(x0-nx), float32(y0-ny))
		z.ClosePath()
	}
}

func addRect(z *vector.Rasterizer, x0, y0, x1, y1 float64) {
	z.MoveTo(float32(x0), float32(y0))
	z.LineTo(float32(x1), float32(y0))
	z.LineTo(float32(x1), float32(y1))
	z.LineTo(float32(x0), float32(y1))
	z.ClosePath()
}

// FillRect fills the axis-aligned rectangle at (x, y) of size w x h,
// rounded to whole pixels.
func (s *RasterSurface) FillRect(x, y, w, h float64, c color.Color) {
	r := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
	fillRGBA(s.img, r, toRGBA(c))
}

// WritePNG encodes the surface as PNG.
func (s *RasterSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}
