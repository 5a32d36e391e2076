//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a RasterSurface into an ebiten image and draws it.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a surface of w x h pixels.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the surface pixels and draws them at (x, y) scaled by scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, src *RasterSurface, x, y float64, scale int) {
	b := src.Bounds()
	if b.Dx() != gp.w || b.Dy() != gp.h {
		gp.w, gp.h = b.Dx(), b.Dy()
		gp.img = ebiten.NewImage(gp.w, gp.h)
	}
	gp.img.WritePixels(src.Image().Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
