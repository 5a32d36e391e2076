//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifeview/internal/core"
	"lifeview/internal/input"
	"lifeview/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay outlines the cell under the cursor and labels its coordinates.
type Overlay struct {
	size     func() core.Size
	geometry func() input.Geometry
	pixel    *ebiten.Image
	tint     color.RGBA
}

// NewOverlay constructs an overlay reading the grid size and on-screen
// geometry on every draw.
func NewOverlay(size func() core.Size, geometry func() input.Geometry) *Overlay {
	o := &Overlay{size: size, geometry: geometry, tint: color.RGBA{R: 230, G: 60, B: 60, A: 255}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	g := o.geometry()
	mx, my := ebiten.CursorPosition()
	if float64(mx) < g.Left || float64(my) < g.Top || float64(mx) >= g.Left+g.DisplayW || float64(my) >= g.Top+g.DisplayH {
		return
	}
	cell := input.MapPointer(input.Pointer{X: float64(mx), Y: float64(my)}, g, o.size())

	sx := g.DisplayW / g.SurfaceW
	sy := g.DisplayH / g.SurfaceH
	x, y := render.CellOrigin(cell.Row, cell.Col)
	x = g.Left + (x-1)*sx
	y = g.Top + (y-1)*sy
	w := float64(render.CellSize+2) * sx
	h := float64(render.CellSize+2) * sy

	o.drawRect(screen, x, y, w, sy, o.tint)
	o.drawRect(screen, x, y+h-sy, w, sy, o.tint)
	o.drawRect(screen, x, y, sx, h, o.tint)
	o.drawRect(screen, x+w-sx, y, sx, h, o.tint)

	label := fmt.Sprintf("(%d, %d)", cell.Row, cell.Col)
	text.Draw(screen, label, basicfont.Face7x13, int(x+w)+4, int(y)+13, o.tint)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
