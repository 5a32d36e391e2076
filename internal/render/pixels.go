package render

import (
	"image"
	"image/color"
)

// toRGBA converts any color to 8-bit premultiplied RGBA.
func toRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// fillRGBA writes c into every pixel of rect, clipped to img.
func fillRGBA(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	rect = rect.Intersect(img.Rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		base := img.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.Pix[base+0] = c.R
			img.Pix[base+1] = c.G
			img.Pix[base+2] = c.B
			img.Pix[base+3] = c.A
			base += 4
		}
	}
}
