package draw

import (
	"image"
	"math"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// alphaThreshold is the minimum 16-bit alpha for a sprite pixel to be drawn.
const alphaThreshold = 0x8000

// pixelBounds converts a logical rectangle to an inclusive pixel range.
func (c *Canvas) pixelBounds(minX, minY, maxX, maxY float64) (x0, y0, x1, y1 int) {
	x0 = max(0, int(math.Floor(minX*c.scaleX)))
	y0 = max(0, int(math.Floor(minY*c.scaleY)))
	x1 = min(c.termWidth-1, int(math.Floor(maxX*c.scaleX)))
	y1 = min(c.subPixelHeight-1, int(math.Floor(maxY*c.scaleY)))
	return x0, y0, x1, y1
}

// FillCircle draws a filled circle given in logical coordinates.
// Circles smaller than one pixel still mark the pixel under their center.
func (c *Canvas) FillCircle(center Point, radius float64, col Color) {
	x0, y0, x1, y1 := c.pixelBounds(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
	r2 := radius * radius
	drawn := false

	for py := y0; py <= y1; py++ {
		ly := (float64(py)+0.5)/c.scaleY - center.Y
		for px := x0; px <= x1; px++ {
			lx := (float64(px)+0.5)/c.scaleX - center.X
			if lx*lx+ly*ly <= r2 {
				c.setPixel(px, py, col)
				drawn = true
			}
		}
	}

	if !drawn {
		c.SetFloat(center.X, center.Y, col)
	}
}

// DrawImage draws img stretched over the logical rectangle starting at topLeft.
// Pixels are sampled nearest-neighbor; mostly transparent pixels are skipped.
func (c *Canvas) DrawImage(img image.Image, topLeft Point, width, height float64) {
	if img == nil || width <= 0 || height <= 0 {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}

	x0, y0, x1, y1 := c.pixelBounds(topLeft.X, topLeft.Y, topLeft.X+width, topLeft.Y+height)
	for py := y0; py <= y1; py++ {
		v := ((float64(py)+0.5)/c.scaleY - topLeft.Y) / height
		if v < 0 || v >= 1 {
			continue
		}
		iy := b.Min.Y + int(v*float64(b.Dy()))
		for px := x0; px <= x1; px++ {
			u := ((float64(px)+0.5)/c.scaleX - topLeft.X) / width
			if u < 0 || u >= 1 {
				continue
			}
			ix := b.Min.X + int(u*float64(b.Dx()))

			r, g, bl, a := img.At(ix, iy).RGBA()
			if a < alphaThreshold {
				continue
			}
			// RGBA returns alpha-premultiplied channels.
			c.setPixel(px, py, RGB(
				uint8(r*0xffff/a>>8),
				uint8(g*0xffff/a>>8),
				uint8(bl*0xffff/a>>8),
			))
		}
	}
}
