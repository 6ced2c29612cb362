package object

import (
	"image"

	"github.com/tomz197/wheel/internal/physics"
)

// Wheel is the stationary target in the middle of the play area.
// Its collision box is the sprite's rectangle centered on Center.
type Wheel struct {
	Center physics.Vec
	Sprite image.Image
	Width  float64
	Height float64
}

// NewWheel creates a wheel at center using the sprite's pixel size as its logical size.
func NewWheel(center physics.Vec, sprite image.Image) *Wheel {
	b := sprite.Bounds()
	return &Wheel{
		Center: center,
		Sprite: sprite,
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
	}
}

// Bounds returns the collision rectangle.
func (w *Wheel) Bounds() physics.Rect {
	return physics.RectFromCenter(w.Center, w.Width, w.Height)
}

// Update is a no-op; the wheel never moves.
func (w *Wheel) Update(_ UpdateContext) bool {
	return false
}

// Draw blits the sprite centered on the wheel position.
func (w *Wheel) Draw(ctx DrawContext) {
	b := w.Bounds()
	ctx.Canvas.DrawImage(w.Sprite, toPoint(b.Min), w.Width, w.Height)
}
