// Package object holds the game entities: segments, enemies, the wheel,
// the enemy spawner and visual effects.
package object

import (
	"math/rand"

	"github.com/tomz197/wheel/internal/draw"
	"github.com/tomz197/wheel/internal/physics"
)

// Screen describes the logical play area.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen creates a screen of the given size centered at its midpoint.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// Center returns the screen center as a vector.
func (s Screen) Center() physics.Vec {
	return physics.Vec{X: float64(s.CenterX), Y: float64(s.CenterY)}
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Target  physics.Vec // Point enemies travel toward
	Speed   float64     // Enemy speed in logical units per frame
	Rand    *rand.Rand
	Emitter Emitter
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas
}

// Emitter accepts objects created during an update, e.g. effect particles.
type Emitter interface {
	Emit(obj Object)
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object by one frame. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw draws the object onto the canvas.
	Draw(ctx DrawContext)
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

func toPoint(v physics.Vec) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}
