package object

import "github.com/tomz197/wheel/internal/physics"

// Enemy travels from the edge of the play area toward the wheel.
type Enemy struct {
	Pos     physics.Vec
	Segment Segment
	Radius  float64
}

// NewEnemy creates an enemy of the given segment at pos.
func NewEnemy(pos physics.Vec, seg Segment, radius float64) *Enemy {
	return &Enemy{
		Pos:     pos,
		Segment: seg,
		Radius:  radius,
	}
}

// Update moves the enemy ctx.Speed units toward ctx.Target.
// Enemies are never removed by their own update.
func (e *Enemy) Update(ctx UpdateContext) bool {
	e.Pos = physics.StepToward(e.Pos, ctx.Target, ctx.Speed)
	return false
}

// Bounds returns the bounding square of the enemy.
func (e *Enemy) Bounds() physics.Rect {
	return physics.SquareAround(e.Pos, e.Radius)
}

// CollidesWith reports whether the enemy's bounding square overlaps r.
func (e *Enemy) CollidesWith(r physics.Rect) bool {
	return e.Bounds().Intersects(r)
}

// Draw renders the enemy as a filled circle in its segment color.
func (e *Enemy) Draw(ctx DrawContext) {
	ctx.Canvas.FillCircle(toPoint(e.Pos), e.Radius, e.Segment.Color())
}
