// Package physics provides vector math, distance and collision utilities.
package physics

import "math"

// Vec is a 2D point or direction in logical play-area units.
type Vec struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector pointing along v.
// The zero vector is returned unchanged.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Polar returns the point at the given angle (radians) and radius from center.
func Polar(center Vec, angle, radius float64) Vec {
	return Vec{
		X: center.X + math.Cos(angle)*radius,
		Y: center.Y + math.Sin(angle)*radius,
	}
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return b.Sub(a).Length()
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vec) float64 {
	d := b.Sub(a)
	return d.X*d.X + d.Y*d.Y
}

// StepToward moves from pos toward target by at most step units.
// A position already at the target does not move, and the step never
// carries past the target.
func StepToward(pos, target Vec, step float64) Vec {
	dir := target.Sub(pos)
	dist := dir.Length()
	if dist == 0 {
		return pos
	}
	if step >= dist {
		return target
	}
	return pos.Add(dir.Scale(step / dist))
}
