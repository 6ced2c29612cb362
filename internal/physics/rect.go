package physics

// Rect is an axis-aligned rectangle. Min is the top-left corner.
type Rect struct {
	Min, Max Vec
}

// RectFromCenter builds a rectangle of the given size centered on c.
func RectFromCenter(c Vec, width, height float64) Rect {
	return Rect{
		Min: Vec{X: c.X - width/2, Y: c.Y - height/2},
		Max: Vec{X: c.X + width/2, Y: c.Y + height/2},
	}
}

// SquareAround returns the bounding square of a circle.
func SquareAround(c Vec, radius float64) Rect {
	return RectFromCenter(c, 2*radius, 2*radius)
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Intersects reports whether r and o overlap.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}
