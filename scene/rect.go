package scene

import "math"

// Point is a 2D point in screen space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is a rectangle given by its origin and extent. Width and Height
// may be negative when the rectangle was derived from a reversed axis;
// Normalize returns the equivalent rectangle with non-negative extent.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Normalize returns r with non-negative Width and Height.
func (r Rect) Normalize() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// MaxX returns the right edge of the normalized rectangle.
func (r Rect) MaxX() float64 {
	n := r.Normalize()
	return n.X + n.Width
}

// MaxY returns the bottom edge of the normalized rectangle.
func (r Rect) MaxY() float64 {
	n := r.Normalize()
	return n.Y + n.Height
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	n := r.Normalize()
	return x >= n.X && x <= n.X+n.Width &&
		y >= n.Y && y <= n.Y+n.Height
}

// Intersect returns the overlap of r and other. The result has zero
// extent when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	a, b := r.Normalize(), other.Normalize()
	x0 := math.Max(a.X, b.X)
	y0 := math.Max(a.Y, b.Y)
	x1 := math.Min(a.X+a.Width, b.X+b.Width)
	y1 := math.Min(a.Y+a.Height, b.Y+b.Height)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	a, b := r.Normalize(), other.Normalize()
	x0 := math.Min(a.X, b.X)
	y0 := math.Min(a.Y, b.Y)
	x1 := math.Max(a.X+a.Width, b.X+b.Width)
	y1 := math.Max(a.Y+a.Height, b.Y+b.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// boundsOf returns the bounding rectangle of pts.
func boundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
