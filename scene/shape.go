package scene

// Shape is a geometric outline that can be converted to a path, bounded
// and hit tested.
type Shape interface {
	// ToPath converts the shape to a Path for painting.
	ToPath() *Path

	// Bounds returns the bounding rectangle of the shape.
	Bounds() Rect

	// Contains reports whether (x, y) lies inside the shape.
	Contains(x, y float64) bool
}

// RectShape represents an axis-aligned rectangle. Width and Height keep
// the sign they were built with; a zero extent is a valid degenerate
// rectangle that still paints its border.
type RectShape struct {
	Rect
}

// NewRectShape creates a new rectangle shape.
func NewRectShape(r Rect) *RectShape {
	return &RectShape{Rect: r}
}

// ToPath converts the rectangle to a Path.
func (r *RectShape) ToPath() *Path {
	return NewPath().Rectangle(r.X, r.Y, r.Width, r.Height)
}

// Bounds returns the normalized rectangle.
func (r *RectShape) Bounds() Rect {
	return r.Normalize()
}

// PolygonShape is a closed polygon.
type PolygonShape struct {
	Points []Point
}

// NewPolygonShape creates a polygon shape through pts.
func NewPolygonShape(pts []Point) *PolygonShape {
	return &PolygonShape{Points: pts}
}

// ToPath converts the polygon to a Path.
func (p *PolygonShape) ToPath() *Path {
	return NewPath().Polygon(p.Points)
}

// Bounds returns the bounding rectangle of the vertices.
func (p *PolygonShape) Bounds() Rect {
	return boundsOf(p.Points)
}

// Contains uses the nonzero winding rule, matching how the polygon is
// filled.
func (p *PolygonShape) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	winding := 0
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		if a.Y <= y {
			if b.Y > y && cross(a, b, x, y) > 0 {
				winding++
			}
		} else if b.Y <= y && cross(a, b, x, y) < 0 {
			winding--
		}
	}
	return winding != 0
}

// cross returns the z component of (b-a) x (p-a).
func cross(a, b Point, x, y float64) float64 {
	return (b.X-a.X)*(y-a.Y) - (x-a.X)*(b.Y-a.Y)
}

// PolylineShape is an open run of line segments. It has no interior, so
// it is only ever stroked and never hit.
type PolylineShape struct {
	Points []Point
}

// NewPolylineShape creates a polyline through pts.
func NewPolylineShape(pts []Point) *PolylineShape {
	return &PolylineShape{Points: pts}
}

// ToPath converts the polyline to an open Path.
func (l *PolylineShape) ToPath() *Path {
	p := NewPath()
	for i, pt := range l.Points {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	return p
}

// Bounds returns the bounding rectangle of the vertices.
func (l *PolylineShape) Bounds() Rect {
	return boundsOf(l.Points)
}

// Contains always returns false.
func (l *PolylineShape) Contains(_, _ float64) bool {
	return false
}
