package scene

// PathVerb represents a path construction command.
type PathVerb uint8

// Path verb constants.
const (
	// VerbMoveTo moves the current point without drawing.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a line to the specified point.
	VerbLineTo
	// VerbClose closes the current subpath.
	VerbClose
)

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Path is a polyline path. Verbs and points are stored separately; each
// MoveTo and LineTo consumes one point.
type Path struct {
	verbs  []PathVerb
	points []Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 8),
		points: make([]Point, 0, 8),
	}
}

// MoveTo begins a new subpath at the specified point.
func (p *Path) MoveTo(x, y float64) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, Point{X: x, Y: y})
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, Point{X: x, Y: y})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	return p
}

// Rectangle adds a closed rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float64) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// Polygon adds a closed subpath through pts. Fewer than two points add
// nothing.
func (p *Path) Polygon(pts []Point) *Path {
	if len(pts) < 2 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	return p.Close()
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb stream.
func (p *Path) Verbs() []PathVerb {
	return p.verbs
}

// Points returns the point stream.
func (p *Path) Points() []Point {
	return p.points
}

// Subpath is one connected run of points.
type Subpath struct {
	Points []Point
	Closed bool
}

// Subpaths splits the path at MoveTo verbs. Fills treat every subpath as
// closed; strokes only draw the closing edge of Closed subpaths.
func (p *Path) Subpaths() []Subpath {
	var out []Subpath
	var cur []Point
	flush := func(closed bool) {
		if len(cur) > 0 {
			out = append(out, Subpath{Points: cur, Closed: closed})
		}
		cur = nil
	}
	i := 0
	for _, v := range p.verbs {
		switch v {
		case VerbMoveTo:
			flush(false)
			cur = []Point{p.points[i]}
			i++
		case VerbLineTo:
			cur = append(cur, p.points[i])
			i++
		case VerbClose:
			flush(true)
		}
	}
	flush(false)
	return out
}
