package stroke

import (
	"math"
)

// Point is a 2D point. It mirrors scene.Point so callers convert with a
// plain type conversion.
type Point struct {
	X, Y float64
}

// Add returns p translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the angle of the vector in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// DefaultMiterLimit is used when Stroke.MiterLimit is not positive.
const DefaultMiterLimit = 4.0

// Stroke defines the style for stroke expansion.
type Stroke struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStroke returns a stroke with default settings.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: DefaultMiterLimit,
	}
}

// Polyline is one connected run of points. Closed polylines also stroke
// the edge from the last point back to the first.
type Polyline struct {
	Points []Point
	Closed bool
}

// Expander converts stroked polylines to filled rings.
type Expander struct {
	style Stroke

	// Tolerance for arc flattening.
	tolerance float64

	forward  *ringBuilder
	backward *ringBuilder
	output   [][]Point

	startPt   Point
	startNorm Vec2
	startTan  Vec2
	lastPt    Point
	lastTan   Vec2
	lastNorm  Vec2 // scaled by half the width, used for the end cap

	// Joins whose angle is below this threshold are drawn as plain
	// connections.
	joinThresh float64
}

// NewExpander creates an expander for style. A non-positive miter limit
// is replaced by DefaultMiterLimit.
func NewExpander(style Stroke) *Expander {
	if style.MiterLimit <= 0 {
		style.MiterLimit = DefaultMiterLimit
	}
	return &Expander{
		style:     style,
		tolerance: 0.25,
	}
}

// SetTolerance sets the arc flattening tolerance.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the outline rings of lines. Rings are implicitly closed
// and meant to be filled with the nonzero rule. Polylines without any
// non-zero-length edge produce nothing, and so does a non-positive width.
func (e *Expander) Expand(lines []Polyline) [][]Point {
	if !(e.style.Width > 0) {
		return nil
	}
	e.output = nil
	e.joinThresh = 2.0 * e.tolerance / e.style.Width

	for _, l := range lines {
		if len(l.Points) == 0 {
			continue
		}
		e.forward = &ringBuilder{}
		e.backward = &ringBuilder{}
		e.startPt = l.Points[0]
		e.lastPt = l.Points[0]
		for _, p := range l.Points[1:] {
			e.lineTo(p)
		}
		if l.Closed {
			e.lineTo(e.startPt)
			e.finishClosed()
		} else {
			e.finish()
		}
	}
	return e.output
}

func (e *Expander) lineTo(p Point) {
	if p == e.lastPt {
		return
	}
	tangent := p.Sub(e.lastPt)
	e.doJoin(tangent)
	e.lastTan = tangent
	e.doLine(tangent, p)
}

// doJoin handles joining the current segment to the previous one.
func (e *Expander) doJoin(tan0 Vec2) {
	scale := 0.5 * e.style.Width / tan0.Length()
	norm := tan0.Perp().Scale(scale)
	p0 := e.lastPt

	if e.forward.isEmpty() {
		e.forward.moveTo(p0.Add(norm.Neg()))
		e.backward.moveTo(p0.Add(norm))
		e.startTan = tan0
		e.startNorm = norm
		return
	}

	ab := e.lastTan
	cd := tan0
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// Nearly straight: connect without a join.
	if dot > 0.0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.backward.lineTo(p0.Add(norm))
		return
	}

	switch e.style.Join {
	case LineJoinBevel:
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.backward.lineTo(p0.Add(norm))
	case LineJoinMiter:
		e.miterJoin(p0, norm, ab, cd, cross, dot, hypot)
	case LineJoinRound:
		e.roundJoin(p0, norm, cross, dot)
	}
}

// miterJoin adds the miter point on the outer side of the corner when the
// miter length stays within the limit, and bevels otherwise.
func (e *Expander) miterJoin(p0 Point, norm, ab, cd Vec2, cross, dot, hypot float64) {
	limit := e.style.MiterLimit * e.style.MiterLimit
	if 2.0*hypot < (hypot+dot)*limit {
		lastNorm := ab.Perp().Scale(0.5 * e.style.Width / ab.Length())
		switch {
		case cross > 0.0:
			fpLast := p0.Add(lastNorm.Neg())
			fpThis := p0.Add(norm.Neg())
			h := ab.Cross(fpThis.Sub(fpLast)) / cross
			e.forward.lineTo(fpThis.Add(cd.Scale(-h)))
			e.backward.lineTo(p0)
		case cross < 0.0:
			fpLast := p0.Add(lastNorm)
			fpThis := p0.Add(norm)
			h := ab.Cross(fpThis.Sub(fpLast)) / cross
			e.backward.lineTo(fpThis.Add(cd.Scale(-h)))
			e.forward.lineTo(p0)
		}
	}
	e.forward.lineTo(p0.Add(norm.Neg()))
	e.backward.lineTo(p0.Add(norm))
}

// roundJoin sweeps an arc on the outer side from the previous normal to
// the current one.
func (e *Expander) roundJoin(p0 Point, norm Vec2, cross, dot float64) {
	lastNorm := e.lastTan.Perp().Scale(0.5 * e.style.Width / e.lastTan.Length())

	angle := math.Atan2(cross, dot)
	if angle > 0.0 {
		e.backward.lineTo(p0.Add(norm))
		e.arc(e.forward, p0, lastNorm.Neg(), angle)
	} else {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.arc(e.backward, p0, lastNorm, angle)
	}
}

// doLine extends both offset paths along a segment ending at p1.
func (e *Expander) doLine(tangent Vec2, p1 Point) {
	norm := tangent.Perp().Scale(0.5 * e.style.Width / tangent.Length())

	e.forward.lineTo(p1.Add(norm.Neg()))
	e.backward.lineTo(p1.Add(norm))
	e.lastPt = p1
	e.lastNorm = norm
}

// finish completes an open polyline with caps at both ends.
func (e *Expander) finish() {
	if e.forward.isEmpty() {
		return
	}
	out := &ringBuilder{pts: e.forward.pts}

	// lastNorm points toward the backward path; the cap starts on the
	// forward side.
	e.applyCap(out, e.lastPt, e.lastNorm.Neg(), false)
	e.appendReversed(out, e.backward)
	e.applyCap(out, e.startPt, e.startNorm, true)

	e.output = append(e.output, out.pts)
}

// finishClosed completes a closed polyline as an outer and an inner ring.
func (e *Expander) finishClosed() {
	if e.forward.isEmpty() {
		return
	}
	e.doJoin(e.startTan)

	e.output = append(e.output, e.forward.pts)

	back := &ringBuilder{}
	bp := e.backward.pts
	back.moveTo(bp[len(bp)-1])
	e.appendReversed(back, e.backward)
	e.output = append(e.output, back.pts)
}

// applyCap adds a cap at center. norm points from center to the current
// point of out. The closing cap ends on the ring start and emits nothing
// for butt caps.
func (e *Expander) applyCap(out *ringBuilder, center Point, norm Vec2, closing bool) {
	switch e.style.Cap {
	case LineCapButt:
		if !closing {
			out.lineTo(center.Add(norm.Neg()))
		}
	case LineCapRound:
		e.arc(out, center, norm, math.Pi)
	case LineCapSquare:
		out.lineTo(transformPoint(center, norm, Point{X: 1, Y: 1}))
		out.lineTo(transformPoint(center, norm, Point{X: -1, Y: 1}))
		if !closing {
			out.lineTo(transformPoint(center, norm, Point{X: -1, Y: 0}))
		}
	}
}

// arc appends points on the circle around center, starting after
// center+norm and sweeping by angle radians.
func (e *Expander) arc(out *ringBuilder, center Point, norm Vec2, angle float64) {
	radius := norm.Length()
	n := arcSegments(radius, angle, e.tolerance)
	a0 := norm.Angle()
	for i := 1; i <= n; i++ {
		a := a0 + angle*float64(i)/float64(n)
		out.lineTo(Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)})
	}
}

// arcSegments returns how many chords keep the sagitta of an arc of the
// given radius and sweep within tolerance.
func arcSegments(radius, angle, tolerance float64) int {
	angle = math.Abs(angle)
	if radius <= tolerance {
		return int(math.Max(1, math.Ceil(angle/(math.Pi/2))))
	}
	step := 2 * math.Acos(1-tolerance/radius)
	return int(math.Max(1, math.Ceil(angle/step)))
}

// transformPoint maps p through the frame with x axis norm and y axis
// norm rotated a quarter turn, centered at center.
func transformPoint(center Point, norm Vec2, p Point) Point {
	return Point{
		X: norm.X*p.X - norm.Y*p.Y + center.X,
		Y: norm.Y*p.X + norm.X*p.Y + center.Y,
	}
}

// appendReversed appends the points of rb in reverse order, skipping the
// last one, which the preceding cap already reached.
func (e *Expander) appendReversed(out *ringBuilder, rb *ringBuilder) {
	for i := len(rb.pts) - 2; i >= 0; i-- {
		out.lineTo(rb.pts[i])
	}
}

// ringBuilder accumulates the points of one ring.
type ringBuilder struct {
	pts []Point
}

func (b *ringBuilder) isEmpty() bool {
	return len(b.pts) == 0
}

func (b *ringBuilder) moveTo(p Point) {
	b.pts = append(b.pts[:0], p)
}

func (b *ringBuilder) lineTo(p Point) {
	b.pts = append(b.pts, p)
}
