// Package axis defines the contract the break renderer needs from an axis
// and its value scale, and provides a linear reference implementation.
package axis

// Break is one collapsed or expandable sub-range of an axis domain.
type Break struct {
	// Start and End delimit the collapsed interval in data space.
	Start, End float64

	// Expanded breaks are mapped like any other part of the domain and
	// are never drawn as break areas.
	Expanded bool

	// Gap is the data-space width a collapsed break keeps on the axis.
	// Break-area geometry does not adjust for it.
	Gap float64
}

// Span returns End - Start.
func (b Break) Span() float64 {
	return b.End - b.Start
}

// BreakSet is the break bookkeeping owned by an axis scale.
type BreakSet interface {
	// IsBlank reports whether the scale has nothing to map.
	IsBlank() bool

	// Breaks returns the configured breaks in enumeration order.
	Breaks() []Break

	// ExpandBreak marks the break delimited by start and end as expanded.
	ExpandBreak(start, end float64)
}

// Axis maps data values to screen coordinates.
type Axis interface {
	IsHorizontal() bool

	// DataToCoord maps a data value to a coordinate local to the axis.
	DataToCoord(v float64) float64

	// ToGlobalCoord maps a local coordinate to screen space.
	ToGlobalCoord(c float64) float64

	// Scale returns the break bookkeeping of the axis value scale.
	Scale() BreakSet
}

// Orientation is the direction an axis runs in.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Cartesian is an axis of a rectangular coordinate system. Local
// coordinates run from Extent[0] to Extent[1]; global coordinates add the
// offset of the plot rectangle.
type Cartesian struct {
	orient Orientation
	scale  *Scale
	extent [2]float64
	offset float64
}

var _ Axis = (*Cartesian)(nil)

// NewCartesian creates an axis over scale.
func NewCartesian(orient Orientation, scale *Scale) *Cartesian {
	return &Cartesian{orient: orient, scale: scale}
}

// Orientation returns the axis direction.
func (a *Cartesian) Orientation() Orientation { return a.orient }

// IsHorizontal implements Axis.
func (a *Cartesian) IsHorizontal() bool { return a.orient == Horizontal }

// SetExtent sets the local coordinate range. Vertical value axes usually
// use (height, 0) so that larger values sit higher on screen.
func (a *Cartesian) SetExtent(start, end float64) {
	a.extent = [2]float64{start, end}
}

// Extent returns the local coordinate range.
func (a *Cartesian) Extent() (start, end float64) {
	return a.extent[0], a.extent[1]
}

// SetOffset sets the local-to-global translation.
func (a *Cartesian) SetOffset(off float64) { a.offset = off }

// DataToCoord implements Axis.
func (a *Cartesian) DataToCoord(v float64) float64 {
	t := a.scale.Normalize(v)
	return a.extent[0] + t*(a.extent[1]-a.extent[0])
}

// ToGlobalCoord implements Axis.
func (a *Cartesian) ToGlobalCoord(c float64) float64 {
	return c + a.offset
}

// ToLocalCoord is the inverse of ToGlobalCoord.
func (a *Cartesian) ToLocalCoord(c float64) float64 {
	return c - a.offset
}

// Scale implements Axis.
func (a *Cartesian) Scale() BreakSet { return a.scale }

// LinearScale returns the concrete scale.
func (a *Cartesian) LinearScale() *Scale { return a.scale }
