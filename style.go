package ggchart

// ItemStyle is a resolved paint style for one shape.
// A nil Fill or Stroke disables that part of the paint.
type ItemStyle struct {
	Fill      Brush
	Stroke    Brush
	LineWidth float64

	// Cap, Join and MiterLimit shape the stroke outline. The zero values
	// give butt caps and miter joins with the default limit.
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64

	// Decal is painted over Fill when set.
	Decal Brush
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

// HasStroke reports whether the style draws a border.
func (s ItemStyle) HasStroke() bool {
	return s.Stroke != nil && s.LineWidth > 0
}

// BreakAreaStyle is the break-area background style of an axis: the item
// style plus an optional decal descriptor that is turned into a pattern
// once per redraw.
type BreakAreaStyle struct {
	Background ItemStyle
	Decal      *Decal
}
