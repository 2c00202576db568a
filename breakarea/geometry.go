package breakarea

import (
	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/scene"
)

// Sawtooth tooth period along the plot width and amplitude across the
// break edge, in pixels.
const (
	SawtoothPeriod    = 10.0
	SawtoothAmplitude = 10.0
)

// coords returns the screen coordinates of a break's bounds.
func coords(ax axis.Axis, b axis.Break) (start, end float64) {
	start = ax.ToGlobalCoord(ax.DataToCoord(b.Start))
	end = ax.ToGlobalCoord(ax.DataToCoord(b.End))
	return start, end
}

// RectFor returns the screen rectangle covered by b: the break span along
// the axis, the full plot extent across it. A break whose bounds map to
// the same coordinate yields a zero-extent rectangle, which still paints
// its border as a line.
//
// The caller filters expanded breaks and blank scales.
func RectFor(ax axis.Axis, plot scene.Rect, b axis.Break) scene.Rect {
	start, end := coords(ax, b)
	if ax.IsHorizontal() {
		return scene.Rect{X: start, Y: plot.Y, Width: end - start, Height: plot.Height}
	}
	return scene.Rect{X: plot.X, Y: start, Width: plot.Width, Height: end - start}
}

// SawtoothPoints returns a closed polygon spanning [x, x+width] across and
// [startCoord, endCoord] along a vertical axis. Both horizontal edges are
// zigzags of period dh and peak-to-peak amplitude dv centered on the
// nominal edge. The walk may overshoot x+width by up to dh; the clip path
// of the enclosing group trims it.
//
// The first and last points are both (x, startCoord).
func SawtoothPoints(x, width, startCoord, endCoord, dh, dv float64) []scene.Point {
	n := int(width/(2*dh)) + 1
	pts := make([]scene.Point, 0, 4*n+3)
	pts = append(pts, scene.Pt(x, startCoord))

	y := startCoord
	px := x
	for ; px <= x+width; px += dh {
		pts = append(pts, scene.Pt(px, y+dv/2))
		px += dh
		pts = append(pts, scene.Pt(px, y-dv/2))
	}

	y = endCoord
	px -= dh
	pts = append(pts, scene.Pt(px, y))
	for ; px >= x; px -= dh {
		pts = append(pts, scene.Pt(px, y-dv/2))
		px -= dh
		pts = append(pts, scene.Pt(px, y+dv/2))
	}

	px += dh
	pts = append(pts, scene.Pt(px, startCoord))
	return pts
}

// ClipShape returns the shape drawn for b in the clip group: the RectFor
// rectangle on horizontal axes, a sawtooth polygon on vertical ones.
func ClipShape(ax axis.Axis, plot scene.Rect, b axis.Break) scene.Shape {
	if ax.IsHorizontal() {
		return scene.NewRectShape(RectFor(ax, plot, b))
	}
	start, end := coords(ax, b)
	return scene.NewPolygonShape(SawtoothPoints(plot.X, plot.Width, start, end,
		SawtoothPeriod, SawtoothAmplitude))
}
