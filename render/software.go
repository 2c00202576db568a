// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/internal/stroke"
	"github.com/gogpu/ggchart/scene"
)

// NewCanvas creates a w x h image filled with bg.
func NewCanvas(w, h int, bg ggchart.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if !bg.IsTransparent() {
		xdraw.Draw(img, img.Bounds(), image.NewUniform(bg.Color()), image.Point{}, xdraw.Src)
	}
	return img
}

// Draw paints node and its subtree onto dst in paint order.
func Draw(dst *image.RGBA, node scene.Node) {
	s := &state{dst: dst, size: dst.Bounds().Size()}
	s.draw(node, nil)
}

type state struct {
	dst  *image.RGBA
	size image.Point
}

func (s *state) draw(node scene.Node, clip *image.Alpha) {
	switch n := node.(type) {
	case *scene.Group:
		if cp := n.ClipPath(); cp != nil {
			m := s.coverage(rings(cp.ToPath().Subpaths()))
			clip = intersect(clip, m)
		}
		for _, c := range n.Children() {
			s.draw(c, clip)
		}
	case *scene.ShapeNode:
		s.drawShape(n, clip)
	}
}

func (s *state) drawShape(n *scene.ShapeNode, clip *image.Alpha) {
	st := n.Style
	subpaths := n.Shape.ToPath().Subpaths()
	if st.Fill != nil || st.Decal != nil {
		cov := intersect(clip, s.coverage(rings(subpaths)))
		if st.Fill != nil {
			s.paint(cov, st.Fill)
		}
		if st.Decal != nil {
			s.paint(cov, st.Decal)
		}
	}
	if st.HasStroke() {
		s.paint(intersect(clip, s.coverage(strokeRings(subpaths, st))), st.Stroke)
	}
}

// coverage rasterizes closed polygons into an anti-aliased mask.
func (s *state) coverage(polys [][]scene.Point) *image.Alpha {
	mask := image.NewAlpha(image.Rectangle{Max: s.size})
	r := vector.NewRasterizer(s.size.X, s.size.Y)
	for _, ring := range polys {
		if len(ring) < 2 {
			continue
		}
		r.MoveTo(float32(ring[0].X), float32(ring[0].Y))
		for _, p := range ring[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
	}
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func (s *state) paint(mask *image.Alpha, b ggchart.Brush) {
	var src image.Image
	if sb, ok := b.(ggchart.SolidBrush); ok {
		src = image.NewUniform(sb.Color.Color())
	} else {
		src = brushImage{brush: b, bounds: s.dst.Bounds()}
	}
	xdraw.DrawMask(s.dst, s.dst.Bounds(), src, image.Point{}, mask, image.Point{}, xdraw.Over)
}

// intersect multiplies clip into m in place and returns m. A nil clip
// leaves m unchanged.
func intersect(clip, m *image.Alpha) *image.Alpha {
	if clip == nil {
		return m
	}
	for i := range m.Pix {
		m.Pix[i] = uint8(uint16(m.Pix[i]) * uint16(clip.Pix[i]) / 255)
	}
	return m
}

// rings returns the point lists of subpaths, all treated as closed.
func rings(subpaths []scene.Subpath) [][]scene.Point {
	out := make([][]scene.Point, len(subpaths))
	for i, sp := range subpaths {
		out[i] = sp.Points
	}
	return out
}

// strokeRings expands the subpaths into fillable outline rings with the
// cap, join and width of st. A degenerate closed subpath, such as a
// zero-width rectangle, strokes as a single line.
func strokeRings(subpaths []scene.Subpath, st ggchart.ItemStyle) [][]scene.Point {
	lines := make([]stroke.Polyline, len(subpaths))
	for i, sp := range subpaths {
		pts := make([]stroke.Point, len(sp.Points))
		for j, p := range sp.Points {
			pts[j] = stroke.Point(p)
		}
		lines[i] = stroke.Polyline{Points: pts, Closed: sp.Closed}
	}
	e := stroke.NewExpander(stroke.Stroke{
		Width:      st.LineWidth,
		Cap:        stroke.LineCap(st.Cap),
		Join:       stroke.LineJoin(st.Join),
		MiterLimit: st.MiterLimit,
	})
	outline := e.Expand(lines)
	out := make([][]scene.Point, len(outline))
	for i, r := range outline {
		pts := make([]scene.Point, len(r))
		for j, p := range r {
			pts[j] = scene.Point(p)
		}
		out[i] = pts
	}
	return out
}

// brushImage adapts a Brush to image.Image, sampling at pixel centers.
type brushImage struct {
	brush  ggchart.Brush
	bounds image.Rectangle
}

func (b brushImage) ColorModel() color.Model { return color.NRGBAModel }

func (b brushImage) Bounds() image.Rectangle { return b.bounds }

func (b brushImage) At(x, y int) color.Color {
	return b.brush.ColorAt(float64(x)+0.5, float64(y)+0.5).Color()
}
