package scene

import (
	"testing"

	"github.com/gogpu/ggchart"
)

func TestRectNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"positive", Rect{X: 1, Y: 2, Width: 3, Height: 4}, Rect{X: 1, Y: 2, Width: 3, Height: 4}},
		{"negative height", Rect{X: 0, Y: 150, Width: 10, Height: -30}, Rect{X: 0, Y: 120, Width: 10, Height: 30}},
		{"negative width", Rect{X: 50, Y: 0, Width: -20, Height: 5}, Rect{X: 30, Y: 0, Width: 20, Height: 5}},
		{"zero width", Rect{X: 200, Y: 0, Width: 0, Height: 300}, Rect{X: 200, Y: 0, Width: 0, Height: 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 150, Width: 100, Height: -30}
	if !r.Contains(50, 130) {
		t.Error("Contains(50, 130) = false, want true")
	}
	if !r.Contains(10, 120) {
		t.Error("Contains(10, 120) = false, want true (corner)")
	}
	if r.Contains(50, 100) {
		t.Error("Contains(50, 100) = true, want false")
	}
}

func TestRectIntersectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}

	if got, want := a.Intersect(b), (Rect{X: 5, Y: 5, Width: 5, Height: 5}); got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}
	if got, want := a.Union(b), (Rect{X: 0, Y: 0, Width: 15, Height: 15}); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
	far := Rect{X: 50, Y: 50, Width: 1, Height: 1}
	if got := a.Intersect(far); !got.IsEmpty() {
		t.Errorf("disjoint Intersect = %+v, want empty", got)
	}
}

func TestRectShapePath(t *testing.T) {
	r := NewRectShape(Rect{X: 10, Y: 20, Width: 100, Height: 50})
	p := r.ToPath()
	// MoveTo + 3 LineTo + Close
	if len(p.Verbs()) != 5 {
		t.Errorf("verbs = %d, want 5", len(p.Verbs()))
	}
	subs := p.Subpaths()
	if len(subs) != 1 || !subs[0].Closed || len(subs[0].Points) != 4 {
		t.Errorf("Subpaths() = %+v, want one closed ring of 4 points", subs)
	}
	if b := r.Bounds(); b != (Rect{X: 10, Y: 20, Width: 100, Height: 50}) {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestPathSubpaths(t *testing.T) {
	p := NewPath().
		MoveTo(0, 0).LineTo(1, 0).LineTo(1, 1).Close().
		MoveTo(5, 5).LineTo(6, 6)
	subs := p.Subpaths()
	if len(subs) != 2 {
		t.Fatalf("len(Subpaths) = %d, want 2", len(subs))
	}
	if !subs[0].Closed || len(subs[0].Points) != 3 {
		t.Errorf("first subpath = %+v", subs[0])
	}
	if subs[1].Closed || len(subs[1].Points) != 2 {
		t.Errorf("second subpath = %+v", subs[1])
	}
	if NewPath().Polygon([]Point{{X: 1, Y: 1}}).IsEmpty() != true {
		t.Error("single-point polygon should add nothing")
	}
}

func TestPolygonContains(t *testing.T) {
	// A zigzag band similar to a sawtooth break.
	poly := NewPolygonShape([]Point{
		{0, 15}, {10, 5}, {20, 15},
		{20, 25}, {10, 35}, {0, 25},
	})
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{10, 6, true},
		{2, 8, false},
		{10, 40, false},
		{30, 20, false},
	}
	for _, tt := range tests {
		if got := poly.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	b := poly.Bounds()
	if b != (Rect{X: 0, Y: 5, Width: 20, Height: 30}) {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestPolylineNeverHit(t *testing.T) {
	l := NewPolylineShape([]Point{{0, 0}, {10, 10}})
	if l.Contains(5, 5) {
		t.Error("polyline Contains should be false")
	}
	if subs := l.ToPath().Subpaths(); len(subs) != 1 || subs[0].Closed {
		t.Errorf("polyline path = %+v, want one open subpath", subs)
	}
}

func TestShapeNodeStrokeHit(t *testing.T) {
	n := NewShapeNode(NewRectShape(Rect{X: 50, Y: 0, Width: 0, Height: 100}))
	if !n.Contains(50, 50) {
		t.Error("point on a degenerate rect should hit")
	}
	if n.Contains(51, 50) {
		t.Error("unstroked degenerate rect should not hit off the line")
	}
	n.SetStyle(ggchart.ItemStyle{Stroke: ggchart.Solid(ggchart.Black), LineWidth: 4})
	if !n.Contains(51.5, 50) {
		t.Error("stroked degenerate rect should hit within half the line width")
	}
	if n.Contains(53, 50) {
		t.Error("stroked degenerate rect should not hit beyond half the line width")
	}
}
