package scene

import "testing"

func TestNewPath(t *testing.T) {
	path := NewPath()
	if path == nil {
		t.Fatal("NewPath() returned nil")
	}
	if !path.IsEmpty() {
		t.Error("new path should be empty")
	}
	if len(path.Verbs()) != 0 || len(path.Points()) != 0 {
		t.Errorf("new path has %d verbs, %d points", len(path.Verbs()), len(path.Points()))
	}
}

func TestPathVerbs(t *testing.T) {
	path := NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).Close()

	want := []PathVerb{VerbMoveTo, VerbLineTo, VerbLineTo, VerbClose}
	got := path.Verbs()
	if len(got) != len(want) {
		t.Fatalf("Verbs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("verb %d = %v, want %v", i, got[i], want[i])
		}
	}
	if n := len(path.Points()); n != 3 {
		t.Errorf("PointCount = %d, want 3", n)
	}
}

func TestPathVerbString(t *testing.T) {
	tests := []struct {
		verb PathVerb
		want string
	}{
		{VerbMoveTo, "MoveTo"},
		{VerbLineTo, "LineTo"},
		{VerbClose, "Close"},
		{PathVerb(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.verb.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.verb, got, tt.want)
		}
	}
}

func TestPathPolygon(t *testing.T) {
	tests := []struct {
		name      string
		pts       []Point
		wantVerbs int
	}{
		{"empty", nil, 0},
		{"single point", []Point{Pt(1, 1)}, 0},
		{"segment", []Point{Pt(0, 0), Pt(1, 1)}, 3},
		{"triangle", []Point{Pt(0, 0), Pt(4, 0), Pt(2, 3)}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath().Polygon(tt.pts)
			if got := len(p.Verbs()); got != tt.wantVerbs {
				t.Errorf("verbs = %d, want %d", got, tt.wantVerbs)
			}
			if tt.wantVerbs > 0 {
				subs := p.Subpaths()
				if len(subs) != 1 || !subs[0].Closed || len(subs[0].Points) != len(tt.pts) {
					t.Errorf("Subpaths() = %+v", subs)
				}
			}
		})
	}
}

func TestPathRectangle(t *testing.T) {
	p := NewPath().Rectangle(1, 2, 3, 4)
	subs := p.Subpaths()
	if len(subs) != 1 || !subs[0].Closed {
		t.Fatalf("Subpaths() = %+v", subs)
	}
	want := []Point{Pt(1, 2), Pt(4, 2), Pt(4, 6), Pt(1, 6)}
	for i, pt := range subs[0].Points {
		if pt != want[i] {
			t.Errorf("point %d = %v, want %v", i, pt, want[i])
		}
	}
}
