package ggchart

import (
	"errors"
	"image/color"
	"math"
	"sync"
	"testing"
)

func TestDecalWithDefaults(t *testing.T) {
	d := Decal{}.WithDefaults(Transparent)
	if d.Symbol != DecalRect || d.SymbolSize != DefaultDecalSymbolSize || d.TileSize != DefaultDecalTileSize {
		t.Errorf("WithDefaults = %+v", d)
	}
	if d.Color != DefaultDecalColor {
		t.Errorf("Color = %v, want %v", d.Color, DefaultDecalColor)
	}

	d = Decal{}.WithDefaults(RGBA2(0.8, 0.8, 0.8, 0.3))
	if d.Color.A != 0.5 {
		t.Errorf("derived alpha = %v, want 0.5", d.Color.A)
	}
	if d.Color.R >= 0.8 {
		t.Errorf("derived color %v is not darker than the fill", d.Color)
	}

	custom := Decal{Symbol: DecalLine, SymbolSize: 0.2, TileSize: 4, Color: Red}.WithDefaults(White)
	if custom.Symbol != DecalLine || custom.SymbolSize != 0.2 || custom.TileSize != 4 || custom.Color != Red {
		t.Errorf("WithDefaults overwrote explicit fields: %+v", custom)
	}
}

func TestDecalValidate(t *testing.T) {
	base := Decal{}.WithDefaults(White)
	tests := []struct {
		name string
		edit func(*Decal)
	}{
		{"symbol", func(d *Decal) { d.Symbol = "star" }},
		{"zero symbol size", func(d *Decal) { d.SymbolSize = -1 }},
		{"symbol size above one", func(d *Decal) { d.SymbolSize = 1.5 }},
		{"tiny tile", func(d *Decal) { d.TileSize = 0.5 }},
		{"huge tile", func(d *Decal) { d.TileSize = 1000 }},
		{"nan rotation", func(d *Decal) { d.Rotation = math.NaN() }},
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("defaults: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base
			tt.edit(&d)
			if err := d.Validate(); !errors.Is(err, ErrInvalidDecal) {
				t.Errorf("Validate() = %v, want ErrInvalidDecal", err)
			}
		})
	}
}

func TestNewDecalPattern(t *testing.T) {
	for _, symbol := range []string{DecalRect, DecalCircle, DecalTriangle, DecalLine} {
		t.Run(symbol, func(t *testing.T) {
			p, err := NewDecalPattern(Decal{Symbol: symbol, SymbolSize: 0.6, TileSize: 10, Color: Red})
			if err != nil {
				t.Fatal(err)
			}
			tile := p.Tile()
			if tile.Bounds().Dx() != 10 || tile.Bounds().Dy() != 10 {
				t.Fatalf("tile bounds = %v", tile.Bounds())
			}
			if got := tile.RGBAAt(5, 5); got != (color.RGBA{255, 0, 0, 255}) {
				t.Errorf("center = %v, want red", got)
			}
		})
	}
}

func TestNewDecalPatternBackground(t *testing.T) {
	p, err := NewDecalPattern(Decal{Symbol: DecalRect, SymbolSize: 0.6, TileSize: 10, Color: Red, BackgroundColor: White})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Tile().RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("corner = %v, want white", got)
	}

	p, err = NewDecalPattern(Decal{Symbol: DecalRect, SymbolSize: 0.6, TileSize: 10, Color: Red})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Tile().RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("corner = %v, want transparent", got)
	}
}

func TestNewDecalPatternInvalid(t *testing.T) {
	if _, err := NewDecalPattern(Decal{Symbol: "star", SymbolSize: 0.5, TileSize: 8}); !errors.Is(err, ErrInvalidDecal) {
		t.Errorf("err = %v, want ErrInvalidDecal", err)
	}
}

func TestPatternCache(t *testing.T) {
	c := NewPatternCache()
	d := Decal{}.WithDefaults(White)

	p1, err := c.PatternFromDecal(d)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := c.PatternFromDecal(d)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Error("equal decals built different patterns")
	}

	d.Rotation = math.Pi / 4
	p3, err := c.PatternFromDecal(d)
	if err != nil {
		t.Fatal(err)
	}
	if p3 == p1 || p3.Rotation() != math.Pi/4 {
		t.Error("rotated decal shared the unrotated pattern")
	}

	d.Symbol = "bogus"
	if _, err := c.PatternFromDecal(d); err == nil {
		t.Error("invalid decal was cached")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestPatternCacheConcurrent(t *testing.T) {
	c := NewPatternCache()
	d := Decal{Symbol: DecalCircle}.WithDefaults(Blue)
	var wg sync.WaitGroup
	got := make([]*PatternBrush, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], _ = c.PatternFromDecal(d)
		}(i)
	}
	wg.Wait()
	for _, p := range got[1:] {
		if p != got[0] {
			t.Fatal("concurrent lookups built more than one pattern")
		}
	}
}
