package ggchart

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/vector"
)

// ErrInvalidDecal is returned when a decal descriptor cannot be turned
// into a pattern.
var ErrInvalidDecal = errors.New("ggchart: invalid decal")

// Decal symbols.
const (
	DecalRect     = "rect"
	DecalCircle   = "circle"
	DecalTriangle = "triangle"
	DecalLine     = "line"
)

// Decal defaults.
const (
	DefaultDecalTileSize   = 10.0
	DefaultDecalSymbolSize = 0.6
	maxDecalTileSize       = 256.0
)

// DefaultDecalColor is used when a decal has no symbol color and no base
// color is available.
var DefaultDecalColor = RGBA2(0, 0, 0, 0.2)

// Decal describes a procedurally generated repeating texture.
type Decal struct {
	// Symbol is one of DecalRect, DecalCircle, DecalTriangle, DecalLine.
	Symbol string

	// SymbolSize is the symbol extent as a fraction of the tile, in (0, 1].
	SymbolSize float64

	// TileSize is the tile edge length in pixels.
	TileSize float64

	// Rotation of the whole pattern, in radians.
	Rotation float64

	Color           RGBA
	BackgroundColor RGBA
}

// WithDefaults fills unset fields. An unset symbol color is derived from
// base by darkening it in Lab space, so decals stay legible on their fill.
func (d Decal) WithDefaults(base RGBA) Decal {
	if d.Symbol == "" {
		d.Symbol = DecalRect
	}
	if d.SymbolSize == 0 {
		d.SymbolSize = DefaultDecalSymbolSize
	}
	if d.TileSize == 0 {
		d.TileSize = DefaultDecalTileSize
	}
	if d.Color.IsTransparent() {
		if base.IsTransparent() {
			d.Color = DefaultDecalColor
		} else {
			d.Color = base.BlendLab(Black, 0.35).WithAlpha(math.Max(base.A, 0.5))
		}
	}
	return d
}

// Validate checks that the decal can be rasterized.
func (d Decal) Validate() error {
	switch d.Symbol {
	case DecalRect, DecalCircle, DecalTriangle, DecalLine:
	default:
		return fmt.Errorf("%w: unknown symbol %q", ErrInvalidDecal, d.Symbol)
	}
	if !(d.SymbolSize > 0 && d.SymbolSize <= 1) {
		return fmt.Errorf("%w: symbol size %v out of (0, 1]", ErrInvalidDecal, d.SymbolSize)
	}
	if !(d.TileSize >= 1 && d.TileSize <= maxDecalTileSize) {
		return fmt.Errorf("%w: tile size %v out of [1, %v]", ErrInvalidDecal, d.TileSize, maxDecalTileSize)
	}
	if math.IsNaN(d.Rotation) || math.IsInf(d.Rotation, 0) {
		return fmt.Errorf("%w: rotation %v", ErrInvalidDecal, d.Rotation)
	}
	return nil
}

func (d Decal) key() string {
	return fmt.Sprintf("%s|%g|%g|%g|%v|%v", d.Symbol, d.SymbolSize, d.TileSize, d.Rotation, d.Color, d.BackgroundColor)
}

// NewDecalPattern rasterizes one decal tile and returns a brush repeating it.
// The decal must already have its defaults applied.
func NewDecalPattern(d Decal) (*PatternBrush, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	n := int(math.Ceil(d.TileSize))
	tile := image.NewRGBA(image.Rect(0, 0, n, n))
	if !d.BackgroundColor.IsTransparent() {
		draw.Draw(tile, tile.Bounds(), image.NewUniform(d.BackgroundColor.Color()), image.Point{}, draw.Src)
	}

	r := vector.NewRasterizer(n, n)
	fn := float32(n)
	s := float32(d.SymbolSize) * fn
	c := fn / 2
	switch d.Symbol {
	case DecalRect:
		r.MoveTo(c-s/2, c-s/2)
		r.LineTo(c+s/2, c-s/2)
		r.LineTo(c+s/2, c+s/2)
		r.LineTo(c-s/2, c+s/2)
	case DecalCircle:
		ellipse(r, c, c, s/2)
	case DecalTriangle:
		r.MoveTo(c, c-s/2)
		r.LineTo(c+s/2, c+s/2)
		r.LineTo(c-s/2, c+s/2)
	case DecalLine:
		// A band across the tile diagonal; adjacent tiles join into stripes.
		w := s / 2
		r.MoveTo(0, fn-w)
		r.LineTo(fn-w, 0)
		r.LineTo(fn, 0)
		r.LineTo(fn, w)
		r.LineTo(w, fn)
		r.LineTo(0, fn)
	}
	r.ClosePath()
	r.Draw(tile, tile.Bounds(), image.NewUniform(d.Color.Color()), image.Point{})

	return NewPatternBrush(tile, d.Rotation), nil
}

// ellipse appends a circle of radius rad at (cx, cy) using four cubic arcs.
func ellipse(r *vector.Rasterizer, cx, cy, rad float32) {
	const k = 0.5522847498
	kr := k * rad
	r.MoveTo(cx+rad, cy)
	r.CubeTo(cx+rad, cy+kr, cx+kr, cy+rad, cx, cy+rad)
	r.CubeTo(cx-kr, cy+rad, cx-rad, cy+kr, cx-rad, cy)
	r.CubeTo(cx-rad, cy-kr, cx-kr, cy-rad, cx, cy-rad)
	r.CubeTo(cx+kr, cy-rad, cx+rad, cy-kr, cx+rad, cy)
}

// PatternCache reuses decal patterns across redraws. Patterns are
// immutable once created, so one instance may be shared by every shape of
// an axis.
type PatternCache struct {
	mu      sync.Mutex
	entries map[string]*PatternBrush
}

// NewPatternCache creates an empty cache.
func NewPatternCache() *PatternCache {
	return &PatternCache{entries: make(map[string]*PatternBrush)}
}

// PatternFromDecal returns the cached pattern for d, creating it on first use.
func (c *PatternCache) PatternFromDecal(d Decal) (*PatternBrush, error) {
	k := d.key()
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.entries[k]; ok {
		return p, nil
	}
	p, err := NewDecalPattern(d)
	if err != nil {
		return nil, err
	}
	c.entries[k] = p
	return p, nil
}

// Len returns the number of cached patterns.
func (c *PatternCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
