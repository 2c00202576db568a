package ggchart

import (
	"image"
	"math"
)

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single solid color
//   - CustomBrush: user-defined color function
//   - PatternBrush: a repeating raster tile, used for decal fills
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the color at the given coordinates.
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// ColorFunc samples a color at a position.
type ColorFunc func(x, y float64) RGBA

// CustomBrush is a brush backed by a color function.
type CustomBrush struct {
	Func ColorFunc
	// Name is used for debugging only.
	Name string
}

func (CustomBrush) brushMarker() {}

// ColorAt implements Brush. A nil Func yields Transparent.
func (b CustomBrush) ColorAt(x, y float64) RGBA {
	if b.Func == nil {
		return Transparent
	}
	return b.Func(x, y)
}

// NewCustomBrush creates a CustomBrush from fn.
func NewCustomBrush(fn ColorFunc) CustomBrush {
	return CustomBrush{Func: fn}
}

// PatternBrush repeats a raster tile over the plane, optionally rotated
// around the origin.
type PatternBrush struct {
	tile     *image.RGBA
	rotation float64
	cos, sin float64
}

func (*PatternBrush) brushMarker() {}

// NewPatternBrush creates a brush that tiles img, rotated by rotation radians.
func NewPatternBrush(tile *image.RGBA, rotation float64) *PatternBrush {
	return &PatternBrush{
		tile:     tile,
		rotation: rotation,
		cos:      math.Cos(-rotation),
		sin:      math.Sin(-rotation),
	}
}

// Tile returns the repeating image.
func (p *PatternBrush) Tile() *image.RGBA {
	return p.tile
}

// Rotation returns the pattern rotation in radians.
func (p *PatternBrush) Rotation() float64 {
	return p.rotation
}

// ColorAt implements Brush.
func (p *PatternBrush) ColorAt(x, y float64) RGBA {
	if p == nil || p.tile == nil {
		return Transparent
	}
	b := p.tile.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return Transparent
	}
	rx := x*p.cos - y*p.sin
	ry := x*p.sin + y*p.cos
	tx := wrap(int(math.Floor(rx)), w)
	ty := wrap(int(math.Floor(ry)), h)
	return FromColor(p.tile.RGBAAt(b.Min.X+tx, b.Min.Y+ty))
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
