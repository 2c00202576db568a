// Package config loads chart options from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/axis"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid options")

// Break-area display modes.
const (
	// ModeBackground draws sawtooth shapes on vertical axes and rectangles
	// on horizontal ones.
	ModeBackground = "background"
	// ModeArea always draws rectangles.
	ModeArea = "area"
)

// Options is the top-level chart configuration.
type Options struct {
	Width      int    `toml:"width" yaml:"width"`
	Height     int    `toml:"height" yaml:"height"`
	Background string `toml:"background" yaml:"background"`

	Grid   GridOptions     `toml:"grid" yaml:"grid"`
	Axis   AxisOptions     `toml:"axis" yaml:"axis"`
	Series []SeriesOptions `toml:"series" yaml:"series"`
}

// GridOptions are the margins between the image border and the plot
// rectangle, in pixels.
type GridOptions struct {
	Left   float64 `toml:"left" yaml:"left"`
	Right  float64 `toml:"right" yaml:"right"`
	Top    float64 `toml:"top" yaml:"top"`
	Bottom float64 `toml:"bottom" yaml:"bottom"`
}

// AxisOptions configure the value axis that carries the breaks.
type AxisOptions struct {
	// Orient is "vertical" or "horizontal".
	Orient string  `toml:"orient" yaml:"orient"`
	Min    float64 `toml:"min" yaml:"min"`
	Max    float64 `toml:"max" yaml:"max"`

	Breaks    []BreakOptions   `toml:"breaks" yaml:"breaks"`
	BreakArea BreakAreaOptions `toml:"break_area" yaml:"break_area"`
}

// BreakOptions configure one break.
type BreakOptions struct {
	Start    float64 `toml:"start" yaml:"start"`
	End      float64 `toml:"end" yaml:"end"`
	Gap      float64 `toml:"gap" yaml:"gap"`
	Expanded bool    `toml:"expanded" yaml:"expanded"`
}

// BreakAreaOptions configure how collapsed breaks are drawn.
type BreakAreaOptions struct {
	// Mode is ModeBackground or ModeArea.
	Mode  string        `toml:"mode" yaml:"mode"`
	Style StyleOptions  `toml:"style" yaml:"style"`
	Decal *DecalOptions `toml:"decal" yaml:"decal"`
}

// StyleOptions is a fill/border style with colors as strings.
type StyleOptions struct {
	Color       string `toml:"color" yaml:"color"`
	BorderColor string `toml:"border_color" yaml:"border_color"`

	// BorderWidth is nil when unset; an explicit 0 turns the border off.
	BorderWidth *float64 `toml:"border_width" yaml:"border_width"`
}

// DecalOptions describe a textured pattern fill.
type DecalOptions struct {
	Symbol          string  `toml:"symbol" yaml:"symbol"`
	SymbolSize      float64 `toml:"symbol_size" yaml:"symbol_size"`
	TileSize        float64 `toml:"tile_size" yaml:"tile_size"`
	RotationDeg     float64 `toml:"rotation" yaml:"rotation"`
	Color           string  `toml:"color" yaml:"color"`
	BackgroundColor string  `toml:"background_color" yaml:"background_color"`
}

// SeriesOptions is a line series. Values are plotted along the break
// axis at evenly spaced positions across the plot.
type SeriesOptions struct {
	Name      string    `toml:"name" yaml:"name"`
	Color     string    `toml:"color" yaml:"color"`
	LineWidth float64   `toml:"line_width" yaml:"line_width"`
	Data      []float64 `toml:"data" yaml:"data"`
}

// Default returns options with Defaults applied.
func Default() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

// Defaults fills zero fields with default values.
func (o *Options) Defaults() {
	if o.Width == 0 {
		o.Width = 640
	}
	if o.Height == 0 {
		o.Height = 480
	}
	if o.Background == "" {
		o.Background = "white"
	}
	o.Grid.Defaults()
	o.Axis.Defaults()
	for i := range o.Series {
		o.Series[i].Defaults()
	}
}

// Defaults fills zero margins.
func (g *GridOptions) Defaults() {
	if g.Left == 0 && g.Right == 0 && g.Top == 0 && g.Bottom == 0 {
		g.Left, g.Right, g.Top, g.Bottom = 60, 40, 40, 60
	}
}

// Defaults fills the orientation, extent and break-area style.
func (a *AxisOptions) Defaults() {
	if a.Orient == "" {
		a.Orient = axis.Vertical.String()
	}
	if a.Min == 0 && a.Max == 0 {
		a.Max = 100
	}
	a.BreakArea.Defaults()
}

// Defaults fills the break-area mode and style.
func (b *BreakAreaOptions) Defaults() {
	if b.Mode == "" {
		b.Mode = ModeBackground
	}
	if b.Style.Color == "" {
		b.Style.Color = "#f5f5f5"
	}
	if b.Style.BorderColor == "" {
		b.Style.BorderColor = "#b4b4b4"
	}
	if b.Style.BorderWidth == nil {
		w := 1.0
		b.Style.BorderWidth = &w
	}
}

// Defaults fills the series color and width.
func (s *SeriesOptions) Defaults() {
	if s.Color == "" {
		s.Color = "steelblue"
	}
	if s.LineWidth == 0 {
		s.LineWidth = 2
	}
}

// Validate checks the options after Defaults.
func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, o.Width, o.Height)
	}
	if o.Grid.Left+o.Grid.Right >= float64(o.Width) || o.Grid.Top+o.Grid.Bottom >= float64(o.Height) {
		return fmt.Errorf("%w: grid margins leave no plot area", ErrInvalid)
	}
	if _, err := o.Axis.Orientation(); err != nil {
		return err
	}
	if !(o.Axis.Max > o.Axis.Min) {
		return fmt.Errorf("%w: axis extent [%v, %v]", ErrInvalid, o.Axis.Min, o.Axis.Max)
	}
	switch o.Axis.BreakArea.Mode {
	case ModeBackground, ModeArea:
	default:
		return fmt.Errorf("%w: break area mode %q", ErrInvalid, o.Axis.BreakArea.Mode)
	}
	if _, err := ggchart.ParseColor(o.Background); err != nil {
		return fmt.Errorf("%w: background: %w", ErrInvalid, err)
	}
	if _, err := o.Axis.BreakArea.Resolve(); err != nil {
		return err
	}
	for i, s := range o.Series {
		if _, err := ggchart.ParseColor(s.Color); err != nil {
			return fmt.Errorf("%w: series %d: %w", ErrInvalid, i, err)
		}
	}
	return nil
}

// Orientation parses Orient.
func (a *AxisOptions) Orientation() (axis.Orientation, error) {
	switch strings.ToLower(a.Orient) {
	case "vertical", "y":
		return axis.Vertical, nil
	case "horizontal", "x":
		return axis.Horizontal, nil
	}
	return 0, fmt.Errorf("%w: axis orient %q", ErrInvalid, a.Orient)
}

// AxisBreaks converts the configured breaks.
func (a *AxisOptions) AxisBreaks() []axis.Break {
	out := make([]axis.Break, len(a.Breaks))
	for i, b := range a.Breaks {
		out[i] = axis.Break{Start: b.Start, End: b.End, Gap: b.Gap, Expanded: b.Expanded}
	}
	return out
}

// Resolve resolves colors into a break-area style. The decal descriptor is
// converted but not rasterized.
func (b *BreakAreaOptions) Resolve() (ggchart.BreakAreaStyle, error) {
	var st ggchart.BreakAreaStyle
	if b.Style.Color != "" {
		c, err := ggchart.ParseColor(b.Style.Color)
		if err != nil {
			return st, fmt.Errorf("%w: break area color: %w", ErrInvalid, err)
		}
		st.Background.Fill = ggchart.Solid(c)
	}
	if bw := b.Style.BorderWidth; bw != nil && *bw < 0 {
		return st, fmt.Errorf("%w: break area border width %v", ErrInvalid, *bw)
	}
	if bw := b.Style.BorderWidth; b.Style.BorderColor != "" && bw != nil && *bw > 0 {
		c, err := ggchart.ParseColor(b.Style.BorderColor)
		if err != nil {
			return st, fmt.Errorf("%w: break area border color: %w", ErrInvalid, err)
		}
		st.Background.Stroke = ggchart.Solid(c)
		st.Background.LineWidth = *bw
	}
	if b.Decal != nil {
		d, err := b.Decal.decal()
		if err != nil {
			return st, err
		}
		st.Decal = &d
	}
	return st, nil
}

func (d *DecalOptions) decal() (ggchart.Decal, error) {
	out := ggchart.Decal{
		Symbol:     d.Symbol,
		SymbolSize: d.SymbolSize,
		TileSize:   d.TileSize,
		Rotation:   d.RotationDeg * math.Pi / 180,
	}
	if d.Color != "" {
		c, err := ggchart.ParseColor(d.Color)
		if err != nil {
			return out, fmt.Errorf("%w: decal color: %w", ErrInvalid, err)
		}
		out.Color = c
	}
	if d.BackgroundColor != "" {
		c, err := ggchart.ParseColor(d.BackgroundColor)
		if err != nil {
			return out, fmt.Errorf("%w: decal background color: %w", ErrInvalid, err)
		}
		out.BackgroundColor = c
	}
	return out, nil
}

// Load reads options from a .toml, .yaml or .yml file, applies Defaults
// and validates the result.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	o, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return o, nil
}

// Parse decodes options in the format named by ext (".toml", ".yaml",
// ".yml"), applies Defaults and validates the result.
func Parse(data []byte, ext string) (*Options, error) {
	o := &Options{}
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(o); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(o); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	o.Defaults()
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}
