package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/axis"
)

const sampleTOML = `
width = 800
height = 600

[axis]
orient = "vertical"
min = 0
max = 1000

[[axis.breaks]]
start = 200
end = 800
gap = 20

[axis.break_area]
mode = "area"

[axis.break_area.style]
color = "#eeeeee"
border_color = "gray"
border_width = 2

[axis.break_area.decal]
symbol = "line"
rotation = 90

[[series]]
name = "latency"
data = [10, 50, 900, 950]
`

const sampleYAML = `
width: 400
axis:
  orient: horizontal
  max: 50
  breaks:
    - start: 10
      end: 20
    - start: 30
      end: 30
      expanded: true
`

func TestParseTOML(t *testing.T) {
	o, err := Parse([]byte(sampleTOML), ".toml")
	require.NoError(t, err)

	assert.Equal(t, 800, o.Width)
	assert.Equal(t, 600, o.Height)
	assert.Equal(t, "white", o.Background)
	assert.Equal(t, ModeArea, o.Axis.BreakArea.Mode)
	assert.Equal(t, []axis.Break{{Start: 200, End: 800, Gap: 20}}, o.Axis.AxisBreaks())

	orient, err := o.Axis.Orientation()
	require.NoError(t, err)
	assert.Equal(t, axis.Vertical, orient)

	require.Len(t, o.Series, 1)
	assert.Equal(t, "steelblue", o.Series[0].Color)
	assert.Equal(t, 2.0, o.Series[0].LineWidth)

	st, err := o.Axis.BreakArea.Resolve()
	require.NoError(t, err)
	assert.Equal(t, ggchart.Solid(ggchart.MustParseColor("#eeeeee")), st.Background.Fill)
	assert.Equal(t, ggchart.Solid(ggchart.MustParseColor("gray")), st.Background.Stroke)
	assert.Equal(t, 2.0, st.Background.LineWidth)
	require.NotNil(t, st.Decal)
	assert.Equal(t, ggchart.DecalLine, st.Decal.Symbol)
	assert.InDelta(t, math.Pi/2, st.Decal.Rotation, 1e-12)
}

func TestParseYAML(t *testing.T) {
	o, err := Parse([]byte(sampleYAML), ".yml")
	require.NoError(t, err)

	assert.Equal(t, 400, o.Width)
	assert.Equal(t, 480, o.Height)
	assert.Equal(t, ModeBackground, o.Axis.BreakArea.Mode)
	orient, err := o.Axis.Orientation()
	require.NoError(t, err)
	assert.Equal(t, axis.Horizontal, orient)
	assert.Equal(t, []axis.Break{
		{Start: 10, End: 20},
		{Start: 30, End: 30, Expanded: true},
	}, o.Axis.AxisBreaks())
}

func TestParseEmptyYAMLUsesDefaults(t *testing.T) {
	o, err := Parse(nil, ".yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), o)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		ext     string
		invalid bool
	}{
		{"unknown format", `width = 1`, ".json", false},
		{"bad toml", `width = `, ".toml", false},
		{"unknown field", `colour = "red"`, ".toml", false},
		{"bad mode", "axis:\n  break_area:\n    mode: zigzag\n", ".yaml", true},
		{"bad orient", "axis:\n  orient: diagonal\n", ".yaml", true},
		{"reversed extent", "axis:\n  min: 10\n  max: 5\n", ".yaml", true},
		{"bad color", "background: notacolor\n", ".yaml", true},
		{"bad decal color", "axis:\n  break_area:\n    decal:\n      color: '#12'\n", ".yaml", true},
		{"margins too wide", "width: 100\ngrid:\n  left: 60\n  right: 60\n", ".yaml", true},
		{"negative border width", "[axis.break_area.style]\nborder_width = -1\n", ".toml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.ext)
			require.Error(t, err)
			assert.Equal(t, tt.invalid, isInvalid(err), "err = %v", err)
		})
	}
}

func TestBorderWidth(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantStroke bool
		wantWidth  float64
	}{
		{"unset", "", true, 1},
		{"explicit zero", "[axis.break_area.style]\nborder_width = 0\n", false, 0},
		{"explicit width", "[axis.break_area.style]\nborder_width = 3\n", true, 3},
		{"empty color takes the default", "[axis.break_area.style]\nborder_color = \"\"\nborder_width = 3\n", true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := Parse([]byte(tt.data), ".toml")
			require.NoError(t, err)
			require.NotNil(t, o.Axis.BreakArea.Style.BorderWidth)
			assert.Equal(t, tt.wantWidth, *o.Axis.BreakArea.Style.BorderWidth)

			st, err := o.Axis.BreakArea.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.wantStroke, st.Background.HasStroke())
		})
	}
}

func TestLoadSampleChart(t *testing.T) {
	o, err := Load(filepath.Join("..", "testdata", "vertical.toml"))
	require.NoError(t, err)

	assert.Equal(t, 640, o.Width)
	assert.Equal(t, ModeBackground, o.Axis.BreakArea.Mode)
	assert.Equal(t, []axis.Break{
		{Start: 150, End: 600, Gap: 20},
		{Start: 700, End: 900, Gap: 20},
	}, o.Axis.AxisBreaks())

	st, err := o.Axis.BreakArea.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 1.0, st.Background.LineWidth)
	require.NotNil(t, st.Decal)
	assert.Equal(t, ggchart.DecalLine, st.Decal.Symbol)
	assert.InDelta(t, math.Pi/4, st.Decal.Rotation, 1e-12)

	require.Len(t, o.Series, 1)
	assert.Len(t, o.Series[0].Data, 7)
}

func isInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0o600))

	o, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, o.Width)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
