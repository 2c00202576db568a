// Package chart assembles a value axis with breaks, a break-area renderer
// and an action pipeline into a chart that can be clicked and painted.
package chart

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/action"
	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/breakarea"
	"github.com/gogpu/ggchart/config"
	"github.com/gogpu/ggchart/render"
	"github.com/gogpu/ggchart/scene"
)

// Chart is a single-axis chart. It is not safe for concurrent use.
type Chart struct {
	opts       *config.Options
	background ggchart.RGBA
	style      ggchart.BreakAreaStyle

	scale *axis.Scale
	axis  *axis.Cartesian
	plot  scene.Rect

	dispatcher *action.Dispatcher
	breaks     *breakarea.Renderer
	log        *slog.Logger

	root        *scene.Group
	seriesGroup *scene.Group
	axisGroup   *scene.Group

	layouts int
}

// Option configures a Chart.
type Option func(*settings)

type settings struct {
	log      *slog.Logger
	patterns *ggchart.PatternCache
}

// WithLogger sets the logger. The default is ggchart.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithPatternCache shares decal patterns between charts.
func WithPatternCache(c *ggchart.PatternCache) Option {
	return func(s *settings) { s.patterns = c }
}

// New builds a chart from validated options and lays it out once.
func New(opts *config.Options, options ...Option) (*Chart, error) {
	s := settings{log: ggchart.Logger()}
	for _, o := range options {
		o(&s)
	}
	if s.log == nil {
		s.log = ggchart.Logger()
	}

	orient, err := opts.Axis.Orientation()
	if err != nil {
		return nil, err
	}
	style, err := opts.Axis.BreakArea.Resolve()
	if err != nil {
		return nil, err
	}
	bg, err := ggchart.ParseColor(opts.Background)
	if err != nil {
		return nil, fmt.Errorf("chart: background: %w", err)
	}
	scale, err := axis.NewScale(opts.Axis.Min, opts.Axis.Max, opts.Axis.AxisBreaks()...)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}

	c := &Chart{
		opts:        opts,
		background:  bg,
		style:       style,
		scale:       scale,
		axis:        axis.NewCartesian(orient, scale),
		dispatcher:  action.NewDispatcher(),
		log:         s.log,
		root:        scene.NewGroup("root"),
		seriesGroup: scene.NewGroup("series"),
		axisGroup:   scene.NewGroup("axis"),
	}
	c.breaks = breakarea.NewRenderer(c.dispatcher,
		breakarea.WithLogger(s.log), breakarea.WithPatternCache(s.patterns))
	c.root.Add(c.seriesGroup)
	c.root.Add(c.axisGroup)

	c.dispatcher.On(action.AxisBreakExpand, func(a action.Action) {
		c.log.Info("chart: break expanded, relayout", "start", a.BreakStart, "end", a.BreakEnd)
		c.Update()
	})
	c.Update()
	return c, nil
}

// Axis returns the break axis. Together with BreakArea it lets the chart
// serve as the axis model of the break-area renderer.
func (c *Chart) Axis() axis.Axis { return c.axis }

// BreakArea returns the resolved break-area style.
func (c *Chart) BreakArea() ggchart.BreakAreaStyle { return c.style }

// Scale returns the value scale of the break axis.
func (c *Chart) Scale() *axis.Scale { return c.scale }

// PlotRect returns the plot rectangle of the last layout.
func (c *Chart) PlotRect() scene.Rect { return c.plot }

// Dispatcher returns the action pipeline. Extra handlers may be added.
func (c *Chart) Dispatcher() *action.Dispatcher { return c.dispatcher }

// Scene returns the root of the scene graph.
func (c *Chart) Scene() *scene.Group { return c.root }

// AxisGroup returns the group holding the break shapes.
func (c *Chart) AxisGroup() *scene.Group { return c.axisGroup }

// Layouts returns how many times the chart was laid out.
func (c *Chart) Layouts() int { return c.layouts }

// Update lays out the plot rectangle and axis, then rebuilds the series
// and break shapes from scratch.
func (c *Chart) Update() {
	g := c.opts.Grid
	c.plot = scene.Rect{
		X:      g.Left,
		Y:      g.Top,
		Width:  float64(c.opts.Width) - g.Left - g.Right,
		Height: float64(c.opts.Height) - g.Top - g.Bottom,
	}
	if c.axis.IsHorizontal() {
		c.axis.SetExtent(0, c.plot.Width)
		c.axis.SetOffset(c.plot.X)
	} else {
		c.axis.SetExtent(c.plot.Height, 0)
		c.axis.SetOffset(c.plot.Y)
	}

	c.buildSeries()

	c.axisGroup.RemoveAll()
	switch c.opts.Axis.BreakArea.Mode {
	case config.ModeArea:
		c.breaks.BuildBreakAreaShapes(c.axisGroup, c, c.plot)
	default:
		c.breaks.AddBreakBackground(c.axisGroup, c, c.plot)
	}
	c.layouts++
}

// buildSeries draws every series as a polyline clipped to the plot.
func (c *Chart) buildSeries() {
	c.seriesGroup.RemoveAll()
	c.seriesGroup.SetClipPath(scene.NewRectShape(c.plot))
	for _, s := range c.opts.Series {
		if len(s.Data) == 0 {
			continue
		}
		col, err := ggchart.ParseColor(s.Color)
		if err != nil {
			c.log.Warn("chart: skipping series with bad color", "series", s.Name, "err", err)
			continue
		}
		pts := make([]scene.Point, len(s.Data))
		for i, v := range s.Data {
			cross := c.crossCoord(i, len(s.Data))
			val := c.axis.ToGlobalCoord(c.axis.DataToCoord(v))
			if c.axis.IsHorizontal() {
				pts[i] = scene.Pt(val, cross)
			} else {
				pts[i] = scene.Pt(cross, val)
			}
		}
		n := scene.NewShapeNode(scene.NewPolylineShape(pts))
		n.SetStyle(ggchart.ItemStyle{
			Stroke:    ggchart.Solid(col),
			LineWidth: s.LineWidth,
			Cap:       ggchart.LineCapRound,
			Join:      ggchart.LineJoinRound,
		})
		n.Silent = true
		c.seriesGroup.Add(n)
	}
}

// crossCoord spreads n samples evenly across the plot, perpendicular to
// the break axis, with half a step of padding at both ends.
func (c *Chart) crossCoord(i, n int) float64 {
	if c.axis.IsHorizontal() {
		step := c.plot.Height / float64(n)
		return c.plot.Y + c.plot.Height - step*(float64(i)+0.5)
	}
	step := c.plot.Width / float64(n)
	return c.plot.X + step*(float64(i)+0.5)
}

// Click delivers a click at screen position (x, y) and reports whether a
// shape was hit. Clicking a collapsed break expands it and relays out the
// chart through the action pipeline.
func (c *Chart) Click(x, y float64) bool {
	return c.root.Click(x, y)
}

// Render paints the current scene.
func (c *Chart) Render() *image.RGBA {
	img := render.NewCanvas(c.opts.Width, c.opts.Height, c.background)
	render.Draw(img, c.root)
	return img
}

// WritePNG encodes the current scene as PNG.
func (c *Chart) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Render())
}

// SavePNG writes the current scene to a PNG file.
func (c *Chart) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := c.WritePNG(bw); err != nil {
		f.Close()
		return fmt.Errorf("chart: encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("chart: write %s: %w", path, err)
	}
	return f.Close()
}
