package breakarea

import (
	"log/slog"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/action"
	"github.com/gogpu/ggchart/axis"
	"github.com/gogpu/ggchart/scene"
)

// Dispatcher receives the expansion notifications emitted on click.
// *action.Dispatcher implements it.
type Dispatcher interface {
	DispatchAction(a action.Action)
}

// AxisModel is what the renderer reads from an axis component.
type AxisModel interface {
	Axis() axis.Axis
	BreakArea() ggchart.BreakAreaStyle
}

// Renderer turns collapsed breaks into clickable scene shapes.
type Renderer struct {
	dispatcher Dispatcher
	patterns   *ggchart.PatternCache
	log        *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger. The default is ggchart.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// WithPatternCache shares a decal pattern cache between renderers.
func WithPatternCache(c *ggchart.PatternCache) Option {
	return func(r *Renderer) {
		if c != nil {
			r.patterns = c
		}
	}
}

// NewRenderer creates a renderer that notifies d when a break is expanded.
func NewRenderer(d Dispatcher, opts ...Option) *Renderer {
	r := &Renderer{
		dispatcher: d,
		patterns:   ggchart.NewPatternCache(),
		log:        ggchart.Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BuildBreakAreaShapes adds one styled, clickable rectangle per collapsed
// break to axisGroup, in break order. Blank scales and scales without
// breaks add nothing.
func (r *Renderer) BuildBreakAreaShapes(axisGroup *scene.Group, model AxisModel, plot scene.Rect) {
	ax := model.Axis()
	bs := ax.Scale()
	if bs.IsBlank() {
		return
	}
	breaks := bs.Breaks()
	if len(breaks) == 0 {
		return
	}

	style := r.resolveStyle(model.BreakArea())
	for _, b := range breaks {
		if b.Expanded {
			continue
		}
		rect := RectFor(ax, plot, b)
		r.log.Debug("breakarea: rect", "start", b.Start, "end", b.End,
			"x", rect.X, "y", rect.Y, "width", rect.Width, "height", rect.Height)

		el := scene.NewShapeNode(scene.NewRectShape(rect))
		el.SetStyle(style)
		el.Cursor = scene.CursorPointer
		el.OnClick(r.expandHandler(bs, b))
		axisGroup.Add(el)
	}
}

// AddBreakBackground styles the shapes of BuildClipGroup with the
// break-area style and adds the group to axisGroup.
func (r *Renderer) AddBreakBackground(axisGroup *scene.Group, model AxisModel, plot scene.Rect) {
	group := r.BuildClipGroup(model.Axis(), plot)
	if group == nil {
		return
	}
	style := r.resolveStyle(model.BreakArea())
	group.EachChild(func(n scene.Node) {
		if el, ok := n.(*scene.ShapeNode); ok {
			el.SetStyle(style)
		}
	})
	axisGroup.Add(group)
}

// BuildClipGroup returns a group with one clickable shape per collapsed
// break (see ClipShape), clipped to plot. It returns nil when the scale
// is blank or has no breaks, meaning no clipping is needed.
func (r *Renderer) BuildClipGroup(ax axis.Axis, plot scene.Rect) *scene.Group {
	bs := ax.Scale()
	if bs.IsBlank() {
		return nil
	}
	breaks := bs.Breaks()
	if len(breaks) == 0 {
		return nil
	}

	group := scene.NewGroup("axisBreakClip")
	for _, b := range breaks {
		if b.Expanded {
			continue
		}
		shape := ClipShape(ax, plot, b)
		r.log.Debug("breakarea: clip shape", "start", b.Start, "end", b.End,
			"horizontal", ax.IsHorizontal())

		el := scene.NewShapeNode(shape)
		el.Cursor = scene.CursorPointer
		el.OnClick(r.expandHandler(bs, b))
		group.Add(el)
	}
	group.SetClipPath(scene.NewRectShape(plot))
	return group
}

// expandHandler expands b and notifies the dispatcher. It does not
// redraw.
func (r *Renderer) expandHandler(bs axis.BreakSet, b axis.Break) scene.ClickHandler {
	start, end := b.Start, b.End
	return func(scene.ClickEvent) {
		bs.ExpandBreak(start, end)
		if r.dispatcher != nil {
			r.dispatcher.DispatchAction(action.Action{
				Type:       action.AxisBreakExpand,
				BreakStart: start,
				BreakEnd:   end,
			})
		}
	}
}

// resolveStyle builds the item style shared by every shape of one redraw.
// A decal that cannot be turned into a pattern is dropped with a warning
// and the shapes keep their plain fill.
func (r *Renderer) resolveStyle(st ggchart.BreakAreaStyle) ggchart.ItemStyle {
	style := st.Background
	if st.Decal == nil {
		return style
	}
	base := ggchart.Transparent
	if sb, ok := style.Fill.(ggchart.SolidBrush); ok {
		base = sb.Color
	}
	p, err := r.patterns.PatternFromDecal(st.Decal.WithDefaults(base))
	if err != nil {
		r.log.Warn("breakarea: decal pattern unavailable, using plain fill", "err", err)
		return style
	}
	style.Decal = p
	return style
}
